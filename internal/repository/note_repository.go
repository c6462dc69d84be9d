package repository

import (
	"levelup-go/internal/models"

	"gorm.io/gorm"
)

// NoteRepository md笔记数据访问层
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建笔记Repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create 创建笔记
func (r *NoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByID 根据ID获取笔记
func (r *NoteRepository) GetByID(id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByIDAndUserID 根据ID和用户获取笔记
func (r *NoteRepository) GetByIDAndUserID(id uint, userID string) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ExistsByNameAndUserID 判断同名笔记是否已存在
func (r *NoteRepository) ExistsByNameAndUserID(name, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).
		Where("name = ? AND user_id = ?", name, userID).
		Count(&count).Error
	return count > 0, err
}

// ListByUserID 获取用户的所有笔记，目录在前、按名称排序
func (r *NoteRepository) ListByUserID(userID string) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("user_id = ?", userID).
		Order("is_dir DESC, name").
		Find(&notes).Error
	return notes, err
}

// Updates 按字段集更新笔记
func (r *NoteRepository) Updates(id uint, userID string, updates map[string]interface{}) error {
	return r.db.Model(&models.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates).Error
}

// Delete 删除笔记
func (r *NoteRepository) Delete(id uint, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Note{}).Error
}

// SearchByName 按文件名模糊搜索用户的笔记
func (r *NoteRepository) SearchByName(userID, keyword string) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("user_id = ? AND name LIKE ?", userID, "%"+keyword+"%").
		Find(&notes).Error
	return notes, err
}
