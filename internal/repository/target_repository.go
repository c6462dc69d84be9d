package repository

import (
	"time"

	"levelup-go/internal/models"

	"gorm.io/gorm"
)

// TargetRepository 学习目标数据访问层
type TargetRepository struct {
	db *gorm.DB
}

// NewTargetRepository 创建学习目标Repository
func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// CreateWithInitialNode 创建学习目标并自动建立初始roadmap主节点，
// 两步在一个事务中完成
func (r *TargetRepository) CreateWithInitialNode(target *models.Target, nodeTitle string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(target).Error; err != nil {
			return err
		}

		node := &models.MainNode{
			UserID:    target.UserID,
			TargetID:  uintToString(target.ID),
			Title:     nodeTitle,
			Status:    "todo",
			NodeOrder: 1,
		}
		return tx.Create(node).Error
	})
}

// GetByID 根据ID获取学习目标
func (r *TargetRepository) GetByID(id uint) (*models.Target, error) {
	var target models.Target
	err := r.db.First(&target, id).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// ListByUserID 获取用户的所有学习目标
func (r *TargetRepository) ListByUserID(userID string) ([]models.Target, error) {
	var targets []models.Target
	err := r.db.Where("user_id = ?", userID).Find(&targets).Error
	return targets, err
}

// Update 更新学习目标
func (r *TargetRepository) Update(id uint, userID string, title string, progress float64, tags string) error {
	return r.db.Model(&models.Target{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"title":       title,
			"progress":    progress,
			"tags":        tags,
			"update_time": time.Now().Format("2006-01-02"),
		}).Error
}

// Delete 删除学习目标
func (r *TargetRepository) Delete(id uint, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Target{}).Error
}

// Search 按标题或标签模糊搜索学习目标
func (r *TargetRepository) Search(userID string, query string) ([]models.Target, error) {
	var targets []models.Target
	pattern := "%" + query + "%"
	err := r.db.Where("user_id = ? AND (title LIKE ? OR tags LIKE ?)", userID, pattern, pattern).
		Find(&targets).Error
	return targets, err
}
