package repository

import (
	"errors"

	"levelup-go/internal/models"
	"levelup-go/internal/utils"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByUsername 根据用户名获取用户
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername 判断用户名是否已存在
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// UpdatePassword 更新密码哈希
func (r *UserRepository) UpdatePassword(username string, passwordHash string) error {
	return r.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash).Error
}

// Rename 修改用户名，并把新用户名同步到所有以user_id关联的表。
// 笔记tags里嵌的userId字段等于旧用户名时一并重写。整体在一个事务内。
func (r *UserRepository) Rename(oldName, newName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("username = ?", oldName).
			Update("username", newName)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("用户不存在")
		}

		for _, model := range []interface{}{
			&models.Target{},
			&models.MainNode{},
			&models.BranchNode{},
			&models.Todo{},
		} {
			if err := tx.Model(model).
				Where("user_id = ?", oldName).
				Update("user_id", newName).Error; err != nil {
				return err
			}
		}

		var notes []models.Note
		if err := tx.Where("user_id = ?", oldName).Find(&notes).Error; err != nil {
			return err
		}
		for i := range notes {
			updates := map[string]interface{}{"user_id": newName}
			if rewritten, ok := utils.RewriteTagUserID(notes[i].Tags, oldName, newName); ok {
				updates["tags"] = rewritten
			}
			if err := tx.Model(&models.Note{}).
				Where("id = ?", notes[i].ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
