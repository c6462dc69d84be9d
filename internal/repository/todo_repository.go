package repository

import (
	"levelup-go/internal/models"

	"gorm.io/gorm"
)

// TodoRepository 待办事项数据访问层
type TodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository 创建待办Repository
func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create 创建待办
func (r *TodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// ListByUserID 获取用户的所有待办，新建在前
func (r *TodoRepository) ListByUserID(userID string) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&todos).Error
	return todos, err
}

// UpdateCompleted 更新完成状态
func (r *TodoRepository) UpdateCompleted(id uint, userID string, completed bool) error {
	return r.db.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("completed", completed).Error
}

// Delete 删除待办
func (r *TodoRepository) Delete(id uint, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Todo{}).Error
}
