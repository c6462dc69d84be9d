package service

import (
	"levelup-go/internal/dto"
	"levelup-go/internal/models"
	"levelup-go/internal/repository"
)

// TodoService 待办事项服务
type TodoService struct {
	todoRepo *repository.TodoRepository
}

// NewTodoService 创建待办服务
func NewTodoService(todoRepo *repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// List 获取用户的待办列表，新建在前
func (s *TodoService) List(userID string) ([]dto.TodoResponse, error) {
	todos, err := s.todoRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TodoResponse, 0, len(todos))
	for _, t := range todos {
		result = append(result, dto.TodoResponse{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05"),
		})
	}
	return result, nil
}

// Add 新增待办，初始为未完成
func (s *TodoService) Add(userID, text string) error {
	return s.todoRepo.Create(&models.Todo{
		UserID:    userID,
		Text:      text,
		Completed: false,
	})
}

// SetCompleted 更新完成状态
func (s *TodoService) SetCompleted(id uint, userID string, completed bool) error {
	return s.todoRepo.UpdateCompleted(id, userID, completed)
}

// Delete 删除待办
func (s *TodoService) Delete(id uint, userID string) error {
	return s.todoRepo.Delete(id, userID)
}
