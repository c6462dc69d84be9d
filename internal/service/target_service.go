package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"levelup-go/internal/dto"
	"levelup-go/internal/models"
	"levelup-go/internal/repository"

	"gorm.io/gorm"
)

// TargetService 学习目标服务
type TargetService struct {
	targetRepo *repository.TargetRepository
}

// NewTargetService 创建学习目标服务
func NewTargetService(targetRepo *repository.TargetRepository) *TargetService {
	return &TargetService{targetRepo: targetRepo}
}

// Create 新建学习目标，同时自动创建初始roadmap主节点
func (s *TargetService) Create(userID, title string, progress float64, tags []string) (uint, error) {
	target := &models.Target{
		Title:      title,
		Progress:   progress,
		Tags:       strings.Join(tags, ","),
		UpdateTime: time.Now().Format("2006-01-02"),
		UserID:     userID,
	}

	if err := s.targetRepo.CreateWithInitialNode(target, repository.DefaultMainNodeTitle); err != nil {
		return 0, fmt.Errorf("添加失败: %w", err)
	}
	return target.ID, nil
}

// List 获取用户的所有学习目标
func (s *TargetService) List(userID string) ([]dto.TargetResponse, error) {
	targets, err := s.targetRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	return toTargetResponses(targets), nil
}

// Update 更新学习目标，仅限所属用户
func (s *TargetService) Update(id uint, userID, title string, progress float64, tags []string) error {
	target, err := s.targetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}
	if target.UserID != userID {
		return ErrForbidden
	}

	return s.targetRepo.Update(id, userID, title, progress, strings.Join(tags, ","))
}

// Delete 删除学习目标，仅限所属用户
func (s *TargetService) Delete(id uint, userID string) error {
	target, err := s.targetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}
	if target.UserID != userID {
		return ErrForbidden
	}

	return s.targetRepo.Delete(id, userID)
}

// Search 按标题或标签模糊搜索，空关键词退化为全量列表
func (s *TargetService) Search(userID, query string) ([]dto.TargetResponse, error) {
	if query == "" {
		return s.List(userID)
	}

	targets, err := s.targetRepo.Search(userID, query)
	if err != nil {
		return nil, err
	}
	return toTargetResponses(targets), nil
}

func toTargetResponses(targets []models.Target) []dto.TargetResponse {
	result := make([]dto.TargetResponse, 0, len(targets))
	for _, t := range targets {
		result = append(result, dto.TargetResponse{
			ID:       t.ID,
			Title:    t.Title,
			Progress: t.Progress,
			Tags:     splitTags(t.Tags),
			Update:   t.UpdateTime,
			UserID:   t.UserID,
		})
	}
	return result
}

// splitTags 逗号串转标签列表，空串对应空列表
func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}
