package service

import (
	"math"
	"strconv"

	"levelup-go/internal/dto"
	"levelup-go/internal/models"
	"levelup-go/internal/repository"
)

// RoadmapService 学习路径服务
type RoadmapService struct {
	roadmapRepo *repository.RoadmapRepository
}

// NewRoadmapService 创建学习路径服务
func NewRoadmapService(roadmapRepo *repository.RoadmapRepository) *RoadmapService {
	return &RoadmapService{roadmapRepo: roadmapRepo}
}

// GetRoadmap 获取roadmap结构（主节点按顺序，挂各自的分支节点）。
// 范围内没有主节点时会自动创建一个默认节点，这是读取兼初始化操作。
func (s *RoadmapService) GetRoadmap(userID, targetID string) ([]dto.RoadmapNode, error) {
	mains, err := s.roadmapRepo.ListMainsOrInit(userID, targetID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RoadmapNode, 0, len(mains))
	for _, main := range mains {
		branches, err := s.roadmapRepo.ListBranchesByMain(strconv.FormatUint(uint64(main.ID), 10), targetID)
		if err != nil {
			return nil, err
		}

		children := make([]dto.RoadmapLeaf, 0, len(branches))
		for _, b := range branches {
			children = append(children, dto.RoadmapLeaf{
				ID:     b.ID,
				Title:  b.Title,
				Status: b.Status,
				Remark: b.Remark,
			})
		}

		result = append(result, dto.RoadmapNode{
			ID:       main.ID,
			Title:    main.Title,
			Status:   main.Status,
			Remark:   main.Remark,
			Children: children,
		})
	}

	return result, nil
}

// AddMainNode 新增主节点，insertAfterID为空时追加到末尾
func (s *RoadmapService) AddMainNode(userID, targetID, title, insertAfterID string) error {
	return s.roadmapRepo.InsertMainAt(userID, targetID, title, insertAfterID)
}

// AddBranchNode 新增分支节点
func (s *RoadmapService) AddBranchNode(userID, mainID, targetID, title string) error {
	return s.roadmapRepo.CreateBranch(&models.BranchNode{
		MainID:   mainID,
		UserID:   userID,
		TargetID: targetID,
		Title:    title,
		Status:   "todo",
	})
}

// UpdateMainNode 更新主节点信息
func (s *RoadmapService) UpdateMainNode(id uint, userID, targetID, title, status, remark string) error {
	return s.roadmapRepo.UpdateMain(id, userID, targetID, title, status, remark)
}

// UpdateBranchNode 更新分支节点信息
func (s *RoadmapService) UpdateBranchNode(id uint, userID, targetID, title, status, remark string) error {
	return s.roadmapRepo.UpdateBranch(id, userID, targetID, title, status, remark)
}

// DeleteMainNode 级联删除主节点、其分支节点及关联笔记
func (s *RoadmapService) DeleteMainNode(id uint, userID, targetID string) error {
	return s.roadmapRepo.DeleteMainCascade(id, userID, targetID)
}

// DeleteBranchNode 删除分支节点及关联笔记
func (s *RoadmapService) DeleteBranchNode(id uint, userID, targetID string) error {
	return s.roadmapRepo.DeleteBranchCascade(id, userID, targetID)
}

// GetProgress 分支节点完成率，保留4位小数，没有分支节点时为0
func (s *RoadmapService) GetProgress(userID, targetID string) (float64, error) {
	total, done, err := s.roadmapRepo.CountBranches(userID, targetID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return math.Round(float64(done)/float64(total)*10000) / 10000, nil
}

// SearchNodes 按标题搜索主/分支节点，主节点在前
func (s *RoadmapService) SearchNodes(userID, keyword string) ([]dto.NodeSearchResult, error) {
	mains, err := s.roadmapRepo.SearchMains(userID, keyword)
	if err != nil {
		return nil, err
	}
	branches, err := s.roadmapRepo.SearchBranches(userID, keyword)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NodeSearchResult, 0, len(mains)+len(branches))
	for _, m := range mains {
		result = append(result, dto.NodeSearchResult{
			ID:       m.ID,
			Title:    m.Title,
			TargetID: m.TargetID,
			NodeType: "main",
		})
	}
	for _, b := range branches {
		result = append(result, dto.NodeSearchResult{
			ID:       b.ID,
			Title:    b.Title,
			TargetID: b.TargetID,
			NodeType: "branch",
		})
	}
	return result, nil
}

// GetMainNodes 获取目标下的主节点列表
func (s *RoadmapService) GetMainNodes(targetID string) ([]dto.NodeBrief, error) {
	mains, err := s.roadmapRepo.ListMainsByTarget(targetID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NodeBrief, 0, len(mains))
	for _, m := range mains {
		result = append(result, dto.NodeBrief{ID: m.ID, Title: m.Title})
	}
	return result, nil
}

// GetBranchNodes 获取主节点下的分支节点列表
func (s *RoadmapService) GetBranchNodes(mainID string) ([]dto.NodeBrief, error) {
	branches, err := s.roadmapRepo.ListBranchesByMainID(mainID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NodeBrief, 0, len(branches))
	for _, b := range branches {
		result = append(result, dto.NodeBrief{ID: b.ID, Title: b.Title})
	}
	return result, nil
}
