package service

import (
	"errors"
	"fmt"
	"strings"

	"levelup-go/internal/dto"
	"levelup-go/internal/models"
	"levelup-go/internal/repository"
	"levelup-go/internal/utils"

	"gorm.io/gorm"
)

// UnknownNoteName 删除不存在的笔记时返回的占位名
const UnknownNoteName = "未知文件"

// NoteService md笔记服务
type NoteService struct {
	noteRepo *repository.NoteRepository
}

// NewNoteService 创建笔记服务
func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// List 获取用户的笔记列表
func (s *NoteService) List(userID string) ([]dto.NoteListItem, error) {
	notes, err := s.noteRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NoteListItem, 0, len(notes))
	for _, n := range notes {
		result = append(result, dto.NoteListItem{
			ID:       n.ID,
			Name:     n.Name,
			ParentID: n.ParentID,
			IsDir:    n.IsDir,
			Tags:     n.Tags,
		})
	}
	return result, nil
}

// Create 新建笔记。文件名缺少.md后缀时自动补上，
// 同一用户下同名笔记不允许重复。
func (s *NoteService) Create(userID, name, content, tags string) (*dto.NoteResponse, error) {
	name = ensureMarkdownSuffix(name)

	exists, err := s.noteRepo.ExistsByNameAndUserID(name, userID)
	if err != nil {
		return nil, fmt.Errorf("检查文件名失败: %w", err)
	}
	if exists {
		return nil, ErrNoteExists
	}

	nodeKind, nodeID := utils.ParseNodeRef(tags)
	note := &models.Note{
		Name:     name,
		Content:  content,
		Tags:     tags,
		NodeKind: nodeKind,
		NodeID:   nodeID,
		UserID:   userID,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("创建文件失败: %w", err)
	}
	return toNoteResponse(note), nil
}

// Get 获取笔记内容
func (s *NoteService) Get(id uint) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Update 部分更新笔记，name/content/tags至少一项。
// 改名同样不允许与已有笔记重名，tags变化时重算节点关联，
// updated_at总是刷新。
func (s *NoteService) Update(id uint, userID string, req *dto.NoteUpdateRequest) (*dto.NoteResponse, error) {
	current, err := s.noteRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		name := ensureMarkdownSuffix(req.Name)
		if name != current.Name {
			exists, err := s.noteRepo.ExistsByNameAndUserID(name, userID)
			if err != nil {
				return nil, fmt.Errorf("检查文件名失败: %w", err)
			}
			if exists {
				return nil, ErrNoteExists
			}
		}
		updates["name"] = name
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Tags != nil {
		nodeKind, nodeID := utils.ParseNodeRef(*req.Tags)
		updates["tags"] = *req.Tags
		updates["node_kind"] = nodeKind
		updates["node_id"] = nodeID
	}

	if err := s.noteRepo.Updates(id, userID, updates); err != nil {
		return nil, fmt.Errorf("更新文件失败: %w", err)
	}

	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// Delete 删除笔记，返回被删笔记的文件名。
// 笔记已不存在时是无害操作，返回占位名。
func (s *NoteService) Delete(id uint, userID string) (string, error) {
	note, err := s.noteRepo.GetByIDAndUserID(id, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	name := UnknownNoteName
	if note != nil {
		name = note.Name
	}

	if err := s.noteRepo.Delete(id, userID); err != nil {
		return "", err
	}
	return name, nil
}

// Search 按文件名模糊搜索
func (s *NoteService) Search(userID, keyword string) ([]dto.NoteSearchItem, error) {
	notes, err := s.noteRepo.SearchByName(userID, keyword)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NoteSearchItem, 0, len(notes))
	for _, n := range notes {
		result = append(result, dto.NoteSearchItem{
			ID:   n.ID,
			Name: n.Name,
			Tags: n.Tags,
		})
	}
	return result, nil
}

func ensureMarkdownSuffix(name string) string {
	if !strings.HasSuffix(name, ".md") {
		return name + ".md"
	}
	return name
}

func toNoteResponse(note *models.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:        note.ID,
		Name:      note.Name,
		Content:   note.Content,
		ParentID:  note.ParentID,
		IsDir:     note.IsDir,
		Tags:      note.Tags,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: note.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
