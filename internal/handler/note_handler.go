package handler

import (
	"errors"

	"levelup-go/internal/dto"
	"levelup-go/internal/middleware"
	"levelup-go/internal/service"
	"levelup-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// NoteHandler md笔记处理器
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler 创建笔记处理器
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// List 获取当前用户的笔记列表
func (h *NoteHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	notes, err := h.noteService.List(userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, notes)
}

// Create 新建笔记
func (h *NoteHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "文件名不能为空")
		return
	}

	note, err := h.noteService.Create(userID, req.Name, req.Content, req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrNoteExists) {
			utils.Conflict(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "文件创建成功", note)
}

// Get 获取笔记内容
func (h *NoteHandler) Get(c *gin.Context) {
	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的文件ID")
		return
	}

	note, err := h.noteService.Get(noteID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			utils.NotFound(c, "文件不存在")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, note)
}

// Update 更新笔记，name/content/tags至少提供一个
func (h *NoteHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的文件ID")
		return
	}

	var req dto.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}

	if req.Name == "" && req.Content == "" && req.Tags == nil {
		utils.BadRequest(c, "必须提供name、content或tags字段")
		return
	}

	note, err := h.noteService.Update(noteID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoteNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNoteExists):
			utils.Conflict(c, err.Error())
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}

	utils.SuccessWithMessage(c, "文件更新成功", note)
}

// Delete 删除笔记，返回被删文件名
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	noteID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的文件ID")
		return
	}

	name, err := h.noteService.Delete(noteID, userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "文件删除成功", gin.H{"name": name})
}

// Search 按文件名搜索笔记
func (h *NoteHandler) Search(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	keyword := c.Query("q")

	notes, err := h.noteService.Search(userID, keyword)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, notes)
}
