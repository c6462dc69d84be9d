package handler

import (
	"strings"

	"levelup-go/internal/dto"
	"levelup-go/internal/middleware"
	"levelup-go/internal/service"
	"levelup-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TodoHandler 待办事项处理器
type TodoHandler struct {
	todoService *service.TodoService
}

// NewTodoHandler 创建待办处理器
func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// List 获取当前用户的待办列表
func (h *TodoHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	todos, err := h.todoService.List(userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, todos)
}

// Create 新增待办
func (h *TodoHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "待办内容不能为空")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		utils.BadRequest(c, "待办内容不能为空")
		return
	}

	if err := h.todoService.Add(userID, text); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}

// Update 更新待办完成状态
func (h *TodoHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	todoID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的待办ID")
		return
	}

	var req dto.TodoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}

	if err := h.todoService.SetCompleted(todoID, userID, req.Completed); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}

// Delete 删除待办
func (h *TodoHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	todoID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的待办ID")
		return
	}

	if err := h.todoService.Delete(todoID, userID); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}
