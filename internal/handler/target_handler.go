package handler

import (
	"errors"
	"strconv"

	"levelup-go/internal/dto"
	"levelup-go/internal/middleware"
	"levelup-go/internal/service"
	"levelup-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TargetHandler 学习目标处理器
type TargetHandler struct {
	targetService *service.TargetService
}

// NewTargetHandler 创建学习目标处理器
func NewTargetHandler(targetService *service.TargetService) *TargetHandler {
	return &TargetHandler{targetService: targetService}
}

// List 获取当前用户的所有学习目标
func (h *TargetHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	targets, err := h.targetService.List(userID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, targets)
}

// Create 新建学习目标
func (h *TargetHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "标题不能为空")
		return
	}

	if _, err := h.targetService.Create(userID, req.Title, req.Progress, req.Tags); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "添加成功", nil)
}

// Update 更新学习目标
func (h *TargetHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的目标ID")
		return
	}

	var req dto.TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "标题不能为空")
		return
	}

	if err := h.targetService.Update(targetID, userID, req.Title, req.Progress, req.Tags); err != nil {
		switch {
		case errors.Is(err, service.ErrTargetNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, service.ErrForbidden):
			utils.Forbidden(c, err.Error())
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}

	utils.SuccessWithMessage(c, "更新成功", nil)
}

// Delete 删除学习目标
func (h *TargetHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的目标ID")
		return
	}

	if err := h.targetService.Delete(targetID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrTargetNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, service.ErrForbidden):
			utils.Forbidden(c, err.Error())
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}

// Search 按标题或标签搜索学习目标
func (h *TargetHandler) Search(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	query := c.Query("query")

	targets, err := h.targetService.Search(userID, query)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, targets)
}

// parseIDParam 解析路径里的数字ID
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
