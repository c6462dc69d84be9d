package handler

import (
	"levelup-go/internal/dto"
	"levelup-go/internal/middleware"
	"levelup-go/internal/service"
	"levelup-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RoadmapHandler 学习路径处理器
type RoadmapHandler struct {
	roadmapService *service.RoadmapService
}

// NewRoadmapHandler 创建学习路径处理器
func NewRoadmapHandler(roadmapService *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

// GetRoadmap 获取roadmap结构，范围为空时自动创建默认主节点
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	targetID := c.Query("target_id")
	if targetID == "" {
		utils.BadRequest(c, "缺少target_id")
		return
	}

	roadmap, err := h.roadmapService.GetRoadmap(userID, targetID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, roadmap)
}

// AddMainNode 新增主节点，支持插入到指定节点后
func (h *RoadmapHandler) AddMainNode(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.MainNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "技能点标题和目标ID不能为空")
		return
	}

	targetID := utils.IDString(req.TargetID)
	if targetID == "" {
		utils.BadRequest(c, "技能点标题和目标ID不能为空")
		return
	}

	if err := h.roadmapService.AddMainNode(userID, targetID, req.Title, utils.IDString(req.InsertAfterID)); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}

// AddBranchNode 新增分支节点
func (h *RoadmapHandler) AddBranchNode(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.BranchNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "分技能点参数不完整")
		return
	}

	mainID := utils.IDString(req.MainID)
	targetID := utils.IDString(req.TargetID)
	if mainID == "" || targetID == "" {
		utils.BadRequest(c, "分技能点参数不完整")
		return
	}

	if err := h.roadmapService.AddBranchNode(userID, mainID, targetID, req.Title); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}

// UpdateMainNode 更新主节点信息
func (h *RoadmapHandler) UpdateMainNode(c *gin.Context) {
	h.updateNode(c, h.roadmapService.UpdateMainNode)
}

// UpdateBranchNode 更新分支节点信息
func (h *RoadmapHandler) UpdateBranchNode(c *gin.Context) {
	h.updateNode(c, h.roadmapService.UpdateBranchNode)
}

func (h *RoadmapHandler) updateNode(c *gin.Context, update func(id uint, userID, targetID, title, status, remark string) error) {
	userID, _ := middleware.GetUserID(c)

	nodeID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的节点ID")
		return
	}

	var req dto.NodeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "参数不完整")
		return
	}

	targetID := utils.IDString(req.TargetID)
	if targetID == "" {
		utils.BadRequest(c, "参数不完整")
		return
	}

	if err := update(nodeID, userID, targetID, req.Title, req.Status, req.Remark); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}

// DeleteMainNode 级联删除主节点
func (h *RoadmapHandler) DeleteMainNode(c *gin.Context) {
	h.deleteNode(c, h.roadmapService.DeleteMainNode)
}

// DeleteBranchNode 删除分支节点
func (h *RoadmapHandler) DeleteBranchNode(c *gin.Context) {
	h.deleteNode(c, h.roadmapService.DeleteBranchNode)
}

func (h *RoadmapHandler) deleteNode(c *gin.Context, del func(id uint, userID, targetID string) error) {
	userID, _ := middleware.GetUserID(c)

	nodeID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的节点ID")
		return
	}

	targetID := c.Query("target_id")
	if targetID == "" {
		utils.BadRequest(c, "缺少target_id")
		return
	}

	if err := del(nodeID, userID, targetID); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nil)
}

// SearchNodes 搜索主/分支节点
func (h *RoadmapHandler) SearchNodes(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	keyword := c.Query("q")

	results, err := h.roadmapService.SearchNodes(userID, keyword)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, results)
}

// GetMainNodes 获取目标下的主节点列表
func (h *RoadmapHandler) GetMainNodes(c *gin.Context) {
	targetID := c.Query("target_id")
	if targetID == "" {
		utils.BadRequest(c, "缺少target_id")
		return
	}

	nodes, err := h.roadmapService.GetMainNodes(targetID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nodes)
}

// GetBranchNodes 获取主节点下的分支节点列表
func (h *RoadmapHandler) GetBranchNodes(c *gin.Context) {
	mainID := c.Query("main_id")
	if mainID == "" {
		utils.BadRequest(c, "缺少main_id")
		return
	}

	nodes, err := h.roadmapService.GetBranchNodes(mainID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, nodes)
}

// GetProgress 获取目标的分支节点完成率
func (h *RoadmapHandler) GetProgress(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	targetID := c.Query("target_id")
	if targetID == "" {
		utils.BadRequest(c, "缺少target_id")
		return
	}

	progress, err := h.roadmapService.GetProgress(userID, targetID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(200, gin.H{"success": true, "progress": progress})
}
