package dto

// 前端对id类字段数字和字符串两种写法都会发，body里的id字段统一用
// interface{}接收，由handler归一化为字符串。

// MainNodeRequest 新增主节点请求
type MainNodeRequest struct {
	UserID        interface{} `json:"user_id"`
	Title         string      `json:"title" binding:"required"`
	TargetID      interface{} `json:"target_id" binding:"required"`
	InsertAfterID interface{} `json:"insert_after_id"`
}

// BranchNodeRequest 新增分支节点请求
type BranchNodeRequest struct {
	UserID   interface{} `json:"user_id"`
	MainID   interface{} `json:"main_id" binding:"required"`
	Title    string      `json:"title" binding:"required"`
	TargetID interface{} `json:"target_id" binding:"required"`
}

// NodeUpdateRequest 更新主/分支节点请求
type NodeUpdateRequest struct {
	UserID   interface{} `json:"user_id"`
	Title    string      `json:"title" binding:"required"`
	Status   string      `json:"status" binding:"required"`
	Remark   string      `json:"remark"`
	TargetID interface{} `json:"target_id" binding:"required"`
}

// RoadmapNode 主节点及其分支节点
type RoadmapNode struct {
	ID       uint          `json:"id"`
	Title    string        `json:"title"`
	Status   string        `json:"status"`
	Remark   string        `json:"remark"`
	Children []RoadmapLeaf `json:"children"`
}

// RoadmapLeaf 分支节点
type RoadmapLeaf struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Remark string `json:"remark"`
}

// NodeSearchResult 节点搜索结果
type NodeSearchResult struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	TargetID string `json:"target_id"`
	NodeType string `json:"node_type"`
}

// NodeBrief 节点简要信息
type NodeBrief struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
