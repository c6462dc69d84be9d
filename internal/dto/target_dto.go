package dto

// TargetRequest 创建/更新学习目标请求
type TargetRequest struct {
	Title    string   `json:"title" binding:"required"`
	Progress float64  `json:"progress"`
	Tags     []string `json:"tags"`
}

// TargetResponse 学习目标响应
type TargetResponse struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Progress float64  `json:"progress"`
	Tags     []string `json:"tags"`
	Update   string   `json:"update"`
	UserID   string   `json:"user_id"`
}
