package dto

// TodoCreateRequest 新增待办请求
type TodoCreateRequest struct {
	Text string `json:"text" binding:"required"`
}

// TodoUpdateRequest 更新待办完成状态请求
type TodoUpdateRequest struct {
	Completed bool `json:"completed"`
}

// TodoResponse 待办事项响应
type TodoResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}
