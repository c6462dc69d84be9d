package dto

// NoteCreateRequest 新建笔记请求
type NoteCreateRequest struct {
	Name    string      `json:"name" binding:"required"`
	Content string      `json:"content"`
	Tags    string      `json:"tags"`
	UserID  interface{} `json:"user_id"`
}

// NoteUpdateRequest 更新笔记请求，name/content/tags至少提供一个
type NoteUpdateRequest struct {
	Name    string      `json:"name"`
	Content string      `json:"content"`
	Tags    *string     `json:"tags"`
	UserID  interface{} `json:"user_id"`
}

// NoteResponse 笔记完整信息
type NoteResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	ParentID  *uint  `json:"parent_id"`
	IsDir     bool   `json:"is_dir"`
	Tags      string `json:"tags"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NoteListItem 笔记列表项
type NoteListItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
	IsDir    bool   `json:"is_dir"`
	Tags     string `json:"tags"`
}

// NoteSearchItem 笔记搜索结果项
type NoteSearchItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Tags string `json:"tags"`
}
