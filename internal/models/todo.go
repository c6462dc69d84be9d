package models

import (
	"time"
)

// Todo 待办事项模型
type Todo struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"size:50;not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Todo) TableName() string {
	return "todos"
}
