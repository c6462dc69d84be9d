package models

import (
	"time"
)

// Note md笔记文件模型（files表）
//
// tags 为前端提交的原始JSON串，原样存储返回。node_kind/node_id 是
// 从tags中解析出的roadmap节点关联（"main"或"branch"），级联删除
// 按这两列匹配，不再逐行解析tags。
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null;index:idx_note_name" json:"name"`
	Content   string    `gorm:"type:text" json:"content"`
	ParentID  *uint     `gorm:"column:parent_id" json:"parent_id"`
	IsDir     bool      `gorm:"default:false" json:"is_dir"`
	Tags      string    `gorm:"type:text;default:''" json:"tags"`
	NodeKind  string    `gorm:"size:10;default:'';index:idx_note_node" json:"-"`
	NodeID    string    `gorm:"size:50;default:'';index:idx_note_node" json:"-"`
	UserID    string    `gorm:"size:50;not null;index:idx_note_name" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Note) TableName() string {
	return "files"
}
