package models

import (
	"time"
)

// MainNode 学习路径主节点
//
// node_order 定义同一 (user_id, target_id) 范围内的展示顺序。
type MainNode struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"size:50;not null;index:idx_main_scope" json:"user_id"`
	TargetID  string    `gorm:"size:50;not null;index:idx_main_scope" json:"target_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Status    string    `gorm:"size:20;default:''" json:"status"`
	Remark    string    `gorm:"type:text;default:''" json:"remark"`
	NodeOrder int       `gorm:"column:node_order;default:0" json:"node_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (MainNode) TableName() string {
	return "roadmap_main_nodes"
}

// BranchNode 学习路径分支节点，归属于一个主节点，无独立排序
type BranchNode struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MainID    string    `gorm:"size:50;not null;index" json:"main_id"`
	UserID    string    `gorm:"size:50;not null;index" json:"user_id"`
	TargetID  string    `gorm:"size:50;not null;index" json:"target_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Status    string    `gorm:"size:20;default:''" json:"status"`
	Remark    string    `gorm:"type:text;default:''" json:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (BranchNode) TableName() string {
	return "roadmap_branch_nodes"
}
