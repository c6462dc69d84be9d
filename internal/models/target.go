package models

// Target 学习目标模型
//
// tags 以逗号拼接存储，update_time 保留 YYYY-MM-DD 日期字符串，
// user_id 为所属用户的用户名。
type Target struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	Title      string  `gorm:"size:255;not null" json:"title"`
	Progress   float64 `gorm:"default:0" json:"progress"`
	Tags       string  `gorm:"type:text" json:"tags"`
	UpdateTime string  `gorm:"column:update_time;size:20" json:"update"`
	UserID     string  `gorm:"size:50;not null;index" json:"user_id"`
}

// TableName 指定表名
func (Target) TableName() string {
	return "targets"
}
