package repository

import (
	"strconv"
)

// DefaultMainNodeTitle 新目标/空roadmap自动创建的主节点标题
const DefaultMainNodeTitle = "第一个技能点"

func uintToString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
