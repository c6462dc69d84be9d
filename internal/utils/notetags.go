package utils

import (
	"bytes"
	"encoding/json"
)

// 笔记的tags字段是前端写入的JSON串，可能带 mainId/branchId/userId，
// 数字和字符串两种写法都存在，统一归一化为字符串比较。

// ParseNodeRef 从tags中解析roadmap节点关联。
// 返回节点类型（"main"/"branch"，无关联为空）和节点ID字符串。
// tags为空或不是合法JSON时视为无关联。
func ParseNodeRef(tags string) (string, string) {
	payload := decodeTags(tags)
	if payload == nil {
		return "", ""
	}

	if id := normalizeID(payload["mainId"]); id != "" {
		return "main", id
	}
	if id := normalizeID(payload["branchId"]); id != "" {
		return "branch", id
	}
	return "", ""
}

// RewriteTagUserID 改名时重写tags里的userId字段。
// 仅当tags可解析且userId等于旧用户名时返回重写后的串和true。
func RewriteTagUserID(tags, oldName, newName string) (string, bool) {
	payload := decodeTags(tags)
	if payload == nil {
		return tags, false
	}

	if normalizeID(payload["userId"]) != oldName {
		return tags, false
	}

	payload["userId"] = newName
	rewritten, err := json.Marshal(payload)
	if err != nil {
		return tags, false
	}
	return string(rewritten), true
}

func decodeTags(tags string) map[string]interface{} {
	if tags == "" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(tags)))
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil
	}
	return payload
}

func normalizeID(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return ""
	}
}
