package utils

import (
	"encoding/json"
	"strconv"
)

// IDString 把请求体里的id类字段归一化为字符串。
// JSON数字经gin解码后是float64，id均为整数值。
func IDString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatInt(int64(value), 10)
	case json.Number:
		return value.String()
	default:
		return ""
	}
}
