package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNodeRef(t *testing.T) {
	tests := []struct {
		name     string
		tags     string
		wantKind string
		wantID   string
	}{
		{"数字mainId", `{"mainId":12}`, "main", "12"},
		{"字符串mainId", `{"mainId":"12"}`, "main", "12"},
		{"branchId", `{"branchId":34,"userId":"alice"}`, "branch", "34"},
		{"mainId优先", `{"mainId":1,"branchId":2}`, "main", "1"},
		{"无关联", `{"userId":"alice"}`, "", ""},
		{"空串", "", "", ""},
		{"非法JSON", "not-json", "", ""},
		{"null值", `{"mainId":null}`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id := ParseNodeRef(tt.tags)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestRewriteTagUserID(t *testing.T) {
	rewritten, ok := RewriteTagUserID(`{"mainId":1,"userId":"alice"}`, "alice", "alice2")
	assert.True(t, ok)
	assert.Contains(t, rewritten, `"userId":"alice2"`)
	assert.Contains(t, rewritten, `"mainId":1`)

	// userId不匹配时不动
	original := `{"userId":"bob"}`
	rewritten, ok = RewriteTagUserID(original, "alice", "alice2")
	assert.False(t, ok)
	assert.Equal(t, original, rewritten)

	// 非法JSON原样返回
	rewritten, ok = RewriteTagUserID("not-json", "alice", "alice2")
	assert.False(t, ok)
	assert.Equal(t, "not-json", rewritten)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "", IDString(nil))
	assert.Equal(t, "12", IDString("12"))
	assert.Equal(t, "12", IDString(float64(12)))
	assert.Equal(t, "", IDString(true))
}
