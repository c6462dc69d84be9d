package service

import (
	"strconv"
	"testing"

	"levelup-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTargetWithInitialNode(t *testing.T) {
	s, db := newTargetService(t)

	id, err := s.Create("alice", "学习Go", 0, []string{"编程", "后端"})
	require.NoError(t, err)
	require.NotZero(t, id)

	// 自动创建了初始主节点
	var node models.MainNode
	require.NoError(t, db.Where("user_id = ? AND target_id = ?", "alice", strconv.FormatUint(uint64(id), 10)).
		First(&node).Error)
	assert.Equal(t, "第一个技能点", node.Title)
	assert.Equal(t, "todo", node.Status)
}

func TestTargetTagsRoundTrip(t *testing.T) {
	s, _ := newTargetService(t)

	tags := []string{"编程", "后端", "go"}
	_, err := s.Create("alice", "学习Go", 0.3, tags)
	require.NoError(t, err)

	targets, err := s.List("alice")
	require.NoError(t, err)

	require.Len(t, targets, 1)
	assert.Equal(t, tags, targets[0].Tags)
	assert.Equal(t, 0.3, targets[0].Progress)

	// 无标签时返回空列表而非[""]
	_, err = s.Create("alice", "无标签", 0, nil)
	require.NoError(t, err)

	targets, err = s.List("alice")
	require.NoError(t, err)
	require.Len(t, targets, 2)
	for _, target := range targets {
		if target.Title == "无标签" {
			assert.Equal(t, []string{}, target.Tags)
		}
	}
}

func TestUpdateTargetForbiddenForOtherUser(t *testing.T) {
	s, _ := newTargetService(t)

	id, err := s.Create("alice", "学习Go", 0, []string{"编程"})
	require.NoError(t, err)

	err = s.Update(id, "bob", "改掉", 1, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	// 原数据不变
	targets, err := s.List("alice")
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "学习Go", targets[0].Title)
	assert.Equal(t, []string{"编程"}, targets[0].Tags)

	err = s.Update(id, "alice", "学习Go进阶", 0.5, []string{"编程"})
	require.NoError(t, err)

	targets, err = s.List("alice")
	require.NoError(t, err)
	assert.Equal(t, "学习Go进阶", targets[0].Title)
}

func TestDeleteTarget(t *testing.T) {
	s, _ := newTargetService(t)

	id, err := s.Create("alice", "学习Go", 0, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(id, "bob"), ErrForbidden)
	require.NoError(t, s.Delete(id, "alice"))

	assert.ErrorIs(t, s.Delete(id, "alice"), ErrTargetNotFound)

	targets, err := s.List("alice")
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestSearchTargets(t *testing.T) {
	s, _ := newTargetService(t)

	_, err := s.Create("alice", "学习Go", 0, []string{"编程"})
	require.NoError(t, err)
	_, err = s.Create("alice", "健身计划", 0, []string{"运动"})
	require.NoError(t, err)
	_, err = s.Create("bob", "学习Go", 0, nil)
	require.NoError(t, err)

	// 标题匹配
	results, err := s.Search("alice", "Go")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "学习Go", results[0].Title)

	// 标签匹配
	results, err = s.Search("alice", "运动")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "健身计划", results[0].Title)

	// 空关键词退化为全量列表
	results, err = s.Search("alice", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
