package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	s, _ := newTodoService(t)

	require.NoError(t, s.Add("alice", "买书"))
	require.NoError(t, s.Add("alice", "看文档"))
	require.NoError(t, s.Add("bob", "别人的事"))

	// 新建在前
	todos, err := s.List("alice")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "看文档", todos[0].Text)
	assert.Equal(t, "买书", todos[1].Text)
	assert.False(t, todos[0].Completed)

	// 完成状态切换
	require.NoError(t, s.SetCompleted(todos[0].ID, "alice", true))
	todos, err = s.List("alice")
	require.NoError(t, err)
	assert.True(t, todos[0].Completed)

	// 非属主操作不生效
	require.NoError(t, s.SetCompleted(todos[1].ID, "bob", true))
	todos, err = s.List("alice")
	require.NoError(t, err)
	assert.False(t, todos[1].Completed)

	require.NoError(t, s.Delete(todos[0].ID, "bob"))
	todos, err = s.List("alice")
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	require.NoError(t, s.Delete(todos[0].ID, "alice"))
	todos, err = s.List("alice")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "买书", todos[0].Text)
}
