package service

import (
	"testing"

	"levelup-go/internal/dto"
	"levelup-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNoteAppendsMarkdownSuffix(t *testing.T) {
	s, _ := newNoteService(t)

	note, err := s.Create("alice", "学习笔记", "# 标题", "")
	require.NoError(t, err)
	assert.Equal(t, "学习笔记.md", note.Name)

	// 已有后缀不重复追加
	note, err = s.Create("alice", "其他.md", "", "")
	require.NoError(t, err)
	assert.Equal(t, "其他.md", note.Name)
}

func TestCreateNoteDuplicateName(t *testing.T) {
	s, _ := newNoteService(t)

	_, err := s.Create("alice", "笔记", "", "")
	require.NoError(t, err)

	// 补后缀之后同名也算重复
	_, err = s.Create("alice", "笔记.md", "", "")
	assert.ErrorIs(t, err, ErrNoteExists)

	// 不同用户不冲突
	_, err = s.Create("bob", "笔记", "", "")
	assert.NoError(t, err)
}

func TestCreateNoteParsesNodeRef(t *testing.T) {
	s, db := newNoteService(t)

	_, err := s.Create("alice", "主节点笔记", "", `{"mainId":12,"userId":"alice"}`)
	require.NoError(t, err)
	_, err = s.Create("alice", "分支笔记", "", `{"branchId":"34"}`)
	require.NoError(t, err)
	_, err = s.Create("alice", "坏标签", "", "not-json")
	require.NoError(t, err)

	var notes []models.Note
	require.NoError(t, db.Order("id").Find(&notes).Error)
	require.Len(t, notes, 3)

	assert.Equal(t, "main", notes[0].NodeKind)
	assert.Equal(t, "12", notes[0].NodeID)
	assert.Equal(t, "branch", notes[1].NodeKind)
	assert.Equal(t, "34", notes[1].NodeID)
	assert.Equal(t, "", notes[2].NodeKind)
	// 原始tags原样保留
	assert.Equal(t, "not-json", notes[2].Tags)
}

func TestUpdateNotePartialFields(t *testing.T) {
	s, _ := newNoteService(t)

	note, err := s.Create("alice", "笔记", "旧内容", "")
	require.NoError(t, err)

	// 只改内容
	updated, err := s.Update(note.ID, "alice", &dto.NoteUpdateRequest{Content: "新内容"})
	require.NoError(t, err)
	assert.Equal(t, "新内容", updated.Content)
	assert.Equal(t, "笔记.md", updated.Name)

	// 改名自动补后缀
	updated, err = s.Update(note.ID, "alice", &dto.NoteUpdateRequest{Name: "改名"})
	require.NoError(t, err)
	assert.Equal(t, "改名.md", updated.Name)
	assert.Equal(t, "新内容", updated.Content)

	// 改tags重算节点关联
	tags := `{"branchId":7}`
	_, err = s.Update(note.ID, "alice", &dto.NoteUpdateRequest{Tags: &tags})
	require.NoError(t, err)

	fetched, err := s.Get(note.ID)
	require.NoError(t, err)
	assert.Equal(t, tags, fetched.Tags)

	// 非属主更新失败
	_, err = s.Update(note.ID, "bob", &dto.NoteUpdateRequest{Content: "x"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestRenameNoteDuplicateName(t *testing.T) {
	s, _ := newNoteService(t)

	_, err := s.Create("alice", "已有", "", "")
	require.NoError(t, err)
	note, err := s.Create("alice", "笔记", "", "")
	require.NoError(t, err)

	// 改名撞上已有笔记（含补后缀后同名）
	_, err = s.Update(note.ID, "alice", &dto.NoteUpdateRequest{Name: "已有"})
	assert.ErrorIs(t, err, ErrNoteExists)
	_, err = s.Update(note.ID, "alice", &dto.NoteUpdateRequest{Name: "已有.md"})
	assert.ErrorIs(t, err, ErrNoteExists)

	// 改成当前名字不算冲突
	updated, err := s.Update(note.ID, "alice", &dto.NoteUpdateRequest{Name: "笔记", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "笔记.md", updated.Name)
	assert.Equal(t, "x", updated.Content)
}

func TestDeleteNoteReturnsName(t *testing.T) {
	s, _ := newNoteService(t)

	note, err := s.Create("alice", "笔记", "", "")
	require.NoError(t, err)

	name, err := s.Delete(note.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "笔记.md", name)

	// 重复删除不报错，返回占位名
	name, err = s.Delete(note.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, UnknownNoteName, name)
}

func TestListAndSearchNotes(t *testing.T) {
	s, _ := newNoteService(t)

	_, err := s.Create("alice", "go并发", "", "")
	require.NoError(t, err)
	_, err = s.Create("alice", "rust入门", "", "")
	require.NoError(t, err)
	_, err = s.Create("bob", "go基础", "", "")
	require.NoError(t, err)

	list, err := s.List("alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	results, err := s.Search("alice", "go")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "go并发.md", results[0].Name)

	// 空关键词返回全部
	results, err = s.Search("alice", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
