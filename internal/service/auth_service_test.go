package service

import (
	"testing"
	"time"

	"levelup-go/internal/dto"
	"levelup-go/internal/models"
	"levelup-go/internal/repository"
	"levelup-go/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := newTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)
	return NewAuthService(repository.NewUserRepository(db), jwtManager), db
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s, db := newAuthService(t)

	req := &dto.RegisterRequest{Username: "alice", Password: "secret123"}
	user, err := s.Register(req)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	// 密码不以明文入库
	assert.NotEqual(t, "secret123", user.PasswordHash)

	_, err = s.Register(req)
	assert.ErrorIs(t, err, ErrUserExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsInvalidUsername(t *testing.T) {
	s, _ := newAuthService(t)

	_, err := s.Register(&dto.RegisterRequest{Username: "a b", Password: "secret123"})
	assert.Error(t, err)

	_, err = s.Register(&dto.RegisterRequest{Username: "ab", Password: "secret123"})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	s, _ := newAuthService(t)

	_, err := s.Register(&dto.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	resp, err := s.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)

	_, err = s.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(&dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	s, _ := newAuthService(t)

	_, err := s.Register(&dto.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.ChangePassword("alice", "wrong", "newpass123"), ErrPasswordMismatch)

	require.NoError(t, s.ChangePassword("alice", "secret123", "newpass123"))

	_, err = s.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"})
	assert.Error(t, err)
	_, err = s.Login(&dto.LoginRequest{Username: "alice", Password: "newpass123"})
	assert.NoError(t, err)
}

func TestRenameUserPropagates(t *testing.T) {
	db := newTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)
	auth := NewAuthService(repository.NewUserRepository(db), jwtManager)
	targets := NewTargetService(repository.NewTargetRepository(db))
	roadmap := NewRoadmapService(repository.NewRoadmapRepository(db))
	notes := NewNoteService(repository.NewNoteRepository(db))
	todos := NewTodoService(repository.NewTodoRepository(db))

	_, err := auth.Register(&dto.RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	_, err = targets.Create("alice", "学习Go", 0, nil)
	require.NoError(t, err)
	require.NoError(t, todos.Add("alice", "买书"))
	_, err = notes.Create("alice", "笔记", "内容", `{"mainId":1,"userId":"alice"}`)
	require.NoError(t, err)
	_, err = notes.Create("alice", "其他", "内容", `{"userId":"someoneelse"}`)
	require.NoError(t, err)

	require.NoError(t, auth.RenameUser("alice", "alice2"))

	// 占用的用户名不能改
	_, err = auth.Register(&dto.RegisterRequest{Username: "bob", Password: "secret123"})
	require.NoError(t, err)
	assert.ErrorIs(t, auth.RenameUser("alice2", "bob"), ErrUserExists)

	// 旧用户名登录失败，新用户名成功
	_, err = auth.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"})
	assert.Error(t, err)
	_, err = auth.Login(&dto.LoginRequest{Username: "alice2", Password: "secret123"})
	require.NoError(t, err)

	// 各表user_id已同步
	targetList, err := targets.List("alice2")
	require.NoError(t, err)
	assert.Len(t, targetList, 1)

	todoList, err := todos.List("alice2")
	require.NoError(t, err)
	assert.Len(t, todoList, 1)

	roadmapNodes, err := roadmap.GetMainNodes("1")
	require.NoError(t, err)
	assert.Len(t, roadmapNodes, 1)

	var mainNode models.MainNode
	require.NoError(t, db.First(&mainNode).Error)
	assert.Equal(t, "alice2", mainNode.UserID)

	// 笔记tags里的userId也被重写，其他用户的userId保持原样
	var noteRows []models.Note
	require.NoError(t, db.Order("id").Find(&noteRows).Error)
	require.Len(t, noteRows, 2)
	assert.Equal(t, "alice2", noteRows[0].UserID)
	assert.Contains(t, noteRows[0].Tags, `"userId":"alice2"`)
	assert.Contains(t, noteRows[1].Tags, `"userId":"someoneelse"`)
}
