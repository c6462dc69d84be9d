package service

import (
	"fmt"

	"levelup-go/internal/dto"
	"levelup-go/internal/models"
	"levelup-go/internal/repository"
	"levelup-go/internal/utils"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register 用户注册
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := utils.ValidateStruct(struct {
		Username string `validate:"username"`
	}{Username: req.Username}); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// Login 用户登录，成功返回JWT
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserInfo{
			Username: user.Username,
		},
	}, nil
}

// RenameUser 修改用户名，新用户名同步写到所有user_id关联表
func (s *AuthService) RenameUser(oldName, newName string) error {
	if err := utils.ValidateStruct(struct {
		Username string `validate:"username"`
	}{Username: newName}); err != nil {
		return err
	}

	exists, err := s.userRepo.ExistsByUsername(newName)
	if err != nil {
		return fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	return s.userRepo.Rename(oldName, newName)
}

// ChangePassword 修改密码，需校验旧密码
func (s *AuthService) ChangePassword(username, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := utils.CheckPassword(oldPassword, user.PasswordHash); err != nil {
		return ErrPasswordMismatch
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	return s.userRepo.UpdatePassword(username, hashedPassword)
}
