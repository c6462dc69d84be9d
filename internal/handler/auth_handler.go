package handler

import (
	"errors"
	"time"

	"levelup-go/internal/dto"
	"levelup-go/internal/middleware"
	"levelup-go/internal/service"
	"levelup-go/internal/utils"
	"levelup-go/pkg/tokenstore"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
	jwtManager  *utils.JWTManager
	tokens      *tokenstore.TokenStore
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService, jwtManager *utils.JWTManager, tokens *tokenstore.TokenStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtManager:  jwtManager,
		tokens:      tokens,
	}
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "用户名和密码不能为空")
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "注册成功", nil)
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "用户名和密码不能为空")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.Unauthorized(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "登录成功", resp)
}

// Logout 用户登出，吊销当前Token
func (h *AuthHandler) Logout(c *gin.Context) {
	token, hasToken := middleware.GetToken(c)
	claims, hasClaims := middleware.GetClaims(c)

	if h.tokens != nil && hasToken && hasClaims && claims.ExpiresAt != nil {
		if err := h.tokens.Revoke(c.Request.Context(), token, time.Until(claims.ExpiresAt.Time)); err != nil {
			utils.InternalError(c, err.Error())
			return
		}
	}

	utils.SuccessWithMessage(c, "退出成功", nil)
}

// CheckLogin 检查当前Token是否有效。
// 未登录不是错误，返回200和success=false，与前端约定一致。
func (h *AuthHandler) CheckLogin(c *gin.Context) {
	claims, token, ok := middleware.ParseBearerToken(c, h.jwtManager)
	if !ok || (h.tokens != nil && h.tokens.IsRevoked(c.Request.Context(), token)) {
		c.JSON(200, utils.Response{Success: false, Error: "未登录"})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": dto.UserInfo{Username: claims.Username},
	})
}

// UpdateUsername 修改用户名，改名会同步到所有关联数据，
// 并签发携带新用户名的Token
func (h *AuthHandler) UpdateUsername(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "新用户名不能为空")
		return
	}

	if err := h.authService.RenameUser(userID, req.NewUsername); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	claims, _ := middleware.GetClaims(c)
	token, err := h.jwtManager.GenerateToken(claims.UserID, req.NewUsername)
	if err != nil {
		utils.InternalError(c, "生成Token失败")
		return
	}

	utils.SuccessWithMessage(c, "用户名修改成功", gin.H{
		"new_username": req.NewUsername,
		"access_token": token,
	})
}

// UpdatePassword 修改密码
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "密码不能为空")
		return
	}

	if err := h.authService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrPasswordMismatch) || errors.Is(err, service.ErrInvalidCredentials) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "密码修改成功", nil)
}
