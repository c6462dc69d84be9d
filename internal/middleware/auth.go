package middleware

import (
	"strings"

	"levelup-go/internal/utils"
	"levelup-go/pkg/tokenstore"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware JWT认证中间件。tokens可为nil（不启用登出吊销）。
func AuthMiddleware(jwtManager *utils.JWTManager, tokens *tokenstore.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, token, ok := ParseBearerToken(c, jwtManager)
		if !ok {
			utils.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		if tokens != nil && tokens.IsRevoked(c.Request.Context(), token) {
			utils.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		// user_id 是贯穿各表的用户名
		c.Set("user_id", claims.Username)
		c.Set("token", token)
		c.Set("claims", claims)

		c.Next()
	}
}

// ParseBearerToken 解析并校验Authorization头里的Bearer Token
func ParseBearerToken(c *gin.Context, jwtManager *utils.JWTManager) (*utils.JWTClaims, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "", false
	}

	claims, err := jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, "", false
	}
	return claims, parts[1], true
}

// GetUserID 从上下文获取当前用户名
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

// GetToken 从上下文获取原始Token
func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get("token")
	if !exists {
		return "", false
	}
	return token.(string), true
}

// GetClaims 从上下文获取Token声明
func GetClaims(c *gin.Context) (*utils.JWTClaims, bool) {
	claims, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	return claims.(*utils.JWTClaims), true
}
