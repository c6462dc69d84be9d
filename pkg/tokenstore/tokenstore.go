// Package tokenstore 基于Redis的Token吊销存储，登出后的Token在
// 剩余有效期内被拒绝。
package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore 吊销Token存储
type TokenStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewTokenStore 创建Token吊销存储
func NewTokenStore(client *redis.Client, keyPrefix string) *TokenStore {
	return &TokenStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Revoke 吊销Token，ttl为Token剩余有效期
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已过期的Token无需记录
		return nil
	}
	if err := s.client.Set(ctx, s.key(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("写入吊销Token失败: %w", err)
	}
	return nil
}

// IsRevoked 判断Token是否已被吊销
func (s *TokenStore) IsRevoked(ctx context.Context, token string) bool {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		// Redis不可用时放行，登录态仍由JWT签名和过期时间保证
		return false
	}
	return n > 0
}

// key Token原文不落库，存哈希
func (s *TokenStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.keyPrefix + hex.EncodeToString(sum[:])
}
