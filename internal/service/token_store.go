package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued access tokens in Redis. A token is valid only
// while its key exists, which makes logout immediate.
type TokenStore interface {
	Register(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, userID uint, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uint, tokenID string) error
}

type redisTokenStore struct {
	redisClient *redis.Client
}

func NewTokenStore(redisClient *redis.Client) TokenStore {
	return &redisTokenStore{redisClient: redisClient}
}

func accessTokenKey(userID uint, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", userID, tokenID)
}

func (s *redisTokenStore) Register(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) IsActive(ctx context.Context, userID uint, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uint, tokenID string) error {
	return s.redisClient.Del(ctx, accessTokenKey(userID, tokenID)).Err()
}
