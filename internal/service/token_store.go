package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh:"

// TokenStore persists opaque refresh tokens until they expire or are
// revoked.
type TokenStore interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	// Lookup resolves a token to its user id. ok is false for unknown or
	// expired tokens.
	Lookup(ctx context.Context, token string) (userID int64, ok bool, err error)
	Revoke(ctx context.Context, token string) error
}

// RedisTokenStore keeps refresh tokens in redis, one key per token,
// expiring with the TTL given at Save.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	err := s.rdb.Set(ctx, refreshKeyPrefix+token, strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Lookup(ctx context.Context, token string) (int64, bool, error) {
	val, err := s.rdb.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("load refresh token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// A corrupt value is indistinguishable from a bad token.
		return 0, false, nil
	}
	return userID, true, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	err := s.rdb.Del(ctx, refreshKeyPrefix+token).Err()
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}
