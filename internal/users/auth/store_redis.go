package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/IvanZabelin/foodgram/internal/platform/constants"
)

// RedisSessionRepository tracks token liveness in Redis. The value is a
// placeholder; presence of the key is the signal.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionRedisKey(sessionKey string) string {
	return constants.RedisPrefixSession + sessionKey
}

func (repository *RedisSessionRepository) Create(context context.Context, sessionKey string, ttl time.Duration) error {
	if err := repository.client.Set(context, sessionRedisKey(sessionKey), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Exists(context context.Context, sessionKey string) (bool, error) {
	count, err := repository.client.Exists(context, sessionRedisKey(sessionKey)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}
	return count > 0, nil
}

func (repository *RedisSessionRepository) Delete(context context.Context, sessionKey string) error {
	if err := repository.client.Del(context, sessionRedisKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
