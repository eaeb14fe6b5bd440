package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"vedicjivan-booking/internal/pkg/errs"
)

const redisKeyPrefix = "vedicjivan:"

// RedisKV is the storage backend for kiosk-style deployments where several
// processes share one client session.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", errs.Wrap(err, "redis get failed for "+key)
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return errs.Wrap(err, "redis set failed for "+key)
	}
	return nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed for "+key)
	}
	return nil
}
