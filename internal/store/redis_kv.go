package store

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisKV 基于 go-redis 的实现；所有键带统一前缀
type RedisKV struct {
	c      *redis.Client
	prefix string
}

func NewRedisKV(c *redis.Client, prefix string) *RedisKV { return &RedisKV{c: c, prefix: prefix} }

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}

// Set 持久保存，不设置过期时间
func (r *RedisKV) Set(ctx context.Context, key string, value string) error {
	return r.c.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.c.Del(ctx, r.prefix+key).Err()
}
