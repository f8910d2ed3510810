package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"syntheo-client/internal/config"
)

var ErrMiss = errors.New("key not found")

// 固定的本地持久化键
const (
	KeySelectedRole      = "selected_role"
	KeyAcknowledgedNotes = "acknowledged_notes"
)

// KV 本地持久化键值存储（选中角色、已确认 melding 列表）
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Open 按配置选择存储后端
func Open(cfg config.StoreConfig) (KV, func() error, error) {
	switch cfg.Backend {
	case "redis":
		c := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisKV(c, cfg.Prefix), c.Close, nil
	case "file":
		kv, err := NewFileKV(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() error { return nil }, nil
	case "memory":
		return NewMemoryKV(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
