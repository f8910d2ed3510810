package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"syntheo-client/internal/config"
)

// exerciseKV 各实现共用的行为检查
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, KeySelectedRole)
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, KeySelectedRole, "Verpleegster"))
	v, err := kv.Get(ctx, KeySelectedRole)
	require.NoError(t, err)
	require.Equal(t, "Verpleegster", v)

	require.NoError(t, kv.Set(ctx, KeySelectedRole, "Beheerder"))
	v, err = kv.Get(ctx, KeySelectedRole)
	require.NoError(t, err)
	require.Equal(t, "Beheerder", v)

	require.NoError(t, kv.Delete(ctx, KeySelectedRole))
	_, err = kv.Get(ctx, KeySelectedRole)
	require.ErrorIs(t, err, ErrMiss)

	// 删除不存在的键不报错
	require.NoError(t, kv.Delete(ctx, "missing"))
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })

	kv := NewRedisKV(c, "syntheo:")
	exerciseKV(t, kv)

	require.NoError(t, kv.Set(context.Background(), KeyAcknowledgedNotes, "[1,2]"))
	raw, err := mr.Get("syntheo:" + KeyAcknowledgedNotes)
	require.NoError(t, err)
	require.Equal(t, "[1,2]", raw)
	require.Zero(t, mr.TTL("syntheo:"+KeyAcknowledgedNotes))
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	kv, err := NewFileKV(path)
	require.NoError(t, err)
	exerciseKV(t, kv)

	require.NoError(t, kv.Set(context.Background(), KeyAcknowledgedNotes, "[3]"))

	reopened, err := NewFileKV(path)
	require.NoError(t, err)
	v, err := reopened.Get(context.Background(), KeyAcknowledgedNotes)
	require.NoError(t, err)
	require.Equal(t, "[3]", v)
}

func TestOpen(t *testing.T) {
	kv, closeFn, err := Open(config.StoreConfig{Backend: "memory"})
	require.NoError(t, err)
	require.IsType(t, &MemoryKV{}, kv)
	require.NoError(t, closeFn())

	cfg := config.StoreConfig{Backend: "file", Path: filepath.Join(t.TempDir(), "s.json")}
	kv, _, err = Open(cfg)
	require.NoError(t, err)
	require.IsType(t, &FileKV{}, kv)

	_, _, err = Open(config.StoreConfig{Backend: "etcd"})
	require.Error(t, err)
}
