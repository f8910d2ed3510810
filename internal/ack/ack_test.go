package ack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"syntheo-client/internal/apiclient"
	"syntheo-client/internal/domain"
	"syntheo-client/internal/store"
)

type recordingBackend struct {
	calls atomic.Int32
	err   error
}

func (r *recordingBackend) AcknowledgeNote(context.Context, int) error {
	r.calls.Add(1)
	return r.err
}

func TestAcknowledge_PersistsLocally(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	backend := &recordingBackend{}

	s := NewStore(kv, backend, time.Second, zap.NewNop())
	require.NoError(t, s.Load(ctx))
	require.False(t, s.IsAcknowledged(7))

	require.NoError(t, s.Acknowledge(ctx, 7))
	require.NoError(t, s.Acknowledge(ctx, 3))
	require.True(t, s.IsAcknowledged(7))
	require.Equal(t, []int{3, 7}, s.Acknowledged())

	raw, err := kv.Get(ctx, store.KeyAcknowledgedNotes)
	require.NoError(t, err)
	require.JSONEq(t, `[3,7]`, raw)

	s.Wait()
	require.EqualValues(t, 2, backend.calls.Load())

	reloaded := NewStore(kv, nil, 0, zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))
	require.True(t, reloaded.IsAcknowledged(3))
	require.True(t, reloaded.IsAcknowledged(7))
}

func TestAcknowledge_BackendErrorIgnored(t *testing.T) {
	s := NewStore(store.NewMemoryKV(), &recordingBackend{err: errors.New("boom")}, time.Second, zap.NewNop())

	require.NoError(t, s.Acknowledge(context.Background(), 1))
	s.Wait()
	require.True(t, s.IsAcknowledged(1))
}

func TestAcknowledge_BackendNeverResponds(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	client := apiclient.New(apiclient.Options{BaseURL: srv.URL}, zap.NewNop())
	s := NewStore(store.NewMemoryKV(), client, 50*time.Millisecond, zap.NewNop())

	start := time.Now()
	require.NoError(t, s.Acknowledge(context.Background(), 9))
	require.True(t, s.IsAcknowledged(9))
	require.Less(t, time.Since(start), 50*time.Millisecond)

	s.Wait()
	require.Less(t, time.Since(start), 2*time.Second)
	require.True(t, s.IsAcknowledged(9))
}

func TestLoad_CorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, store.KeyAcknowledgedNotes, "not json"))

	s := NewStore(kv, nil, 0, zap.NewNop())
	require.NoError(t, s.Load(ctx))
	require.Empty(t, s.Acknowledged())
}

func TestMergeAndClear(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(kv, nil, 0, zap.NewNop())
	require.NoError(t, s.Acknowledge(ctx, 2))

	notes := s.Merge([]domain.Note{{ID: 1, Acknowledged: true}, {ID: 2}})
	require.False(t, notes[0].Acknowledged)
	require.True(t, notes[1].Acknowledged)

	require.NoError(t, s.Clear(ctx))
	require.False(t, s.IsAcknowledged(2))
	_, err := kv.Get(ctx, store.KeyAcknowledgedNotes)
	require.ErrorIs(t, err, store.ErrMiss)
}

// slowFirstSetKV 第一次 Set 阻塞，直到 release 关闭
type slowFirstSetKV struct {
	store.KV
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (k *slowFirstSetKV) Set(ctx context.Context, key, value string) error {
	first := false
	k.once.Do(func() { first = true })
	if first {
		close(k.entered)
		<-k.release
	}
	return k.KV.Set(ctx, key, value)
}

func TestAcknowledge_ConcurrentWritesKeepLatestSet(t *testing.T) {
	ctx := context.Background()
	kv := &slowFirstSetKV{KV: store.NewMemoryKV(), entered: make(chan struct{}), release: make(chan struct{})}
	s := NewStore(kv, nil, 0, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		require.NoError(t, s.Acknowledge(ctx, 1))
	}()
	<-kv.entered
	go func() {
		defer wg.Done()
		require.NoError(t, s.Acknowledge(ctx, 2))
	}()
	time.Sleep(20 * time.Millisecond)
	close(kv.release)
	wg.Wait()

	require.Equal(t, []int{1, 2}, s.Acknowledged())

	reloaded := NewStore(kv.KV, nil, 0, zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, []int{1, 2}, reloaded.Acknowledged())
}

func TestNewStore_NilLogger(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, store.KeyAcknowledgedNotes, "not json"))

	s := NewStore(kv, &recordingBackend{err: errors.New("down")}, time.Second, nil)
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Acknowledge(ctx, 4))
	s.Wait()
	require.True(t, s.IsAcknowledged(4))
}
