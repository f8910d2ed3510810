package ack

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/store"
)

// Acknowledger 后端确认接口（apiclient.Client 实现）
type Acknowledger interface {
	AcknowledgeNote(ctx context.Context, id int) error
}

// Store 本地 melding 确认集合
// 确认以本地为准：先写内存与 KV，再异步通知后端，后端失败不回滚
type Store struct {
	kv      store.KV
	backend Acknowledger
	timeout time.Duration
	logger  *zap.Logger

	mu  sync.RWMutex
	ids map[int]struct{}
	// writeMu 串行化"取快照 + 写 KV"，保证 KV 中总是最新集合
	writeMu sync.Mutex

	wg sync.WaitGroup
}

// NewStore 创建确认存储；timeout 为后端调用超时
func NewStore(kv store.KV, backend Acknowledger, timeout time.Duration, logger *zap.Logger) *Store {
	if timeout <= 0 {
		timeout = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:      kv,
		backend: backend,
		timeout: timeout,
		logger:  logger,
		ids:     make(map[int]struct{}),
	}
}

// Load 从 KV 读取已确认 ID；损坏的数据视为空集合
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, store.KeyAcknowledgedNotes)
	if errors.Is(err, store.ErrMiss) {
		return nil
	}
	if err != nil {
		return err
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("Discarding unreadable acknowledged notes", zap.Error(err))
		ids = nil
	}

	s.mu.Lock()
	s.ids = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) IsAcknowledged(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Acknowledged 已确认 ID（升序）
func (s *Store) Acknowledged() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Acknowledge 标记为已确认
// 只返回本地持久化错误；后端调用在后台进行，结果被丢弃
func (s *Store) Acknowledge(ctx context.Context, id int) error {
	s.writeMu.Lock()
	s.mu.Lock()
	_, already := s.ids[id]
	s.ids[id] = struct{}{}
	snapshot := s.sortedLocked()
	s.mu.Unlock()

	var err error
	if !already {
		err = s.persist(ctx, snapshot)
	}
	s.writeMu.Unlock()
	if err != nil {
		return err
	}

	if s.backend == nil {
		return nil
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		bctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.backend.AcknowledgeNote(bctx, id); err != nil {
			s.logger.Debug("Backend acknowledge discarded", zap.Int("note_id", id), zap.Error(err))
		}
	}()
	return nil
}

// Merge 按本地集合设置 Acknowledged 标记
func (s *Store) Merge(notes []domain.Note) []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range notes {
		_, ok := s.ids[notes[i].ID]
		notes[i].Acknowledged = ok
	}
	return notes
}

// Clear 清空本地确认
func (s *Store) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	s.ids = make(map[int]struct{})
	s.mu.Unlock()
	return s.kv.Delete(ctx, store.KeyAcknowledgedNotes)
}

// Wait 等待后台后端调用结束
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) persist(ctx context.Context, ids []int) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, store.KeyAcknowledgedNotes, string(data))
}

func (s *Store) sortedLocked() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
