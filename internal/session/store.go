package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/store"
)

var (
	ErrNoSession        = errors.New("no current session")
	ErrUnknownRole      = errors.New("unknown role")
	ErrRoleNotPermitted = errors.New("role not permitted for current user")
)

// UserSource 会话来源（由 apiclient.Client 实现）
type UserSource interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// Options 会话选项
type Options struct {
	// DevFallback 无法获取当前会话时，使用用户列表中的第一个用户
	// 仅用于开发环境，不是认证机制
	DevFallback bool
}

// Snapshot 某一时刻的会话状态（只读副本）
type Snapshot struct {
	Loading      bool
	CurrentUser  *domain.User
	SelectedRole *domain.Role
	// InitErr 最近一次 Init 无法建立会话的原因
	InitErr error
}

// EffectiveRole 选中的角色优先，否则使用用户自身角色
func (s Snapshot) EffectiveRole() (domain.Role, bool) {
	if s.SelectedRole != nil {
		return *s.SelectedRole, true
	}
	if s.CurrentUser != nil && s.CurrentUser.Role != "" {
		return s.CurrentUser.Role, true
	}
	return "", false
}

// Store 当前用户与选中角色
// 显式创建并注入，不使用全局单例；生命周期：NewStore -> Init -> Set*/Clear
type Store struct {
	source UserSource
	kv     store.KV
	opts   Options
	logger *zap.Logger

	mu      sync.RWMutex
	loading bool
	user    *domain.User
	role    *domain.Role
	initErr error

	// writeMu 串行化"写 KV + 更新内存"，使两者保持一致
	writeMu sync.Mutex

	subMu sync.Mutex
	subs  map[int]chan Snapshot
	next  int
}

// NewStore 创建会话；Init 完成前处于 loading 状态
func NewStore(source UserSource, kv store.KV, opts Options, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		source:  source,
		kv:      kv,
		opts:    opts,
		logger:  logger,
		loading: true,
		subs:    map[int]chan Snapshot{},
	}
}

// Init 启动时加载：持久化的角色 + 当前会话用户
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	role := s.loadRole(ctx)

	user, err := s.source.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn("Failed to load current session", zap.Error(err))
		if s.opts.DevFallback {
			user = s.fallbackUser(ctx)
		}
	}

	var initErr error
	if user == nil {
		if err != nil {
			initErr = fmt.Errorf("%w: %v", ErrNoSession, err)
		} else {
			initErr = ErrNoSession
		}
	}

	if role != nil && user != nil && !mayActAs(user, *role) {
		s.logger.Info("Dropping persisted role not held by current user",
			zap.String("role", role.String()),
			zap.Int("user_id", user.ID),
		)
		if derr := s.kv.Delete(ctx, store.KeySelectedRole); derr != nil {
			s.logger.Warn("Failed to delete persisted role", zap.Error(derr))
		}
		role = nil
	}

	s.mu.Lock()
	s.user = user
	s.role = role
	s.initErr = initErr
	s.loading = false
	s.mu.Unlock()
	s.notify()

	return initErr
}

// fallbackUser 开发用：列表中的第一个用户
func (s *Store) fallbackUser(ctx context.Context) *domain.User {
	users, err := s.source.ListUsers(ctx)
	if err != nil {
		s.logger.Warn("Development fallback failed to list users", zap.Error(err))
		return nil
	}
	if len(users) == 0 {
		return nil
	}
	u := users[0]
	s.logger.Warn("Using development fallback session (first user in list)",
		zap.Int("user_id", u.ID),
		zap.String("role", u.Role.String()),
	)
	return &u
}

func (s *Store) loadRole(ctx context.Context) *domain.Role {
	v, err := s.kv.Get(ctx, store.KeySelectedRole)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			s.logger.Warn("Failed to read persisted role", zap.Error(err))
		}
		return nil
	}
	r := domain.Role(v)
	if !r.Valid() {
		s.logger.Warn("Ignoring unknown persisted role", zap.String("role", v))
		return nil
	}
	return &r
}

// SetCurrentUser 切换当前用户；新用户不能承担的已选角色会被清除
func (s *Store) SetCurrentUser(ctx context.Context, u *domain.User) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.user = cloneUser(u)
	drop := s.role != nil && (u == nil || !mayActAs(u, *s.role))
	if drop {
		s.role = nil
	}
	s.mu.Unlock()

	var err error
	if drop {
		err = s.kv.Delete(ctx, store.KeySelectedRole)
	}
	s.notify()
	return err
}

// SetSelectedRole 选择角色并持久化
func (s *Store) SetSelectedRole(ctx context.Context, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()
	if user != nil && !mayActAs(user, role) {
		return fmt.Errorf("%w: %s", ErrRoleNotPermitted, role)
	}

	if err := s.kv.Set(ctx, store.KeySelectedRole, string(role)); err != nil {
		return fmt.Errorf("persist role: %w", err)
	}
	s.mu.Lock()
	s.role = &role
	s.mu.Unlock()
	s.notify()
	return nil
}

// SelectRole 角色选择页：同时设置用户与角色，保证两者一致
func (s *Store) SelectRole(ctx context.Context, u *domain.User, role domain.Role) error {
	if u == nil {
		return ErrNoSession
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if !mayActAs(u, role) {
		return fmt.Errorf("%w: %s", ErrRoleNotPermitted, role)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.kv.Set(ctx, store.KeySelectedRole, string(role)); err != nil {
		return fmt.Errorf("persist role: %w", err)
	}
	s.mu.Lock()
	s.user = cloneUser(u)
	s.role = &role
	s.mu.Unlock()
	s.notify()
	return nil
}

// ClearRole 删除持久化的角色并重置为空
func (s *Store) ClearRole(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.kv.Delete(ctx, store.KeySelectedRole); err != nil {
		return fmt.Errorf("clear role: %w", err)
	}
	s.mu.Lock()
	s.role = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

// Snapshot 当前状态副本
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Loading:     s.loading,
		CurrentUser: cloneUser(s.user),
		InitErr:     s.initErr,
	}
	if s.role != nil {
		r := *s.role
		snap.SelectedRole = &r
	}
	return snap
}

// Subscribe 订阅状态变化；通道只保留最新状态。cancel 后通道关闭
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	s.subMu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subMu.Unlock()
		})
	}
	return ch, cancel
}

func (s *Store) notify() {
	snap := s.Snapshot()
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// mayActAs 用户可以承担该角色：自身角色，或 Beheerder 可代任何角色
func mayActAs(u *domain.User, role domain.Role) bool {
	return u.Role == role || u.Role == domain.RoleBeheerder
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
