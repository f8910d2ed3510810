package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/store"
)

// fakeSource 可控的会话来源
type fakeSource struct {
	current    *domain.User
	currentErr error
	users      []domain.User
	listErr    error
	listCalls  int
}

func (f *fakeSource) CurrentUser(context.Context) (*domain.User, error) {
	return f.current, f.currentErr
}

func (f *fakeSource) ListUsers(context.Context) ([]domain.User, error) {
	f.listCalls++
	return f.users, f.listErr
}

var (
	nurse = domain.User{ID: 2, Name: "Joost", Role: domain.RoleVerpleegster}
	admin = domain.User{ID: 1, Name: "Petra", Role: domain.RoleBeheerder}
)

func TestStore_LoadingUntilInit(t *testing.T) {
	s := NewStore(&fakeSource{current: &nurse}, store.NewMemoryKV(), Options{}, zap.NewNop())
	require.True(t, s.Snapshot().Loading)

	require.NoError(t, s.Init(context.Background()))
	snap := s.Snapshot()
	require.False(t, snap.Loading)
	require.Equal(t, nurse.ID, snap.CurrentUser.ID)
	require.Nil(t, snap.SelectedRole)
}

func TestStore_InitRestoresPersistedRole(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(context.Background(), store.KeySelectedRole, "Verpleegster"))

	s := NewStore(&fakeSource{current: &nurse}, kv, Options{}, zap.NewNop())
	require.NoError(t, s.Init(context.Background()))

	snap := s.Snapshot()
	require.NotNil(t, snap.SelectedRole)
	require.Equal(t, domain.RoleVerpleegster, *snap.SelectedRole)
}

func TestStore_InitDropsRoleUserDoesNotHold(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, store.KeySelectedRole, "Arts"))

	s := NewStore(&fakeSource{current: &nurse}, kv, Options{}, zap.NewNop())
	require.NoError(t, s.Init(ctx))
	require.Nil(t, s.Snapshot().SelectedRole)

	_, err := kv.Get(ctx, store.KeySelectedRole)
	require.ErrorIs(t, err, store.ErrMiss)
}

func TestStore_InitWithoutSessionNoFallback(t *testing.T) {
	src := &fakeSource{currentErr: errors.New("401"), users: []domain.User{admin}}
	s := NewStore(src, store.NewMemoryKV(), Options{}, zap.NewNop())

	err := s.Init(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
	require.Nil(t, s.Snapshot().CurrentUser)
	require.False(t, s.Snapshot().Loading)
	require.Equal(t, 0, src.listCalls)
}

func TestStore_InitDevFallbackPicksFirstUser(t *testing.T) {
	src := &fakeSource{currentErr: errors.New("404"), users: []domain.User{admin, nurse}}
	s := NewStore(src, store.NewMemoryKV(), Options{DevFallback: true}, zap.NewNop())

	require.NoError(t, s.Init(context.Background()))
	require.Equal(t, admin.ID, s.Snapshot().CurrentUser.ID)
	require.Equal(t, 1, src.listCalls)
}

func TestStore_InitDevFallbackEmptyList(t *testing.T) {
	src := &fakeSource{currentErr: errors.New("404")}
	s := NewStore(src, store.NewMemoryKV(), Options{DevFallback: true}, zap.NewNop())

	require.ErrorIs(t, s.Init(context.Background()), ErrNoSession)
	require.Nil(t, s.Snapshot().CurrentUser)
}

func TestStore_SetSelectedRolePersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(&fakeSource{current: &admin}, kv, Options{}, zap.NewNop())
	require.NoError(t, s.Init(ctx))

	require.NoError(t, s.SetSelectedRole(ctx, domain.RoleArts))
	v, err := kv.Get(ctx, store.KeySelectedRole)
	require.NoError(t, err)
	require.Equal(t, "Arts", v)

	role, ok := s.Snapshot().EffectiveRole()
	require.True(t, ok)
	require.Equal(t, domain.RoleArts, role)

	require.ErrorIs(t, s.SetSelectedRole(ctx, "Stagiair"), ErrUnknownRole)
}

func TestStore_SetSelectedRoleRejectsForeignRole(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeSource{current: &nurse}, store.NewMemoryKV(), Options{}, zap.NewNop())
	require.NoError(t, s.Init(ctx))

	require.ErrorIs(t, s.SetSelectedRole(ctx, domain.RoleBeheerder), ErrRoleNotPermitted)
	require.Nil(t, s.Snapshot().SelectedRole)
}

func TestStore_ClearRole(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(&fakeSource{current: &nurse}, kv, Options{}, zap.NewNop())
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.SetSelectedRole(ctx, domain.RoleVerpleegster))

	require.NoError(t, s.ClearRole(ctx))
	require.Nil(t, s.Snapshot().SelectedRole)
	_, err := kv.Get(ctx, store.KeySelectedRole)
	require.ErrorIs(t, err, store.ErrMiss)

	// 没有选中角色时回退到用户自身角色
	role, ok := s.Snapshot().EffectiveRole()
	require.True(t, ok)
	require.Equal(t, domain.RoleVerpleegster, role)
}

func TestStore_SelectRoleSetsBoth(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeSource{currentErr: errors.New("401")}, store.NewMemoryKV(), Options{}, zap.NewNop())
	_ = s.Init(ctx)

	require.NoError(t, s.SelectRole(ctx, &nurse, domain.RoleVerpleegster))
	snap := s.Snapshot()
	require.Equal(t, nurse.ID, snap.CurrentUser.ID)
	require.Equal(t, domain.RoleVerpleegster, *snap.SelectedRole)

	require.ErrorIs(t, s.SelectRole(ctx, &nurse, domain.RoleArts), ErrRoleNotPermitted)
	require.ErrorIs(t, s.SelectRole(ctx, nil, domain.RoleArts), ErrNoSession)
}

func TestStore_SetCurrentUserDropsIncompatibleRole(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeSource{current: &admin}, store.NewMemoryKV(), Options{}, zap.NewNop())
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.SetSelectedRole(ctx, domain.RoleArts))

	require.NoError(t, s.SetCurrentUser(ctx, &nurse))
	require.Nil(t, s.Snapshot().SelectedRole)

	require.NoError(t, s.SetSelectedRole(ctx, domain.RoleVerpleegster))
	require.NoError(t, s.SetCurrentUser(ctx, &admin))
	require.NotNil(t, s.Snapshot().SelectedRole)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore(&fakeSource{current: &nurse}, store.NewMemoryKV(), Options{}, zap.NewNop())
	require.NoError(t, s.Init(context.Background()))

	snap := s.Snapshot()
	snap.CurrentUser.Name = "gewijzigd"
	require.Equal(t, "Joost", s.Snapshot().CurrentUser.Name)
}

func TestStore_SubscribeReceivesLatest(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeSource{current: &admin}, store.NewMemoryKV(), Options{}, zap.NewNop())
	ch, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.SetSelectedRole(ctx, domain.RoleVerzorgende))

	snap := <-ch
	require.False(t, snap.Loading)
	require.Equal(t, domain.RoleVerzorgende, *snap.SelectedRole)

	cancel()
	_, open := <-ch
	require.False(t, open)
}

// blockingFirstSetKV 第一次 Set 在 release 关闭前不返回
type blockingFirstSetKV struct {
	store.KV
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (k *blockingFirstSetKV) Set(ctx context.Context, key, value string) error {
	first := false
	k.once.Do(func() { first = true })
	if first {
		close(k.entered)
		<-k.release
	}
	return k.KV.Set(ctx, key, value)
}

func TestStore_ConcurrentRoleSelectionStaysConsistent(t *testing.T) {
	ctx := context.Background()
	kv := &blockingFirstSetKV{KV: store.NewMemoryKV(), entered: make(chan struct{}), release: make(chan struct{})}
	s := NewStore(&fakeSource{current: &admin}, kv, Options{}, zap.NewNop())
	require.NoError(t, s.Init(ctx))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		require.NoError(t, s.SelectRole(ctx, &admin, domain.RoleVerpleegster))
	}()
	<-kv.entered
	go func() {
		defer wg.Done()
		require.NoError(t, s.SetSelectedRole(ctx, domain.RoleArts))
	}()
	time.Sleep(20 * time.Millisecond)
	close(kv.release)
	wg.Wait()

	persisted, err := kv.Get(ctx, store.KeySelectedRole)
	require.NoError(t, err)
	require.Equal(t, "Arts", persisted)
	require.NotNil(t, s.Snapshot().SelectedRole)
	require.Equal(t, domain.RoleArts, *s.Snapshot().SelectedRole)
}
