package repository

import (
	"context"
	"strings"

	"syntheo-client/internal/domain"
)

func (m *Memory) ListUsers(_ context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []domain.User{}
	for _, id := range sortedKeys(m.users) {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *Memory) GetUser(_ context.Context, id int) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

// CurrentUser 未设置当前用户时返回 ErrNotFound
func (m *Memory) CurrentUser(ctx context.Context) (domain.User, error) {
	return m.GetUser(ctx, m.CurrentUserID())
}

// CreateUser 邮箱唯一（大小写不敏感）；密码不保存
func (m *Memory) CreateUser(_ context.Context, in domain.UserInput) (domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Role == "" {
		return domain.User{}, ErrInvalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emailTakenLocked(in.Email, 0) {
		return domain.User{}, ErrConflict
	}
	u := domain.User{
		ID:        m.nextID("user"),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Floor:     in.Floor,
		IsActive:  true,
		CreatedAt: m.timestamp(),
	}
	m.users[u.ID] = u
	m.record("created", EntityUser, u.ID, map[string]any{"name": u.Name, "role": u.Role})
	return u, nil
}

func (m *Memory) UpdateUser(_ context.Context, id int, in domain.UserInput) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	if in.Email != "" {
		if m.emailTakenLocked(in.Email, id) {
			return domain.User{}, ErrConflict
		}
		u.Email = in.Email
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Role != "" {
		u.Role = in.Role
	}
	if in.Floor != nil {
		u.Floor = in.Floor
	}
	m.users[id] = u
	m.record("updated", EntityUser, id, map[string]any{"name": u.Name, "role": u.Role})
	return u, nil
}

// DeleteUser 不能删除当前用户
func (m *Memory) DeleteUser(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	if id == m.currentUserID {
		return ErrConflict
	}
	delete(m.users, id)
	m.record("deleted", EntityUser, id, nil)
	return nil
}

func (m *Memory) SetUserActive(_ context.Context, id int, active bool) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	if u.IsActive != active {
		u.IsActive = active
		m.users[id] = u
		action := "deactivated"
		if active {
			action = "activated"
		}
		m.record(action, EntityUser, id, nil)
	}
	return u, nil
}

func (m *Memory) emailTakenLocked(email string, except int) bool {
	for id, u := range m.users {
		if id != except && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
