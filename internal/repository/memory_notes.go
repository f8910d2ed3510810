package repository

import (
	"context"
	"strings"
	"time"

	"syntheo-client/internal/domain"
)

// NoteQuery melding 列表过滤（后端值）
type NoteQuery struct {
	ResidentID *int
	Category   string
	Urgency    string
	IsResolved *bool
}

// 未指定时的默认枚举值
const (
	defaultCategory = "general"
	defaultUrgency  = "low"
)

// ListNotes 按创建时间倒序（同一时间按 ID 倒序）
func (m *Memory) ListNotes(_ context.Context, q NoteQuery) ([]domain.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := sortedKeys(m.notes)
	out := []domain.Note{}
	for i := len(keys) - 1; i >= 0; i-- {
		n := m.notes[keys[i]]
		if q.ResidentID != nil && n.ResidentID != *q.ResidentID {
			continue
		}
		if q.Category != "" && n.Category != q.Category {
			continue
		}
		if q.Urgency != "" && n.Urgency != q.Urgency {
			continue
		}
		if q.IsResolved != nil && n.IsResolved != *q.IsResolved {
			continue
		}
		out = append(out, m.noteDetailLocked(n))
	}
	return out, nil
}

func (m *Memory) GetNote(_ context.Context, id int) (domain.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.notes[id]
	if !ok {
		return domain.Note{}, ErrNotFound
	}
	return m.noteDetailLocked(n), nil
}

// CreateNote 作者缺省为当前用户
func (m *Memory) CreateNote(_ context.Context, in domain.NoteInput) (domain.Note, error) {
	if strings.TrimSpace(in.Content) == "" {
		return domain.Note{}, ErrInvalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.residents[in.ResidentID]; !ok {
		return domain.Note{}, ErrNotFound
	}
	n := domain.Note{
		ID:         m.nextID("note"),
		ResidentID: in.ResidentID,
		AuthorID:   in.AuthorID,
		Category:   orDefault(in.Category, defaultCategory),
		Urgency:    orDefault(in.Urgency, defaultUrgency),
		Content:    in.Content,
		CreatedAt:  m.timestamp(),
	}
	if n.AuthorID == nil && m.currentUserID != 0 {
		n.AuthorID = intPtr(m.currentUserID)
	}
	m.notes[n.ID] = n
	m.record("created", EntityNote, n.ID, in)
	return m.noteDetailLocked(n), nil
}

func (m *Memory) UpdateNote(_ context.Context, id int, in domain.NoteInput) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return domain.Note{}, ErrNotFound
	}
	if in.Category != "" {
		n.Category = in.Category
	}
	if in.Urgency != "" {
		n.Urgency = in.Urgency
	}
	if in.Content != "" {
		n.Content = in.Content
	}
	m.notes[id] = n
	m.record("updated", EntityNote, id, in)
	return m.noteDetailLocked(n), nil
}

func (m *Memory) DeleteNote(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	delete(m.acks, id)
	m.record("deleted", EntityNote, id, nil)
	return nil
}

// ResolveNote resolvedBy 缺省为当前用户
func (m *Memory) ResolveNote(_ context.Context, id int, resolvedBy *int) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return domain.Note{}, ErrNotFound
	}
	if resolvedBy == nil && m.currentUserID != 0 {
		resolvedBy = intPtr(m.currentUserID)
	}
	n.IsResolved = true
	n.ResolvedBy = resolvedBy
	n.ResolvedAt = m.timestamp()
	m.notes[id] = n
	m.record("resolved", EntityNote, id, nil)
	return m.noteDetailLocked(n), nil
}

func (m *Memory) UnresolveNote(_ context.Context, id int) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return domain.Note{}, ErrNotFound
	}
	n.IsResolved = false
	n.ResolvedBy = nil
	n.ResolvedAt = nil
	m.notes[id] = n
	m.record("unresolved", EntityNote, id, nil)
	return m.noteDetailLocked(n), nil
}

// AcknowledgeNote 记录当前用户已确认；重复确认不再记审计
func (m *Memory) AcknowledgeNote(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	if m.acks[id] == nil {
		m.acks[id] = map[int]time.Time{}
	}
	if _, done := m.acks[id][m.currentUserID]; done {
		return nil
	}
	m.acks[id][m.currentUserID] = m.now().UTC()
	m.record("acknowledged", EntityNote, id, nil)
	return nil
}

// AcknowledgedBy 已确认该 melding 的用户 ID
func (m *Memory) AcknowledgedBy(id int) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.acks[id])
}

// NoteStats 计数以后端值为键
func (m *Memory) NoteStats(_ context.Context) (domain.NoteStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := domain.NoteStats{
		ByUrgency:  map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, n := range m.notes {
		st.Total++
		if !n.IsResolved {
			st.Unresolved++
		}
		st.ByUrgency[n.Urgency]++
		st.ByCategory[n.Category]++
	}
	return st, nil
}

func (m *Memory) noteDetailLocked(n domain.Note) domain.Note {
	if r, ok := m.residents[n.ResidentID]; ok {
		n.Resident = &r
	}
	if n.AuthorID != nil {
		if u, ok := m.users[*n.AuthorID]; ok {
			n.Author = &u
		}
	}
	return n
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
