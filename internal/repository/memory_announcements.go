package repository

import (
	"context"
	"strings"

	"syntheo-client/internal/domain"
)

// ListAnnouncements 最新的在前
func (m *Memory) ListAnnouncements(_ context.Context) ([]domain.Announcement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := sortedKeys(m.announcements)
	out := []domain.Announcement{}
	for i := len(keys) - 1; i >= 0; i-- {
		out = append(out, m.announcementDetailLocked(m.announcements[keys[i]]))
	}
	return out, nil
}

func (m *Memory) GetAnnouncement(_ context.Context, id int) (domain.Announcement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.announcements[id]
	if !ok {
		return domain.Announcement{}, ErrNotFound
	}
	return m.announcementDetailLocked(a), nil
}

// CreateAnnouncement 未指定接收人时发给全部在职用户
func (m *Memory) CreateAnnouncement(_ context.Context, in domain.AnnouncementInput) (domain.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Message) == "" {
		return domain.Announcement{}, ErrInvalid
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	recipients := in.RecipientIDs
	if len(recipients) == 0 {
		for _, id := range sortedKeys(m.users) {
			if m.users[id].IsActive {
				recipients = append(recipients, id)
			}
		}
	}
	a := domain.Announcement{
		ID:        m.nextID("announcement"),
		Title:     in.Title,
		Message:   in.Message,
		AuthorID:  in.AuthorID,
		CreatedAt: m.timestamp(),
	}
	if a.AuthorID == 0 {
		a.AuthorID = m.currentUserID
	}
	for _, uid := range recipients {
		if _, ok := m.users[uid]; !ok {
			return domain.Announcement{}, ErrNotFound
		}
		a.Recipients = append(a.Recipients, domain.AnnouncementRecipient{UserID: uid})
	}
	m.announcements[a.ID] = a
	m.record("created", EntityAnnouncement, a.ID, map[string]any{"title": a.Title, "recipients": len(a.Recipients)})
	return m.announcementDetailLocked(a), nil
}

func (m *Memory) DeleteAnnouncement(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.announcements[id]; !ok {
		return ErrNotFound
	}
	delete(m.announcements, id)
	m.record("deleted", EntityAnnouncement, id, nil)
	return nil
}

// MarkAnnouncementRead 标记已读；用户不是接收人时返回 ErrNotFound
func (m *Memory) MarkAnnouncementRead(_ context.Context, id, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.announcements[id]
	if !ok {
		return ErrNotFound
	}
	for i := range a.Recipients {
		if a.Recipients[i].UserID != userID {
			continue
		}
		if a.Recipients[i].ReadAt == nil {
			a.Recipients[i].ReadAt = m.timestamp()
			m.announcements[id] = a
		}
		return nil
	}
	return ErrNotFound
}

func (m *Memory) announcementDetailLocked(a domain.Announcement) domain.Announcement {
	if u, ok := m.users[a.AuthorID]; ok {
		a.Author = &u
	}
	recipients := make([]domain.AnnouncementRecipient, len(a.Recipients))
	copy(recipients, a.Recipients)
	a.Recipients = recipients
	return a
}
