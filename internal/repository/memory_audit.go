package repository

import (
	"context"

	"syntheo-client/internal/domain"
)

const defaultPerPage = 20

// AuditQuery 审计日志过滤；From/To 为 YYYY-MM-DD（含）
type AuditQuery struct {
	UserID     *int
	Action     string
	EntityType string
	From       string
	To         string
	Page       int
	PerPage    int
}

// ListAuditLogs 最新的在前，分页
func (m *Memory) ListAuditLogs(_ context.Context, q AuditQuery) (domain.AuditLogPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []domain.AuditLog{}
	for i := len(m.audit) - 1; i >= 0; i-- {
		l := m.audit[i]
		if q.UserID != nil && (l.UserID == nil || *l.UserID != *q.UserID) {
			continue
		}
		if q.Action != "" && l.Action != q.Action {
			continue
		}
		if q.EntityType != "" && l.EntityType != q.EntityType {
			continue
		}
		day := l.Timestamp.Format("2006-01-02")
		if q.From != "" && day < q.From {
			continue
		}
		if q.To != "" && day > q.To {
			continue
		}
		if l.UserID != nil {
			if u, ok := m.users[*l.UserID]; ok {
				l.User = &u
			}
		}
		matched = append(matched, l)
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	lastPage := (len(matched) + perPage - 1) / perPage
	if lastPage == 0 {
		lastPage = 1
	}

	start := (page - 1) * perPage
	items := []domain.AuditLog{}
	if start < len(matched) {
		end := start + perPage
		if end > len(matched) {
			end = len(matched)
		}
		items = matched[start:end]
	}
	return domain.AuditLogPage{
		Items:    items,
		Total:    len(matched),
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
	}, nil
}
