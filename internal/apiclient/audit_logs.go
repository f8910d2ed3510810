package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"syntheo-client/internal/domain"
)

// ListAuditLogs 审计日志（后端分页）
// 实体类型过滤以 auditable_type 参数发送，与后端命名保持一致
func (c *Client) ListAuditLogs(ctx context.Context, f domain.AuditLogFilter) (*domain.AuditLogPage, error) {
	q := newQuery().
		intPtr("user_id", f.UserID).
		str("action", f.Action).
		str("auditable_type", f.EntityType).
		str("from", f.From).
		str("to", f.To).
		positive("page", f.Page).
		positive("per_page", f.PerPage)

	cl := call{method: http.MethodGet, path: "/audit-logs", query: q.values()}
	data, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	page := &domain.AuditLogPage{Items: []domain.AuditLog{}}
	if isNull(data) {
		return page, nil
	}
	if err := decodeAuditPage(data, page); err != nil {
		return nil, &ParseError{Method: cl.method, Path: cl.path, Err: err}
	}
	if page.Items == nil {
		page.Items = []domain.AuditLog{}
	}
	for i := range page.Items {
		if err := c.check(&page.Items[i]); err != nil {
			return nil, &ParseError{Method: cl.method, Path: cl.path, Err: fmt.Errorf("item %d: %w", i, err)}
		}
		if page.Items[i].User != nil {
			localizeUser(page.Items[i].User)
		}
	}
	return page, nil
}

// decodeAuditPage 兼容两种形态：分页对象，或直接返回的数组
func decodeAuditPage(data json.RawMessage, page *domain.AuditLogPage) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &page.Items); err != nil {
			return err
		}
		page.Total = len(page.Items)
		return nil
	}
	return json.Unmarshal(trimmed, page)
}
