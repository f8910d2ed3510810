package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/locale"
)

// noteWire 发送给后端的 melding（英文枚举值）
type noteWire struct {
	ResidentID int    `json:"resident_id"`
	AuthorID   *int   `json:"user_id,omitempty"`
	Category   string `json:"category"`
	Urgency    string `json:"urgency"`
	Content    string `json:"content"`
}

func noteToWire(in domain.NoteInput) noteWire {
	return noteWire{
		ResidentID: in.ResidentID,
		AuthorID:   in.AuthorID,
		Category:   locale.Category.ToBackend(in.Category),
		Urgency:    locale.Urgency.ToBackend(in.Urgency),
		Content:    in.Content,
	}
}

// localizeNote 后端枚举值 -> 显示值
func localizeNote(n *domain.Note) {
	n.Category = locale.Category.FromBackend(n.Category)
	n.Urgency = locale.Urgency.FromBackend(n.Urgency)
	if n.Author != nil {
		localizeUser(n.Author)
	}
}

// ListNotes melding 列表；过滤条件中的显示值会转换为后端值
func (c *Client) ListNotes(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	q := newQuery().intPtr("resident_id", f.ResidentID).boolPtr("is_resolved", f.IsResolved)
	if f.Category != "" {
		q.str("category", locale.Category.ToBackend(f.Category))
	}
	if f.Urgency != "" {
		q.str("urgency", locale.Urgency.ToBackend(f.Urgency))
	}
	items, err := fetchList[domain.Note](ctx, c, call{method: http.MethodGet, path: "/notes", query: q.values()})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeNote(&items[i])
	}
	return items, nil
}

// ListResidentNotes 某住户的 melding
func (c *Client) ListResidentNotes(ctx context.Context, residentID int) ([]domain.Note, error) {
	items, err := fetchList[domain.Note](ctx, c, call{method: http.MethodGet, path: "/residents/{id}/notes", pathParams: idParam(residentID)})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeNote(&items[i])
	}
	return items, nil
}

// GetNote 单条 melding
func (c *Client) GetNote(ctx context.Context, id int) (*domain.Note, error) {
	return c.noteCall(ctx, call{method: http.MethodGet, path: "/notes/{id}", pathParams: idParam(id)})
}

// CreateNote 新建 melding（显示值 -> 后端值）
func (c *Client) CreateNote(ctx context.Context, in domain.NoteInput) (*domain.Note, error) {
	if err := c.checkInput("note", in); err != nil {
		return nil, err
	}
	return c.noteCall(ctx, call{method: http.MethodPost, path: "/notes", body: noteToWire(in)})
}

// UpdateNote 更新 melding
func (c *Client) UpdateNote(ctx context.Context, id int, in domain.NoteInput) (*domain.Note, error) {
	if err := c.checkInput("note", in); err != nil {
		return nil, err
	}
	return c.noteCall(ctx, call{method: http.MethodPut, path: "/notes/{id}", pathParams: idParam(id), body: noteToWire(in)})
}

// DeleteNote 删除 melding
func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/notes/{id}", pathParams: idParam(id)})
}

// ResolveNote 标记为已处理
func (c *Client) ResolveNote(ctx context.Context, id int, resolvedBy *int) (*domain.Note, error) {
	body := map[string]any{}
	if resolvedBy != nil {
		body["resolved_by"] = *resolvedBy
	}
	return c.noteCall(ctx, call{method: http.MethodPut, path: "/notes/{id}/resolve", pathParams: idParam(id), body: body})
}

// UnresolveNote 取消已处理
func (c *Client) UnresolveNote(ctx context.Context, id int) (*domain.Note, error) {
	return c.noteCall(ctx, call{method: http.MethodPut, path: "/notes/{id}/unresolve", pathParams: idParam(id)})
}

// AcknowledgeNote 通知后端某条 melding 已被确认
// 由 ack.Store 在后台调用，结果不影响本地状态
func (c *Client) AcknowledgeNote(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodPost, path: "/notes/{id}/acknowledge", pathParams: idParam(id)})
}

// NoteStats melding 聚合统计；计数的键转换为显示值
func (c *Client) NoteStats(ctx context.Context) (*domain.NoteStats, error) {
	st, err := fetchOne[domain.NoteStats](ctx, c, call{method: http.MethodGet, path: "/notes/stats"})
	if err != nil {
		return nil, err
	}
	st.ByUrgency = relabel(st.ByUrgency, locale.Urgency.FromBackend)
	st.ByCategory = relabel(st.ByCategory, locale.Category.FromBackend)
	return st, nil
}

func (c *Client) noteCall(ctx context.Context, cl call) (*domain.Note, error) {
	n, err := fetchOne[domain.Note](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	localizeNote(n)
	return n, nil
}

// relabel 按映射函数转换计数表的键
func relabel(in map[string]int, fn func(string) string) map[string]int {
	if in == nil {
		return map[string]int{}
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[fn(k)] += v
	}
	return out
}
