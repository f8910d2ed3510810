package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
)

// ListAnnouncements 广播列表（含接收人已读状态）
func (c *Client) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return fetchList[domain.Announcement](ctx, c, call{method: http.MethodGet, path: "/announcements"})
}

// GetAnnouncement 广播详情
func (c *Client) GetAnnouncement(ctx context.Context, id int) (*domain.Announcement, error) {
	return fetchOne[domain.Announcement](ctx, c, call{method: http.MethodGet, path: "/announcements/{id}", pathParams: idParam(id)})
}

// CreateAnnouncement 发布广播
func (c *Client) CreateAnnouncement(ctx context.Context, in domain.AnnouncementInput) (*domain.Announcement, error) {
	if err := c.checkInput("announcement", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Announcement](ctx, c, call{method: http.MethodPost, path: "/announcements", body: in})
}

// DeleteAnnouncement 删除广播
func (c *Client) DeleteAnnouncement(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/announcements/{id}", pathParams: idParam(id)})
}

// MarkAnnouncementRead 当前用户标记已读
func (c *Client) MarkAnnouncementRead(ctx context.Context, id, userID int) error {
	return c.exec(ctx, call{
		method:     http.MethodPut,
		path:       "/announcements/{id}/read",
		pathParams: idParam(id),
		body:       map[string]int{"user_id": userID},
	})
}
