package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
)

// ListRooms 房间列表；floor 为 nil 时返回全部楼层
func (c *Client) ListRooms(ctx context.Context, floor *int) ([]domain.Room, error) {
	q := newQuery().intPtr("floor", floor)
	return fetchList[domain.Room](ctx, c, call{method: http.MethodGet, path: "/rooms", query: q.values()})
}

// GetRoom 房间详情
func (c *Client) GetRoom(ctx context.Context, id int) (*domain.Room, error) {
	return fetchOne[domain.Room](ctx, c, call{method: http.MethodGet, path: "/rooms/{id}", pathParams: idParam(id)})
}

// CreateRoom 新建房间
func (c *Client) CreateRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	if err := c.checkInput("room", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Room](ctx, c, call{method: http.MethodPost, path: "/rooms", body: in})
}

// UpdateRoom 更新房间
func (c *Client) UpdateRoom(ctx context.Context, id int, in domain.RoomInput) (*domain.Room, error) {
	if err := c.checkInput("room", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Room](ctx, c, call{method: http.MethodPut, path: "/rooms/{id}", pathParams: idParam(id), body: in})
}

// DeleteRoom 删除房间
func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/rooms/{id}", pathParams: idParam(id)})
}

// LinkResident 将住户分配到房间（一人一房由后端保证）
func (c *Client) LinkResident(ctx context.Context, roomID, residentID int) (*domain.Room, error) {
	return fetchOne[domain.Room](ctx, c, call{
		method:     http.MethodPost,
		path:       "/rooms/{id}/link-resident",
		pathParams: idParam(roomID),
		body:       map[string]int{"resident_id": residentID},
	})
}

// UnlinkResident 解除房间与住户的关联
func (c *Client) UnlinkResident(ctx context.Context, roomID int) (*domain.Room, error) {
	return fetchOne[domain.Room](ctx, c, call{method: http.MethodPost, path: "/rooms/{id}/unlink-resident", pathParams: idParam(roomID)})
}
