package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
)

// ListResidents 住户列表
func (c *Client) ListResidents(ctx context.Context, f domain.ResidentFilter) ([]domain.Resident, error) {
	q := newQuery().str("search", f.Search).intPtr("floor", f.Floor)
	items, err := fetchList[domain.Resident](ctx, c, call{method: http.MethodGet, path: "/residents", query: q.values()})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeResident(&items[i])
	}
	return items, nil
}

// GetResident 住户详情（含房间、用药、过敏、饮食）
func (c *Client) GetResident(ctx context.Context, id int) (*domain.Resident, error) {
	r, err := fetchOne[domain.Resident](ctx, c, call{method: http.MethodGet, path: "/residents/{id}", pathParams: idParam(id)})
	if err != nil {
		return nil, err
	}
	localizeResident(r)
	return r, nil
}

// CreateResident 新建住户
func (c *Client) CreateResident(ctx context.Context, in domain.ResidentInput) (*domain.Resident, error) {
	if err := c.checkInput("resident", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Resident](ctx, c, call{method: http.MethodPost, path: "/residents", body: in})
}

// UpdateResident 更新住户
func (c *Client) UpdateResident(ctx context.Context, id int, in domain.ResidentInput) (*domain.Resident, error) {
	if err := c.checkInput("resident", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Resident](ctx, c, call{method: http.MethodPut, path: "/residents/{id}", pathParams: idParam(id), body: in})
}

// DeleteResident 删除住户
func (c *Client) DeleteResident(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/residents/{id}", pathParams: idParam(id)})
}

// localizeResident 嵌套集合中的枚举值转换为显示值
func localizeResident(r *domain.Resident) {
	if r == nil {
		return
	}
	for i := range r.Medications {
		localizeResidentMedication(&r.Medications[i])
	}
}
