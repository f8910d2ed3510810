package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/locale"
)

func classifyChangeRequest(cr *domain.ChangeRequest) {
	cr.Status = locale.NormalizeChangeRequestStatus(cr.RawStatus)
}

// ListChangeRequests 变更请求列表；状态经尽力而为的分类后返回
func (c *Client) ListChangeRequests(ctx context.Context, f domain.ChangeRequestFilter) ([]domain.ChangeRequest, error) {
	q := newQuery().str("status", string(f.Status)).intPtr("resident_id", f.ResidentID)
	items, err := fetchList[domain.ChangeRequest](ctx, c, call{method: http.MethodGet, path: "/change-requests", query: q.values()})
	if err != nil {
		return nil, err
	}
	for i := range items {
		classifyChangeRequest(&items[i])
	}
	return items, nil
}

// GetChangeRequest 变更请求详情
func (c *Client) GetChangeRequest(ctx context.Context, id int) (*domain.ChangeRequest, error) {
	return c.changeRequestCall(ctx, call{method: http.MethodGet, path: "/change-requests/{id}", pathParams: idParam(id)})
}

// CreateChangeRequest 提交变更请求
func (c *Client) CreateChangeRequest(ctx context.Context, in domain.ChangeRequestInput) (*domain.ChangeRequest, error) {
	if err := c.checkInput("change request", in); err != nil {
		return nil, err
	}
	return c.changeRequestCall(ctx, call{method: http.MethodPost, path: "/change-requests", body: in})
}

// ApproveChangeRequest 批准
func (c *Client) ApproveChangeRequest(ctx context.Context, id int) (*domain.ChangeRequest, error) {
	return c.changeRequestCall(ctx, call{method: http.MethodPut, path: "/change-requests/{id}/approve", pathParams: idParam(id)})
}

// RejectChangeRequest 拒绝，可附带原因
func (c *Client) RejectChangeRequest(ctx context.Context, id int, reason string) (*domain.ChangeRequest, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	return c.changeRequestCall(ctx, call{method: http.MethodPut, path: "/change-requests/{id}/reject", pathParams: idParam(id), body: body})
}

func (c *Client) changeRequestCall(ctx context.Context, cl call) (*domain.ChangeRequest, error) {
	cr, err := fetchOne[domain.ChangeRequest](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	classifyChangeRequest(cr)
	return cr, nil
}
