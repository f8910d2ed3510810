package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
	"syntheo-client/internal/locale"
)

func localizeUser(u *domain.User) {
	u.Role = locale.RoleFromBackend(string(u.Role))
}

func userToWire(in domain.UserInput) map[string]any {
	body := map[string]any{
		"name":  in.Name,
		"email": in.Email,
		"role":  locale.RoleToBackend(in.Role),
	}
	if in.Floor != nil {
		body["floor"] = *in.Floor
	}
	if in.Password != "" {
		body["password"] = in.Password
	}
	return body
}

// ListUsers 用户列表（单独的超时，默认 10s）
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	items, err := fetchList[domain.User](ctx, c, call{method: http.MethodGet, path: "/users", timeout: c.userListTimeout})
	if err != nil {
		return nil, err
	}
	for i := range items {
		localizeUser(&items[i])
	}
	return items, nil
}

// GetUser 用户详情
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return c.userCall(ctx, call{method: http.MethodGet, path: "/users/{id}", pathParams: idParam(id)})
}

// CurrentUser 当前会话对应的用户
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	return c.userCall(ctx, call{method: http.MethodGet, path: "/users/me"})
}

// CreateUser 新建用户
func (c *Client) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if err := c.checkInput("user", in); err != nil {
		return nil, err
	}
	return c.userCall(ctx, call{method: http.MethodPost, path: "/users", body: userToWire(in)})
}

// UpdateUser 更新用户
func (c *Client) UpdateUser(ctx context.Context, id int, in domain.UserInput) (*domain.User, error) {
	if err := c.checkInput("user", in); err != nil {
		return nil, err
	}
	return c.userCall(ctx, call{method: http.MethodPut, path: "/users/{id}", pathParams: idParam(id), body: userToWire(in)})
}

// DeleteUser 删除用户
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/users/{id}", pathParams: idParam(id)})
}

// ActivateUser 启用账号
func (c *Client) ActivateUser(ctx context.Context, id int) (*domain.User, error) {
	return c.userCall(ctx, call{method: http.MethodPut, path: "/users/{id}/activate", pathParams: idParam(id)})
}

// DeactivateUser 停用账号
func (c *Client) DeactivateUser(ctx context.Context, id int) (*domain.User, error) {
	return c.userCall(ctx, call{method: http.MethodPut, path: "/users/{id}/deactivate", pathParams: idParam(id)})
}

func (c *Client) userCall(ctx context.Context, cl call) (*domain.User, error) {
	u, err := fetchOne[domain.User](ctx, c, cl)
	if err != nil {
		return nil, err
	}
	localizeUser(u)
	return u, nil
}
