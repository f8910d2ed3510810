package apiclient

import (
	"context"
	"net/http"

	"syntheo-client/internal/domain"
)

// ListAllergies 某住户的过敏信息
func (c *Client) ListAllergies(ctx context.Context, residentID int) ([]domain.Allergy, error) {
	return fetchList[domain.Allergy](ctx, c, call{method: http.MethodGet, path: "/residents/{id}/allergies", pathParams: idParam(residentID)})
}

// CreateAllergy 新增过敏
func (c *Client) CreateAllergy(ctx context.Context, in domain.AllergyInput) (*domain.Allergy, error) {
	if err := c.checkInput("allergy", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Allergy](ctx, c, call{method: http.MethodPost, path: "/allergies", body: in})
}

// UpdateAllergy 更新过敏
func (c *Client) UpdateAllergy(ctx context.Context, id int, in domain.AllergyInput) (*domain.Allergy, error) {
	if err := c.checkInput("allergy", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Allergy](ctx, c, call{method: http.MethodPut, path: "/allergies/{id}", pathParams: idParam(id), body: in})
}

// DeleteAllergy 删除过敏
func (c *Client) DeleteAllergy(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/allergies/{id}", pathParams: idParam(id)})
}

// GetResidentDiet 住户饮食信息
// 后端 404 表示"尚无数据"，返回 (nil, nil) 而不是错误
func (c *Client) GetResidentDiet(ctx context.Context, residentID int) (*domain.Diet, error) {
	d, err := fetchOne[domain.Diet](ctx, c, call{method: http.MethodGet, path: "/residents/{id}/diet", pathParams: idParam(residentID)})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// CreateDiet 新增饮食信息
func (c *Client) CreateDiet(ctx context.Context, in domain.DietInput) (*domain.Diet, error) {
	if err := c.checkInput("diet", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Diet](ctx, c, call{method: http.MethodPost, path: "/diets", body: in})
}

// UpdateDiet 更新饮食信息
func (c *Client) UpdateDiet(ctx context.Context, id int, in domain.DietInput) (*domain.Diet, error) {
	if err := c.checkInput("diet", in); err != nil {
		return nil, err
	}
	return fetchOne[domain.Diet](ctx, c, call{method: http.MethodPut, path: "/diets/{id}", pathParams: idParam(id), body: in})
}

// DeleteDiet 删除饮食信息
func (c *Client) DeleteDiet(ctx context.Context, id int) error {
	return c.exec(ctx, call{method: http.MethodDelete, path: "/diets/{id}", pathParams: idParam(id)})
}
