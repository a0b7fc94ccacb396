package api

import (
	"context"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	return do[[]domain.Category](ctx, c, get("categories", nil))
}

func (c *Client) CreateCategory(ctx context.Context, body domain.CategoryBody) (domain.Category, error) {
	if err := c.validateBody(body); err != nil {
		return domain.Category{}, err
	}
	return do[domain.Category](ctx, c, post("categories", body))
}

func (c *Client) UpdateCategory(ctx context.Context, id uuid.UUID, body domain.CategoryBody) (domain.Category, error) {
	if err := c.validateBody(body); err != nil {
		return domain.Category{}, err
	}
	return do[domain.Category](ctx, c, put("categories/"+id.String(), body))
}
