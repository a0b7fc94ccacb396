package api

import (
	"context"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

func (c *Client) FetchGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	groups, err := do[[]domain.AccountGroup](ctx, c, get("account-groups", nil))
	if err != nil {
		return nil, err
	}
	return domain.OrderedGroups(groups), nil
}

func (c *Client) CreateGroup(ctx context.Context, body domain.AccountGroupBody) (domain.AccountGroup, error) {
	if err := c.validateBody(body); err != nil {
		return domain.AccountGroup{}, err
	}
	return do[domain.AccountGroup](ctx, c, post("account-groups", body))
}

func (c *Client) UpdateGroup(ctx context.Context, id uuid.UUID, body domain.AccountGroupBody) (domain.AccountGroup, error) {
	if err := c.validateBody(body); err != nil {
		return domain.AccountGroup{}, err
	}
	return do[domain.AccountGroup](ctx, c, put("account-groups/"+id.String(), body))
}

func (c *Client) DeleteGroup(ctx context.Context, id uuid.UUID) (bool, error) {
	return do[bool](ctx, c, del("account-groups/"+id.String()))
}
