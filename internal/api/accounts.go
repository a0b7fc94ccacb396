package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"moneytrack/internal/domain"
)

// FetchAccounts returns all accounts in display order.
func (c *Client) FetchAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := do[[]domain.Account](ctx, c, get("accounts", nil))
	if err != nil {
		return nil, err
	}
	return domain.OrderedAccounts(accounts), nil
}

func (c *Client) FetchAccountDetails(ctx context.Context, accountID uuid.UUID, period domain.HistoryPeriod, page int) (domain.AccountDetails, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per", strconv.Itoa(c.per))
	q.Set("period", string(period))
	return do[domain.AccountDetails](ctx, c, get("accounts/"+accountID.String()+"/details", q))
}

func (c *Client) FetchAccountStats(ctx context.Context, accountID uuid.UUID) ([]domain.StatsResult, error) {
	return do[[]domain.StatsResult](ctx, c, get("accounts/"+accountID.String()+"/stats", nil))
}

func (c *Client) CreateAccount(ctx context.Context, body domain.AccountBody) (domain.Account, error) {
	if err := c.validateBody(body); err != nil {
		return domain.Account{}, err
	}
	return do[domain.Account](ctx, c, post("accounts", body))
}

// AdjustBalance writes a correcting movement so the account balance at
// the given day equals adj.Balance. The date crosses the wire as a plain
// "2006-01-02" string.
func (c *Client) AdjustBalance(ctx context.Context, accountID uuid.UUID, adj domain.BalanceAdjustment) (domain.Movement, error) {
	if err := c.validateBody(adj); err != nil {
		return domain.Movement{}, err
	}
	body := struct {
		Date        string          `json:"date"`
		Description *string         `json:"description,omitempty"`
		Note        *string         `json:"note,omitempty"`
		Balance     decimal.Decimal `json:"balance"`
	}{
		Date:        adj.Date.UTC().Format("2006-01-02"),
		Description: adj.Description,
		Note:        adj.Note,
		Balance:     adj.Balance.Value,
	}
	return do[domain.Movement](ctx, c, post("movements/"+accountID.String()+"/adjust", body))
}

// Stats returns the global per-account balance history series.
func (c *Client) Stats(ctx context.Context) ([]domain.AccountBalanceHistory, error) {
	return do[[]domain.AccountBalanceHistory](ctx, c, get("stats", nil))
}
