package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
	"moneytrack/internal/repository"
)

// BalanceAdjuster asks the server to write a correcting movement so an
// account's balance at a given day matches an observed figure.
type BalanceAdjuster struct {
	Accounts repository.Accounts
}

// Adjust submits the adjustment. Empty description and note collapse to
// absent fields.
func (b *BalanceAdjuster) Adjust(ctx context.Context, accountID uuid.UUID, date time.Time, description, note string, balance domain.Money) (domain.Movement, error) {
	adj := domain.BalanceAdjustment{
		Date:        date,
		Description: emptyAsNil(description),
		Note:        emptyAsNil(note),
		Balance:     balance,
	}
	return b.Accounts.AdjustBalance(ctx, accountID, adj)
}

func emptyAsNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
