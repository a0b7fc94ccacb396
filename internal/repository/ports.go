// Package repository declares the outbound ports the client consumes.
// The live implementation is the REST adapter in internal/api; the
// memory subpackage backs tests and demo mode.
package repository

import (
	"context"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

type (
	// Accounts serves account snapshots and account-level mutations.
	Accounts interface {
		FetchAccounts(ctx context.Context) ([]domain.Account, error)
		FetchAccountDetails(ctx context.Context, accountID uuid.UUID, period domain.HistoryPeriod, page int) (domain.AccountDetails, error)
		FetchAccountStats(ctx context.Context, accountID uuid.UUID) ([]domain.StatsResult, error)
		CreateAccount(ctx context.Context, body domain.AccountBody) (domain.Account, error)
		AdjustBalance(ctx context.Context, accountID uuid.UUID, adj domain.BalanceAdjustment) (domain.Movement, error)
		Stats(ctx context.Context) ([]domain.AccountBalanceHistory, error)
	}

	// Movements serves paginated movement history and movement mutations.
	Movements interface {
		FetchMovements(ctx context.Context, page int) (domain.Page[domain.Movement], error)
		FetchMovementsByAccount(ctx context.Context, accountID uuid.UUID, page int) (domain.Page[domain.Movement], error)
		SetCategory(ctx context.Context, movementID, categoryID uuid.UUID) (domain.Movement, error)
		Import(ctx context.Context, accountID uuid.UUID, imp domain.MovementImport) (domain.Page[domain.Movement], error)
	}

	// Groups serves account-group CRUD.
	Groups interface {
		FetchGroups(ctx context.Context) ([]domain.AccountGroup, error)
		CreateGroup(ctx context.Context, body domain.AccountGroupBody) (domain.AccountGroup, error)
		UpdateGroup(ctx context.Context, id uuid.UUID, body domain.AccountGroupBody) (domain.AccountGroup, error)
		DeleteGroup(ctx context.Context, id uuid.UUID) (bool, error)
	}

	// Categories serves category listing and CRUD.
	Categories interface {
		FetchCategories(ctx context.Context) ([]domain.Category, error)
		CreateCategory(ctx context.Context, body domain.CategoryBody) (domain.Category, error)
		UpdateCategory(ctx context.Context, id uuid.UUID, body domain.CategoryBody) (domain.Category, error)
	}
)
