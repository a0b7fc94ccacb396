package service

import (
	"context"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
	"moneytrack/internal/feed"
	"moneytrack/internal/repository"
)

// Assigner reassigns a movement's category. No optimistic update: the
// displayed feed is only touched once the server returns the fresh
// snapshot, so a failure leaves everything as it was.
type Assigner struct {
	Movements repository.Movements
}

// SetCategory issues the mutation and returns the fresh snapshot.
func (a *Assigner) SetCategory(ctx context.Context, movementID, categoryID uuid.UUID) (domain.Movement, error) {
	return a.Movements.SetCategory(ctx, movementID, categoryID)
}

// Assign sets the category on the server and swaps the returned snapshot
// into f at the movement's existing position.
func (a *Assigner) Assign(ctx context.Context, f *feed.MovementFeed, movementID, categoryID uuid.UUID) error {
	updated, err := a.SetCategory(ctx, movementID, categoryID)
	if err != nil {
		return err
	}
	f.Replace(updated)
	return nil
}
