package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"moneytrack/internal/domain"
	"moneytrack/internal/repository"
)

// Overview loads the data the accounts screen needs in one go.
type Overview struct {
	Accounts   repository.Accounts
	Groups     repository.Groups
	Categories repository.Categories
}

// OverviewData is the accounts screen's working set, already in display
// order.
type OverviewData struct {
	Accounts   []domain.Account
	Groups     []domain.AccountGroup
	Categories []domain.Category
}

// Load fetches accounts, groups and categories concurrently. Any failure
// fails the whole load; the screen retries manually.
func (o *Overview) Load(ctx context.Context) (OverviewData, error) {
	var data OverviewData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := o.Accounts.FetchAccounts(ctx)
		if err != nil {
			return err
		}
		data.Accounts = domain.OrderedAccounts(accounts)
		return nil
	})
	g.Go(func() error {
		groups, err := o.Groups.FetchGroups(ctx)
		if err != nil {
			return err
		}
		data.Groups = domain.OrderedGroups(groups)
		return nil
	})
	g.Go(func() error {
		categories, err := o.Categories.FetchCategories(ctx)
		if err != nil {
			return err
		}
		data.Categories = categories
		return nil
	})
	if err := g.Wait(); err != nil {
		return OverviewData{}, err
	}
	return data, nil
}
