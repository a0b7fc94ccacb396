// Package memory is an in-process implementation of the repository
// ports. Tests use it as a stub server; the demo flag wires it in place
// of the REST adapter.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

// Store holds all entities behind one mutex. Pagination mirrors the
// service: fixed page size, pageCount rounded up, history ordered date
// descending then creation descending.
type Store struct {
	mu         sync.Mutex
	per        int
	now        func() time.Time
	groups     []domain.AccountGroup
	accounts   []domain.Account
	categories []domain.Category
	movements  []domain.Movement
}

// New returns an empty store with the given page size (30 when <= 0).
func New(per int) *Store {
	if per <= 0 {
		per = 30
	}
	return &Store{per: per, now: time.Now}
}

// SetClock pins the store's clock, for deterministic tests.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

// SeedGroups registers groups as-is.
func (s *Store) SeedGroups(groups ...domain.AccountGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, groups...)
}

// SeedAccounts registers accounts as-is.
func (s *Store) SeedAccounts(accounts ...domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, accounts...)
}

// SeedCategories registers categories as-is.
func (s *Store) SeedCategories(categories ...domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, categories...)
}

// SeedMovements registers movements as-is.
func (s *Store) SeedMovements(movements ...domain.Movement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append(s.movements, movements...)
}

func (s *Store) FetchAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.OrderedAccounts(s.accounts), nil
}

func (s *Store) FetchAccountDetails(_ context.Context, accountID uuid.UUID, period domain.HistoryPeriod, page int) (domain.AccountDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accountLocked(accountID)
	if !ok {
		return domain.AccountDetails{}, fmt.Errorf("account %s not found", accountID)
	}
	movements := s.pageLocked(&accountID, page)
	return domain.AccountDetails{
		Account: acct,
		History: domain.HistoryQueryData{
			Balance: acct.Balance,
			Min:     acct.Balance,
			Max:     acct.Balance,
			Period:  period,
			Growth:  domain.Growth{Type: domain.GrowthAmount},
		},
		Movements: movements,
	}, nil
}

func (s *Store) FetchAccountStats(_ context.Context, accountID uuid.UUID) ([]domain.StatsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accountLocked(accountID)
	if !ok {
		return nil, fmt.Errorf("account %s not found", accountID)
	}
	byMonth := make(map[string][]domain.Movement)
	for _, m := range s.movements {
		if m.Account.ID != accountID {
			continue
		}
		key := m.Date.UTC().Format("Jan 2006")
		byMonth[key] = append(byMonth[key], m)
	}
	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]domain.StatsResult, 0, len(keys))
	for _, k := range keys {
		ms := byMonth[k]
		total := domain.Money{Currency: acct.Currency}
		byCat := make(map[uuid.UUID]*domain.MovementsByCategories)
		var catOrder []uuid.UUID
		for _, m := range ms {
			total.Value = total.Value.Add(m.Amount.Value)
			node, ok := byCat[m.Category.ID]
			if !ok {
				node = &domain.MovementsByCategories{
					Category:      m.Category,
					CurrencyValue: domain.Money{Currency: acct.Currency},
				}
				byCat[m.Category.ID] = node
				catOrder = append(catOrder, m.Category.ID)
			}
			node.Count++
			node.CurrencyValue.Value = node.CurrencyValue.Value.Add(m.Amount.Value)
		}
		res := domain.StatsResult{PeriodText: k, Balance: total, Count: len(ms)}
		for _, id := range catOrder {
			res.MovementsByCategories = append(res.MovementsByCategories, *byCat[id])
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *Store) CreateAccount(_ context.Context, body domain.AccountBody) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var group domain.AccountGroup
	found := false
	for _, g := range s.groups {
		if g.ID == body.GroupID {
			group, found = g, true
			break
		}
	}
	if !found {
		return domain.Account{}, fmt.Errorf("group %s not found", body.GroupID)
	}
	acct := domain.Account{
		ID:          uuid.New(),
		Group:       group,
		Currency:    body.Currency,
		Symbol:      body.Symbol,
		Name:        body.Name,
		Description: body.Description,
		Balance:     domain.Money{Currency: body.Currency},
	}
	s.accounts = append(s.accounts, acct)
	return acct, nil
}

func (s *Store) AdjustBalance(_ context.Context, accountID uuid.UUID, adj domain.BalanceAdjustment) (domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accountLocked(accountID)
	if !ok {
		return domain.Movement{}, fmt.Errorf("account %s not found", accountID)
	}
	desc := "Balance adjustment"
	if adj.Description != nil {
		desc = *adj.Description
	}
	now := s.now()
	m := domain.Movement{
		ID:             uuid.New(),
		Account:        acct,
		Category:       s.defaultCategoryLocked(),
		Amount:         domain.Money{Value: adj.Balance.Value.Sub(acct.Balance.Value), Currency: acct.Currency},
		Fees:           domain.Money{Currency: acct.Currency},
		Balance:        domain.Money{Value: adj.Balance.Value, Currency: acct.Currency},
		Date:           adj.Date,
		CompletionDate: adj.Date,
		Description:    desc,
		Note:           adj.Note,
		ImportKey:      "adjust:" + now.UTC().Format(time.RFC3339Nano),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.movements = append(s.movements, m)
	for i := range s.accounts {
		if s.accounts[i].ID == accountID {
			s.accounts[i].Balance = m.Balance
		}
	}
	return m, nil
}

func (s *Store) Stats(_ context.Context) ([]domain.AccountBalanceHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AccountBalanceHistory, 0, len(s.accounts))
	for _, a := range domain.OrderedAccounts(s.accounts) {
		out = append(out, domain.AccountBalanceHistory{
			Key: a.Name,
			Balances: []domain.BalanceAtDate{
				{Date: s.now().UTC().Format("2006-01-02"), Balance: a.Balance},
			},
		})
	}
	return out, nil
}

func (s *Store) FetchMovements(_ context.Context, page int) (domain.Page[domain.Movement], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageLocked(nil, page), nil
}

func (s *Store) FetchMovementsByAccount(_ context.Context, accountID uuid.UUID, page int) (domain.Page[domain.Movement], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageLocked(&accountID, page), nil
}

func (s *Store) SetCategory(_ context.Context, movementID, categoryID uuid.UUID) (domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cat *domain.Category
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			cat = &s.categories[i]
			break
		}
	}
	if cat == nil {
		return domain.Movement{}, fmt.Errorf("category %s not found", categoryID)
	}
	for i := range s.movements {
		if s.movements[i].ID == movementID {
			s.movements[i].Category = *cat
			s.movements[i].UpdatedAt = s.now()
			return s.movements[i], nil
		}
	}
	return domain.Movement{}, fmt.Errorf("movement %s not found", movementID)
}

// Import accepts the upload and writes one movement per non-empty data
// line. Real parsing happens server-side; this only needs to be plausible
// for demo mode.
func (s *Store) Import(_ context.Context, accountID uuid.UUID, imp domain.MovementImport) (domain.Page[domain.Movement], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accountLocked(accountID)
	if !ok {
		return domain.Page[domain.Movement]{}, fmt.Errorf("account %s not found", accountID)
	}
	now := s.now()
	var imported []domain.Movement
	for i, line := range strings.Split(string(imp.Data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || i == 0 { // first line is the header
			continue
		}
		desc := line
		if at := strings.IndexByte(desc, ','); at > 0 {
			desc = desc[:at]
		}
		if imp.RemoveText != nil {
			desc = strings.ReplaceAll(desc, *imp.RemoveText, "")
		}
		m := domain.Movement{
			ID:             uuid.New(),
			Account:        acct,
			Category:       s.defaultCategoryLocked(),
			Amount:         domain.Money{Currency: acct.Currency},
			Fees:           domain.Money{Currency: acct.Currency},
			Balance:        acct.Balance,
			Date:           now,
			CompletionDate: now,
			Description:    strings.TrimSpace(desc),
			ImportKey:      fmt.Sprintf("%s:%s:%d", imp.FileType, imp.Filename, i),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		s.movements = append(s.movements, m)
		imported = append(imported, m)
	}
	return domain.Page[domain.Movement]{
		Items: imported,
		Metadata: domain.PageMetadata{
			Page: 1, Per: s.per, Total: len(imported), PageCount: pageCount(len(imported), s.per),
		},
	}, nil
}

func (s *Store) FetchGroups(_ context.Context) ([]domain.AccountGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.OrderedGroups(s.groups), nil
}

func (s *Store) CreateGroup(_ context.Context, body domain.AccountGroupBody) (domain.AccountGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := domain.AccountGroup{ID: uuid.New(), Name: body.Name, Description: body.Description, Order: body.Order}
	s.groups = append(s.groups, g)
	return g, nil
}

func (s *Store) UpdateGroup(_ context.Context, id uuid.UUID, body domain.AccountGroupBody) (domain.AccountGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		if s.groups[i].ID == id {
			s.groups[i].Name = body.Name
			s.groups[i].Description = body.Description
			s.groups[i].Order = body.Order
			return s.groups[i], nil
		}
	}
	return domain.AccountGroup{}, fmt.Errorf("group %s not found", id)
}

func (s *Store) DeleteGroup(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		if s.groups[i].ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) FetchCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.categories...), nil
}

func (s *Store) CreateCategory(_ context.Context, body domain.CategoryBody) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Category{ID: uuid.New(), Name: body.Name, Icon: body.Icon, BackgroundColor: body.BackgroundColor}
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Store) UpdateCategory(_ context.Context, id uuid.UUID, body domain.CategoryBody) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = body.Name
			s.categories[i].Icon = body.Icon
			s.categories[i].BackgroundColor = body.BackgroundColor
			return s.categories[i], nil
		}
	}
	return domain.Category{}, fmt.Errorf("category %s not found", id)
}

func (s *Store) accountLocked(id uuid.UUID) (domain.Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

func (s *Store) defaultCategoryLocked() domain.Category {
	for _, c := range s.categories {
		if c.IsDefault {
			return c
		}
	}
	if len(s.categories) > 0 {
		return s.categories[0]
	}
	return domain.Category{}
}

func (s *Store) pageLocked(accountID *uuid.UUID, page int) domain.Page[domain.Movement] {
	if page < 1 {
		page = 1
	}
	var all []domain.Movement
	for _, m := range s.movements {
		if accountID != nil && m.Account.ID != *accountID {
			continue
		}
		all = append(all, m)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	total := len(all)
	start := (page - 1) * s.per
	if start > total {
		start = total
	}
	end := start + s.per
	if end > total {
		end = total
	}
	return domain.Page[domain.Movement]{
		Items: append([]domain.Movement(nil), all[start:end]...),
		Metadata: domain.PageMetadata{
			Page: page, Per: s.per, Total: total, PageCount: pageCount(total, s.per),
		},
	}
}

func pageCount(total, per int) int {
	if total == 0 {
		return 0
	}
	return (total + per - 1) / per
}
