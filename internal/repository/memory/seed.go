package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"moneytrack/internal/domain"
)

// SeedDemo fills the store with a small realistic data set for the demo
// backend.
func SeedDemo(s *Store) {
	daily := domain.AccountGroup{ID: uuid.New(), Name: "Daily", Order: 0}
	savings := domain.AccountGroup{ID: uuid.New(), Name: "Savings", Order: 1}
	s.SeedGroups(daily, savings)

	def := domain.Category{ID: uuid.New(), Name: "Uncategorized", Icon: "questionmark", BackgroundColor: "#7f849c", IsDefault: true}
	groceries := domain.Category{ID: uuid.New(), Name: "Groceries", Icon: "cart", BackgroundColor: "#a6e3a1"}
	transport := domain.Category{ID: uuid.New(), Name: "Transport", Icon: "tram", BackgroundColor: "#89b4fa"}
	salary := domain.Category{ID: uuid.New(), Name: "Salary", Icon: "banknote", BackgroundColor: "#f9e2af"}
	s.SeedCategories(def, groceries, transport, salary)

	checking := domain.Account{
		ID:       uuid.New(),
		Group:    daily,
		Currency: domain.CurrencyCHF,
		Name:     "Checking",
		Balance:  money("2480.55", domain.CurrencyCHF),
	}
	pillar := domain.Account{
		ID:       uuid.New(),
		Group:    savings,
		Currency: domain.CurrencyCHF,
		Name:     "Pillar 3a",
		Balance:  money("15200.00", domain.CurrencyCHF),
	}
	s.SeedAccounts(checking, pillar)

	day := func(offset int) time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	}
	rows := []struct {
		desc   string
		amount string
		cat    domain.Category
		age    int
	}{
		{"Migros Zurich HB", "-42.80", groceries, 0},
		{"SBB EasyRide", "-6.40", transport, 0},
		{"Coop Pronto", "-13.25", groceries, 1},
		{"Monthly salary", "6400.00", salary, 3},
		{"Denner", "-28.90", groceries, 4},
		{"ZVV Monatskarte", "-91.00", transport, 6},
	}
	balance := checking.Balance.Value
	for _, r := range rows {
		amt := decimal.RequireFromString(r.amount)
		s.SeedMovements(domain.Movement{
			ID:             uuid.New(),
			Account:        checking,
			Category:       r.cat,
			Amount:         domain.Money{Value: amt, Currency: checking.Currency},
			Fees:           domain.Money{Currency: checking.Currency},
			Balance:        domain.Money{Value: balance, Currency: checking.Currency},
			Date:           day(r.age),
			CompletionDate: day(r.age),
			Description:    r.desc,
			ImportKey:      uuid.NewString(),
			CreatedAt:      day(r.age),
			UpdatedAt:      day(r.age),
		})
		balance = balance.Sub(amt)
	}
}

func money(v string, c domain.Currency) domain.Money {
	return domain.Money{Value: decimal.RequireFromString(v), Currency: c}
}
