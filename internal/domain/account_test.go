package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOrderedAccounts(t *testing.T) {
	t.Parallel()

	cash := AccountGroup{ID: uuid.New(), Name: "Cash", Order: 0}
	invest := AccountGroup{ID: uuid.New(), Name: "Investments", Order: 1}

	checking := Account{ID: uuid.New(), Group: cash, Name: "Checking", Balance: NewMoney(100, CurrencyCHF)}
	savings := Account{ID: uuid.New(), Group: cash, Name: "Savings", Balance: NewMoney(50, CurrencyCHF)}
	broker := Account{ID: uuid.New(), Group: invest, Name: "Broker", Balance: NewMoney(9000, CurrencyCHF)}

	// shuffled input: highest balance first, later group before earlier
	got := OrderedAccounts([]Account{broker, savings, checking})

	require.Equal(t, []string{"Checking", "Savings", "Broker"}, names(got))
}

func TestOrderedAccountsBalanceTieBreak(t *testing.T) {
	t.Parallel()

	g := AccountGroup{ID: uuid.New(), Name: "Cash", Order: 0}
	small := Account{ID: uuid.New(), Group: g, Name: "Small", Balance: NewMoney(10, CurrencyEUR)}
	big := Account{ID: uuid.New(), Group: g, Name: "Big", Balance: NewMoney(500, CurrencyEUR)}

	got := OrderedAccounts([]Account{small, big})
	require.Equal(t, []string{"Big", "Small"}, names(got))
}

func TestOrderedAccountsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	g1 := AccountGroup{ID: uuid.New(), Order: 1}
	g0 := AccountGroup{ID: uuid.New(), Order: 0}
	in := []Account{
		{ID: uuid.New(), Group: g1, Name: "B"},
		{ID: uuid.New(), Group: g0, Name: "A"},
	}

	_ = OrderedAccounts(in)
	require.Equal(t, "B", in[0].Name)
}

func TestOrderedGroups(t *testing.T) {
	t.Parallel()

	got := OrderedGroups([]AccountGroup{
		{ID: uuid.New(), Name: "Later", Order: 5},
		{ID: uuid.New(), Name: "First", Order: 0},
		{ID: uuid.New(), Name: "Middle", Order: 2},
	})
	require.Equal(t, "First", got[0].Name)
	require.Equal(t, "Middle", got[1].Name)
	require.Equal(t, "Later", got[2].Name)
}

func names(accounts []Account) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = a.Name
	}
	return out
}
