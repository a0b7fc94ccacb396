package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Parallel()

	m, err := MoneyFromString("1234.56", CurrencyCHF)
	require.NoError(t, err)
	require.Equal(t, "1234.56 CHF", m.String())

	_, err = MoneyFromString("not-a-number", CurrencyCHF)
	require.Error(t, err)
}

func TestMoneyEqualIgnoresRepresentation(t *testing.T) {
	t.Parallel()

	a, err := MoneyFromString("100", CurrencyEUR)
	require.NoError(t, err)
	b, err := MoneyFromString("100.00", CurrencyEUR)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(Money{Value: a.Value, Currency: CurrencyUSD}))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	t.Parallel()

	// decimals must survive encoding without float drift
	m, err := MoneyFromString("0.1", CurrencyUSD)
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, m.Equal(back))
}

func TestPageMetadataHasMorePages(t *testing.T) {
	t.Parallel()

	require.True(t, PageMetadata{Page: 1, PageCount: 2}.HasMorePages())
	require.False(t, PageMetadata{Page: 2, PageCount: 2}.HasMorePages())
	require.False(t, PageMetadata{Page: 3, PageCount: 2}.HasMorePages())
}

func TestCurrencyValid(t *testing.T) {
	t.Parallel()

	for _, c := range Currencies() {
		require.True(t, c.Valid())
	}
	require.False(t, Currency("JPY").Valid())
}
