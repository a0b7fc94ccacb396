package feed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"moneytrack/internal/domain"
)

func page(items []domain.Account, page, per, total, pageCount int) domain.Page[domain.Account] {
	return domain.Page[domain.Account]{
		Items: items,
		Metadata: domain.PageMetadata{
			Page:      page,
			Per:       per,
			Total:     total,
			PageCount: pageCount,
		},
	}
}

func account(name string) domain.Account {
	return domain.Account{ID: uuid.New(), Name: name}
}

func TestSelectorSingleSelectKeepsLatest(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](false, false)
	a, b := account("checking"), account("savings")
	s.OnDataLoaded([]domain.Account{a, b})

	s.OnItemSelected(a)
	s.OnItemSelected(b)

	sel := s.Selected()
	require.Len(t, sel, 1)
	require.Equal(t, b.ID, sel[0].ID)
	require.False(t, s.IsSelected(a.ID))
	require.True(t, s.IsSelected(b.ID))
}

func TestSelectorMultiSelectAccumulates(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](true, false)
	a, b := account("checking"), account("savings")

	s.OnItemSelected(a)
	s.OnItemSelected(b)

	sel := s.Selected()
	require.Len(t, sel, 2)
	require.Equal(t, a.ID, sel[0].ID)
	require.Equal(t, b.ID, sel[1].ID)
}

func TestSelectorSelectAllClearsSelection(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](false, true)
	a := account("checking")
	s.OnItemSelected(a)
	require.False(t, s.AllSelected())

	s.OnSelectAllRequested()
	require.Empty(t, s.Selected())
	require.True(t, s.AllSelected())
}

func TestSelectorSelectAllIgnoredWithoutOption(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](false, false)
	a := account("checking")
	s.OnItemSelected(a)

	s.OnSelectAllRequested()
	require.Len(t, s.Selected(), 1)
	require.False(t, s.AllSelected())
}

func TestSelectorPagination(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](false, false)
	require.False(t, s.HasMorePages())
	require.Equal(t, 1, s.NextPage())

	s.BeginLoad()
	require.True(t, s.Loading())
	s.OnPageFetched(page([]domain.Account{account("a")}, 1, 30, 45, 2))
	require.False(t, s.Loading())
	require.True(t, s.HasMorePages())
	require.Equal(t, 2, s.NextPage())

	// page == pageCount means the listing is exhausted
	s.OnPageFetched(page([]domain.Account{account("b")}, 2, 30, 45, 2))
	require.False(t, s.HasMorePages())
	require.Equal(t, 2, s.Len())
}

func TestSelectorAppendsDuplicatesAsDelivered(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](false, false)
	a := account("checking")
	s.OnPageFetched(page([]domain.Account{a}, 1, 30, 1, 1))
	s.OnPageFetched(page([]domain.Account{a}, 1, 30, 1, 1))

	// overlapping re-fetches append again, the selector does not dedupe
	require.Equal(t, 2, s.Len())
}

func TestSelectorReset(t *testing.T) {
	t.Parallel()

	s := NewSelector[domain.Account](false, true)
	a := account("checking")
	s.OnPageFetched(page([]domain.Account{a}, 1, 30, 1, 1))
	s.OnItemSelected(a)

	s.Reset()
	require.Zero(t, s.Len())
	require.Empty(t, s.Selected())
	require.False(t, s.HasMorePages())
	require.Equal(t, 1, s.NextPage())
}
