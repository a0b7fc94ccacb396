package feed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"moneytrack/internal/domain"
)

func movement(desc string, date time.Time) domain.Movement {
	return domain.Movement{ID: uuid.New(), Description: desc, Date: date}
}

func movementPage(items []domain.Movement, pageNum, total, pageCount int) domain.Page[domain.Movement] {
	return domain.Page[domain.Movement]{
		Items: items,
		Metadata: domain.PageMetadata{
			Page:      pageNum,
			Per:       30,
			Total:     total,
			PageCount: pageCount,
		},
	}
}

func TestFeedDateLabels(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	day1b := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 9, 20, 15, 0, 0, time.UTC)

	f := NewMovementFeed(nil, NewDateLabeler())
	f.OnPageLoaded(movementPage([]domain.Movement{
		movement("coffee", day1),
		movement("groceries", day1b),
		movement("rent", day2),
	}, 1, 3, 1))

	entries := f.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "10 Jun 2024", entries[0].DateLabel)
	require.Empty(t, entries[1].DateLabel, "same day as the row above stays unlabeled")
	require.Equal(t, "9 Jun 2024", entries[2].DateLabel)
}

func TestFeedLabelsRecomputedAfterAppend(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	f := NewMovementFeed(nil, NewDateLabeler())
	f.OnPageLoaded(movementPage([]domain.Movement{movement("a", day)}, 1, 2, 2))
	f.OnPageLoaded(movementPage([]domain.Movement{movement("b", day.Add(-time.Hour))}, 2, 2, 2))

	entries := f.Entries()
	require.Len(t, entries, 2)
	require.NotEmpty(t, entries[0].DateLabel)
	require.Empty(t, entries[1].DateLabel)
}

func TestFeedHasMoreDataBoundary(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	f := NewMovementFeed(nil, NewDateLabeler())

	f.OnPageLoaded(movementPage([]domain.Movement{movement("a", day)}, 3, 90, 3))
	// page == pageCount still reports more, one extra empty fetch follows
	require.True(t, f.HasMoreData())

	require.Equal(t, 4, f.OnBottomReached())
	f.OnPageLoaded(movementPage(nil, 4, 90, 3))
	require.False(t, f.HasMoreData())
	require.Equal(t, 1, f.Len())
}

func TestFeedReplacesRefetchedInPlace(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	a := movement("original", day)
	b := movement("other", day.Add(-time.Minute))

	f := NewMovementFeed(nil, NewDateLabeler())
	f.OnPageLoaded(movementPage([]domain.Movement{a, b}, 1, 2, 1))

	updated := a
	updated.Description = "renamed"
	f.OnPageLoaded(movementPage([]domain.Movement{updated}, 1, 2, 1))

	items := f.Movements()
	require.Len(t, items, 2)
	require.Equal(t, "renamed", items[0].Description)
	require.Equal(t, b.ID, items[1].ID)
}

func TestFeedReplace(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	a := movement("coffee", day)
	f := NewMovementFeed(nil, NewDateLabeler())
	f.OnPageLoaded(movementPage([]domain.Movement{a}, 1, 1, 1))

	updated := a
	updated.Category = domain.Category{ID: uuid.New(), Name: "Food"}
	require.True(t, f.Replace(updated))

	got, ok := f.Get(a.ID)
	require.True(t, ok)
	require.Equal(t, "Food", got.Category.Name)
	require.Equal(t, 1, f.Len())

	require.False(t, f.Replace(movement("stranger", day)))
}

func TestFeedFailKeepsItems(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	f := NewMovementFeed(nil, NewDateLabeler())
	f.OnPageLoaded(movementPage([]domain.Movement{movement("a", day)}, 1, 2, 2))

	f.Begin()
	require.Equal(t, StateLoading, f.State())
	f.Fail("connection refused")
	require.Equal(t, StateError, f.State())
	require.Equal(t, "connection refused", f.ErrorMessage())
	require.Equal(t, 1, f.Len())

	// a later successful page clears the error
	f.OnPageLoaded(movementPage([]domain.Movement{movement("b", day)}, 2, 2, 2))
	require.Equal(t, StateIdle, f.State())
	require.Empty(t, f.ErrorMessage())
}

func TestDateLabelerCalendar(t *testing.T) {
	t.Parallel()

	l := NewDateLabeler()
	late := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 6, 10, 0, 1, 0, 0, time.UTC)
	prior := time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)

	require.False(t, l.EarlierDay(early, late))
	require.True(t, l.EarlierDay(prior, early))
	require.Equal(t, "10 Jun 2024", l.Label(late))
}
