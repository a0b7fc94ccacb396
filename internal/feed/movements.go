package feed

import (
	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

// LoadState is the feed's screen-facing loading phase.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateError
)

// Entry is one renderable feed row. DateLabel is non-empty only on rows
// that open a new calendar day as the list is read top to bottom.
type Entry struct {
	Movement  domain.Movement
	DateLabel string
}

// MovementFeed accumulates a paginated movement history for one account,
// or for all accounts when unscoped. Movements are a set keyed by id: a
// re-fetched id replaces the earlier snapshot in place instead of
// duplicating the row. Like Selector, the feed performs no I/O; the
// caller fetches pages and reports the results.
type MovementFeed struct {
	account *domain.Account
	labeler DateLabeler

	state        LoadState
	errMessage   string
	items        []domain.Movement
	index        map[uuid.UUID]int
	currentPage  int
	totalRecords int
	hasMoreData  bool
}

// NewMovementFeed builds a feed scoped to account, or unscoped when
// account is nil.
func NewMovementFeed(account *domain.Account, labeler DateLabeler) *MovementFeed {
	return &MovementFeed{
		account: account,
		labeler: labeler,
		index:   make(map[uuid.UUID]int),
	}
}

// Account returns the scope, nil for the all-accounts feed.
func (f *MovementFeed) Account() *domain.Account { return f.account }

// Begin marks a fetch as outstanding.
func (f *MovementFeed) Begin() { f.state = StateLoading }

// Fail records a fetch failure. Accumulated items are left untouched;
// recovery is a manual re-load.
func (f *MovementFeed) Fail(message string) {
	f.state = StateError
	f.errMessage = message
}

// State returns the loading phase.
func (f *MovementFeed) State() LoadState { return f.state }

// ErrorMessage returns the last failure message, empty outside StateError.
func (f *MovementFeed) ErrorMessage() string {
	if f.state != StateError {
		return ""
	}
	return f.errMessage
}

// OnPageLoaded merges a fetched page. New ids append at the tail in
// arrival order; ids already present are replaced in place. hasMoreData
// uses page <= pageCount, so one extra fetch happens at the boundary and
// legitimately comes back empty.
func (f *MovementFeed) OnPageLoaded(page domain.Page[domain.Movement]) {
	for _, m := range page.Items {
		if at, ok := f.index[m.ID]; ok {
			f.items[at] = m
			continue
		}
		f.index[m.ID] = len(f.items)
		f.items = append(f.items, m)
	}
	f.state = StateIdle
	f.errMessage = ""
	f.currentPage = page.Metadata.Page
	f.totalRecords = page.Metadata.Total
	f.hasMoreData = page.Metadata.Page <= page.Metadata.PageCount
}

// OnBottomReached advances the cursor and returns the page the caller
// should now fetch. The feed does not guard against overlapping calls;
// screens avoid firing this while a fetch is outstanding.
func (f *MovementFeed) OnBottomReached() int {
	f.currentPage++
	return f.currentPage
}

// CurrentPage returns the last page cursor.
func (f *MovementFeed) CurrentPage() int { return f.currentPage }

// TotalRecords returns the server-reported total row count.
func (f *MovementFeed) TotalRecords() int { return f.totalRecords }

// HasMoreData reports whether another fetch should be attempted.
func (f *MovementFeed) HasMoreData() bool { return f.hasMoreData }

// Len returns the number of accumulated movements.
func (f *MovementFeed) Len() int { return len(f.items) }

// Replace swaps in a fresh snapshot of an already-listed movement,
// keeping its position. Unknown ids are ignored and false is returned.
func (f *MovementFeed) Replace(m domain.Movement) bool {
	at, ok := f.index[m.ID]
	if !ok {
		return false
	}
	f.items[at] = m
	return true
}

// Get returns the listed snapshot for id.
func (f *MovementFeed) Get(id uuid.UUID) (domain.Movement, bool) {
	at, ok := f.index[id]
	if !ok {
		return domain.Movement{}, false
	}
	return f.items[at], true
}

// Movements returns the accumulated list in arrival order.
func (f *MovementFeed) Movements() []domain.Movement {
	return append([]domain.Movement(nil), f.items...)
}

// Entries derives the renderable rows. Labels are recomputed over the
// whole accumulated list on every call: the first row is always labeled,
// and a row is labeled when its calendar day is strictly earlier than the
// row above it.
func (f *MovementFeed) Entries() []Entry {
	out := make([]Entry, 0, len(f.items))
	for i, m := range f.items {
		label := ""
		if i == 0 || f.labeler.EarlierDay(m.Date, f.items[i-1].Date) {
			label = f.labeler.Label(m.Date)
		}
		out = append(out, Entry{Movement: m, DateLabel: label})
	}
	return out
}
