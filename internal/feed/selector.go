package feed

import (
	"github.com/google/uuid"

	"moneytrack/internal/domain"
)

// Selector is a paginated browse-and-select engine over any identifiable
// collection. It owns no I/O and no scheduler: callers request pages from
// a repository and feed the results back through OnPageFetched or
// OnDataLoaded, so every transition is synchronous and testable.
//
// In multi-select mode items accumulate in selection order. With the
// "all" option enabled, OnSelectAllRequested empties the selection, which
// downstream reads as the wildcard (no specific filter).
type Selector[T domain.Identifiable] struct {
	loading       bool
	allowMultiple bool
	showAllOption bool
	items         []T
	selected      []T
	metadata      *domain.PageMetadata
}

// NewSelector builds an empty selector.
func NewSelector[T domain.Identifiable](allowMultiple, showAllOption bool) *Selector[T] {
	return &Selector[T]{
		allowMultiple: allowMultiple,
		showAllOption: showAllOption,
	}
}

// Reset clears items, selection and pagination state. Callers use it when
// the scope the pages are fetched for changes, then restart the fetch
// cycle from page 1.
func (s *Selector[T]) Reset() {
	s.items = nil
	s.selected = nil
	s.metadata = nil
}

// BeginLoad marks a fetch as outstanding.
func (s *Selector[T]) BeginLoad() { s.loading = true }

// Loading reports whether a fetch is outstanding.
func (s *Selector[T]) Loading() bool { return s.loading }

// OnPageFetched appends the page's items and replaces the pagination
// metadata. Items are appended as delivered, duplicates included: an
// overlapping re-fetch will append the same id again on this path.
func (s *Selector[T]) OnPageFetched(page domain.Page[T]) {
	s.loading = false
	s.items = append(s.items, page.Items...)
	md := page.Metadata
	s.metadata = &md
}

// OnDataLoaded replaces the whole collection from an unpaginated fetch.
func (s *Selector[T]) OnDataLoaded(items []T) {
	s.loading = false
	s.items = append([]T(nil), items...)
}

// OnItemSelected records a selection. Single-select mode keeps only the
// latest item.
func (s *Selector[T]) OnItemSelected(item T) {
	if !s.allowMultiple {
		s.selected = nil
	}
	s.selected = append(s.selected, item)
}

// OnSelectAllRequested clears the selection, meaning "everything". It is
// only honored when the selector was built with the all option.
func (s *Selector[T]) OnSelectAllRequested() {
	if !s.showAllOption {
		return
	}
	s.selected = nil
}

// HasMorePages reports whether a further page exists. Before the first
// page arrives there is no metadata and the answer is false.
func (s *Selector[T]) HasMorePages() bool {
	if s.metadata == nil {
		return false
	}
	return s.metadata.HasMorePages()
}

// NextPage returns the page number a caller should request next: one past
// the last fetched page, or 1 when nothing was fetched yet.
func (s *Selector[T]) NextPage() int {
	if s.metadata == nil {
		return 1
	}
	return s.metadata.Page + 1
}

// Items returns the accumulated items in arrival order.
func (s *Selector[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// Selected returns the current selection in selection order. Empty means
// either nothing selected or, with the all option, the wildcard.
func (s *Selector[T]) Selected() []T {
	return append([]T(nil), s.selected...)
}

// IsSelected reports whether the id is part of the selection.
func (s *Selector[T]) IsSelected(id uuid.UUID) bool {
	for i := range s.selected {
		if s.selected[i].Identity() == id {
			return true
		}
	}
	return false
}

// AllSelected reports the wildcard state: the all option is on and no
// specific item is selected.
func (s *Selector[T]) AllSelected() bool {
	return s.showAllOption && len(s.selected) == 0
}

// Metadata returns a copy of the last page metadata, or nil before any
// page arrived.
func (s *Selector[T]) Metadata() *domain.PageMetadata {
	if s.metadata == nil {
		return nil
	}
	md := *s.metadata
	return &md
}

// AllowsMultiple reports the selection mode.
func (s *Selector[T]) AllowsMultiple() bool { return s.allowMultiple }

// ShowsAllOption reports whether the wildcard row is offered.
func (s *Selector[T]) ShowsAllOption() bool { return s.showAllOption }

// Len returns the number of accumulated items.
func (s *Selector[T]) Len() int { return len(s.items) }
