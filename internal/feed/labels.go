package feed

import "time"

// DateLabeler formats day section labels. The calendar is pinned at
// construction so labels never depend on the machine's local timezone.
type DateLabeler struct {
	layout string
	loc    *time.Location
}

// NewDateLabeler returns the service's fixed Gregorian/UTC labeler,
// rendering days like "9 Jun 2024".
func NewDateLabeler() DateLabeler {
	return DateLabeler{layout: "2 Jan 2006", loc: time.UTC}
}

// NewDateLabelerIn pins the labeler to a specific layout and location.
func NewDateLabelerIn(layout string, loc *time.Location) DateLabeler {
	if layout == "" {
		layout = "2 Jan 2006"
	}
	if loc == nil {
		loc = time.UTC
	}
	return DateLabeler{layout: layout, loc: loc}
}

// Label renders the calendar day of t.
func (l DateLabeler) Label(t time.Time) string {
	return t.In(l.loc).Format(l.layout)
}

// Day truncates t to its calendar day in the pinned location.
func (l DateLabeler) Day(t time.Time) time.Time {
	local := t.In(l.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, l.loc)
}

// EarlierDay reports whether a falls on a strictly earlier calendar day
// than b.
func (l DateLabeler) EarlierDay(a, b time.Time) bool {
	return l.Day(a).Before(l.Day(b))
}
