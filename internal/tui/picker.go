package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"moneytrack/internal/domain"
)

// categoryPicker is the modal for reassigning one movement's category.
type categoryPicker struct {
	movement   domain.Movement
	categories []domain.Category
	filtered   []domain.Category
	query      string
	cursor     int
}

func newCategoryPicker(m domain.Movement, categories []domain.Category) *categoryPicker {
	p := &categoryPicker{
		movement:   m,
		categories: append([]domain.Category(nil), categories...),
	}
	p.rebuild()
	return p
}

func (p *categoryPicker) setQuery(q string) {
	p.query = q
	p.rebuild()
}

// rebuild ranks categories against the query: exact and substring hits
// first, then by edit distance, name as the tiebreak. An empty query
// keeps the server order.
func (p *categoryPicker) rebuild() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	out := append([]domain.Category(nil), p.categories...)
	if q != "" {
		rank := func(c domain.Category) (int, int) {
			name := strings.ToLower(c.Name)
			tier := 2
			switch {
			case name == q:
				tier = 0
			case strings.Contains(name, q):
				tier = 1
			}
			return tier, levenshtein.ComputeDistance(q, name)
		}
		sort.SliceStable(out, func(i, j int) bool {
			ti, di := rank(out[i])
			tj, dj := rank(out[j])
			if ti != tj {
				return ti < tj
			}
			if di != dj {
				return di < dj
			}
			return out[i].Name < out[j].Name
		})
	}
	p.filtered = out
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}

func (a *App) openCategoryPicker(m domain.Movement) {
	a.categoryPicker = newCategoryPicker(m, a.overview.Categories)
	a.modal = modalCategoryPicker
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalCategoryPicker:
		return a.handleCategoryPickerKey(m)
	case modalAccountPicker:
		return a.handleAccountPickerKey(m)
	}
	return a, nil
}

func (a *App) handleCategoryPickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.categoryPicker
	if p == nil {
		a.modal = modalNone
		return a, nil
	}
	switch m.String() {
	case "esc":
		a.modal = modalNone
		a.categoryPicker = nil
	case "up", "ctrl+k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "ctrl+j":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
	case "enter":
		if p.cursor < len(p.filtered) {
			chosen := p.filtered[p.cursor]
			movementID := p.movement.ID
			a.modal = modalNone
			a.categoryPicker = nil
			a.status = "assigning category..."
			return a, a.assignCategoryCmd(movementID, chosen.ID)
		}
	case "backspace":
		if len(p.query) > 0 {
			p.setQuery(p.query[:len(p.query)-1])
		}
	default:
		if key := m.String(); len(key) == 1 && key[0] >= 32 && key[0] < 127 {
			p.setQuery(p.query + key)
		}
	}
	return a, nil
}

// handleAccountPickerKey drives the browser's account filter. Row 0 is
// the "All accounts" wildcard; choosing anything clears the browser and
// starts the fetch cycle over at page 1.
func (a *App) handleAccountPickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.accountPicker.Items()
	switch m.String() {
	case "esc":
		a.modal = modalNone
	case "up", "k":
		if a.pickerCursor > 0 {
			a.pickerCursor--
		}
	case "down", "j":
		if a.pickerCursor < len(rows) {
			a.pickerCursor++
		}
	case "enter":
		if a.pickerCursor == 0 {
			a.accountPicker.OnSelectAllRequested()
		} else if a.pickerCursor-1 < len(rows) {
			a.accountPicker.OnItemSelected(rows[a.pickerCursor-1])
		} else {
			return a, nil
		}
		a.modal = modalNone
		a.browser.Reset()
		a.browserCursor = 0
		a.browser.BeginLoad()
		return a, a.loadBrowserPage(a.browser.NextPage())
	}
	return a, nil
}
