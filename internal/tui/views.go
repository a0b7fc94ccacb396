package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moneytrack/internal/domain"
	"moneytrack/internal/feed"
)

// styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewAccounts:
		body = a.renderAccounts()
	case viewMovements:
		body = a.renderMovements()
	case viewBrowser:
		body = a.renderBrowser()
	case viewImport:
		body = a.renderImport()
	case viewAdjust:
		body = a.renderAdjust()
	case viewStats:
		body = a.renderStats()
	}
	switch a.modal {
	case modalCategoryPicker:
		body += "\n\n" + a.renderCategoryPicker()
	case modalAccountPicker:
		body += "\n\n" + a.renderAccountPicker()
	}
	if a.status != "" {
		body += "\n" + a.status
	}
	return body
}

func (a *App) renderAccounts() string {
	title := titleStyle.Render("Accounts")
	if len(a.overview.Accounts) == 0 {
		return fmt.Sprintf("%s\n(no accounts yet)\n[m] All movements  [s] Stats  [r] Refresh  [q] Quit", title)
	}
	out := title + "\n"
	lastGroup := ""
	for i, acct := range a.overview.Accounts {
		if acct.Group.Name != lastGroup {
			out += labelStyle.Render(acct.Group.Name) + "\n"
			lastGroup = acct.Group.Name
		}
		marker := " "
		if i == a.acctCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-28s %12s\n", marker, acct.Name, acct.Balance.String())
	}
	out += "[enter] Movements  [m] All movements  [s] Stats  [i] Import CSV  [b] Adjust balance  [r] Refresh  [q] Quit"
	return out
}

func (a *App) renderMovements() string {
	name := "Movements"
	if a.acctFocused != nil {
		name = a.acctFocused.Name
	}
	title := titleStyle.Render(name)
	if a.movements == nil {
		return title
	}
	out := title + "\n"
	for i, e := range a.movements.Entries() {
		if e.DateLabel != "" {
			out += dimStyle.Render(e.DateLabel) + "\n"
		}
		marker := " "
		if i == a.feedCursor {
			marker = "▶"
		}
		out += movementRow(marker, e.Movement)
	}
	switch a.movements.State() {
	case feed.StateLoading:
		out += dimStyle.Render("loading...") + "\n"
	case feed.StateError:
		out += "load failed: " + a.movements.ErrorMessage() + "\n"
	default:
		if !a.movements.HasMoreData() && a.movements.Len() > 0 {
			out += dimStyle.Render(fmt.Sprintf("%d of %d", a.movements.Len(), a.movements.TotalRecords())) + "\n"
		}
	}
	out += "[c] Set category  [r] Reload  [esc] Accounts  [q] Quit"
	return out
}

func (a *App) renderBrowser() string {
	title := titleStyle.Render("All Movements")
	scope := "All accounts"
	if sel := a.accountPicker.Selected(); len(sel) > 0 {
		scope = sel[0].Name
	}
	out := fmt.Sprintf("%s\nScope: %s\n", title, scope)
	for i, m := range a.browser.Items() {
		marker := " "
		if i == a.browserCursor {
			marker = "▶"
		}
		check := " "
		if a.browser.IsSelected(m.ID) {
			check = "✓"
		}
		out += movementRow(marker+check, m)
	}
	if a.browser.Loading() {
		out += dimStyle.Render("loading...") + "\n"
	}
	out += "[enter] Select  [f] Filter account  [r] Reload  [esc] Accounts  [q] Quit"
	return out
}

func movementRow(marker string, m domain.Movement) string {
	return fmt.Sprintf("%s %-36s %12s  %s\n", marker, trim(m.Description, 36), m.Amount.String(), m.Category.Name)
}

func (a *App) renderImport() string {
	acct := ""
	if a.acctFocused != nil {
		acct = " - " + a.acctFocused.Name
	}
	title := titleStyle.Render("Import CSV" + acct)
	f := a.importForm
	rows := []string{
		formRow(f.focus == importFieldPath, "File path", f.path),
		formRow(f.focus == importFieldType, "Format", string(f.fileType())+"  (space cycles)"),
		formRow(f.focus == importFieldSkipParsing, "Skip parsing errors", checkbox(f.skipParsing)),
		formRow(f.focus == importFieldSkipExisting, "Skip existing", checkbox(f.skipExist)),
		formRow(f.focus == importFieldRemoveText, "Remove text", f.removeText),
		formRow(f.focus == importFieldSubmit, "Upload", ""),
	}
	return fmt.Sprintf("%s\n%s\n[tab] Next field  [enter] Confirm  [esc] Back", title, strings.Join(rows, "\n"))
}

func (a *App) renderAdjust() string {
	title := titleStyle.Render("Adjust Balance - " + a.adjustForm.account.Name)
	f := a.adjustForm
	rows := []string{
		formRow(f.focus == adjustFieldDate, "Date (YYYY-MM-DD)", f.date),
		formRow(f.focus == adjustFieldDesc, "Description", f.desc),
		formRow(f.focus == adjustFieldNote, "Note", f.note),
		formRow(f.focus == adjustFieldBalance, "New balance ("+string(f.account.Currency)+")", f.balance),
		formRow(f.focus == adjustFieldSubmit, "Save", ""),
	}
	return fmt.Sprintf("%s\n%s\n[tab] Next field  [enter] Confirm  [esc] Back", title, strings.Join(rows, "\n"))
}

func formRow(focused bool, label, value string) string {
	marker := " "
	if focused {
		marker = "▶"
	}
	return fmt.Sprintf("%s %-22s %s", marker, label+":", value)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (a *App) renderStats() string {
	title := titleStyle.Render("Balance History")
	if len(a.stats) == 0 {
		return fmt.Sprintf("%s\n(no data)\n[esc] Accounts  [q] Quit", title)
	}
	out := title + "\n"
	for _, series := range a.stats {
		out += labelStyle.Render(series.Key) + "\n"
		for _, b := range series.Balances {
			out += fmt.Sprintf("  %s  %12s\n", b.Date, b.Balance.String())
		}
	}
	out += "[r] Refresh  [esc] Accounts  [q] Quit"
	return out
}

func (a *App) renderCategoryPicker() string {
	p := a.categoryPicker
	if p == nil {
		return ""
	}
	out := titleStyle.Render("Set Category") + "\n"
	out += "Search: " + p.query + "\n"
	for i, c := range p.filtered {
		marker := " "
		if i == p.cursor {
			marker = "▶"
		}
		current := ""
		if c.ID == p.movement.Category.ID {
			current = "  (current)"
		}
		out += fmt.Sprintf("%s %s %s%s\n", marker, c.Icon, c.Name, current)
	}
	out += "[enter] Assign  [esc] Cancel"
	return out
}

func (a *App) renderAccountPicker() string {
	out := titleStyle.Render("Filter by Account") + "\n"
	marker := " "
	if a.pickerCursor == 0 {
		marker = "▶"
	}
	check := " "
	if a.accountPicker.AllSelected() {
		check = "✓"
	}
	out += fmt.Sprintf("%s%s All accounts\n", marker, check)
	for i, acct := range a.accountPicker.Items() {
		marker = " "
		if a.pickerCursor == i+1 {
			marker = "▶"
		}
		check = " "
		if a.accountPicker.IsSelected(acct.ID) {
			check = "✓"
		}
		out += fmt.Sprintf("%s%s %-28s %12s\n", marker, check, acct.Name, acct.Balance.String())
	}
	if a.accountPicker.Loading() {
		out += dimStyle.Render("loading...") + "\n"
	}
	out += "[enter] Apply  [esc] Cancel"
	return out
}

func trim(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
