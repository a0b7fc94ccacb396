package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"moneytrack/internal/domain"
	"moneytrack/internal/feed"
	"moneytrack/internal/service"
)

// importForm is the CSV upload screen's working state.
type importForm struct {
	path        string
	typeIdx     int
	skipParsing bool
	skipExist   bool
	removeText  string
	focus       int
}

const (
	importFieldPath = iota
	importFieldType
	importFieldSkipParsing
	importFieldSkipExisting
	importFieldRemoveText
	importFieldSubmit
	importFieldCount
)

func newImportForm() importForm {
	return importForm{}
}

func (f *importForm) fileType() domain.ImportFileType {
	types := domain.ImportFileTypes()
	return types[f.typeIdx%len(types)]
}

func (a *App) handleImportKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.importForm
	switch m.String() {
	case "esc":
		a.state = viewAccounts
	case "tab", "down":
		f.focus = (f.focus + 1) % importFieldCount
	case "shift+tab", "up":
		f.focus = (f.focus + importFieldCount - 1) % importFieldCount
	case " ", "space":
		switch f.focus {
		case importFieldType:
			f.typeIdx = (f.typeIdx + 1) % len(domain.ImportFileTypes())
		case importFieldSkipParsing:
			f.skipParsing = !f.skipParsing
		case importFieldSkipExisting:
			f.skipExist = !f.skipExist
		}
	case "backspace":
		switch f.focus {
		case importFieldPath:
			f.path = chop(f.path)
		case importFieldRemoveText:
			f.removeText = chop(f.removeText)
		}
	case "enter":
		if f.focus != importFieldSubmit {
			f.focus = (f.focus + 1) % importFieldCount
			return a, nil
		}
		if a.acctFocused == nil || f.path == "" {
			a.status = "pick a file path first"
			return a, nil
		}
		a.status = "uploading..."
		return a, a.importCmd(*a.acctFocused, *f)
	default:
		if key := m.String(); len(key) == 1 && key[0] >= 32 && key[0] < 127 {
			switch f.focus {
			case importFieldPath:
				f.path += key
			case importFieldRemoveText:
				f.removeText += key
			}
		}
	}
	return a, nil
}

func (a *App) importCmd(acct domain.Account, f importForm) tea.Cmd {
	return func() tea.Msg {
		page, err := a.services.Importer.ImportFile(a.ctx, acct.ID, f.path, service.ImportOptions{
			FileType:          f.fileType(),
			SkipParsingErrors: f.skipParsing,
			SkipExisting:      f.skipExist,
			RemoveText:        f.removeText,
		})
		if err != nil {
			return errMsg{err}
		}
		return importDoneMsg(page)
	}
}

// adjustForm is the balance adjustment screen's working state.
type adjustForm struct {
	account domain.Account
	date    string
	desc    string
	note    string
	balance string
	focus   int
}

const (
	adjustFieldDate = iota
	adjustFieldDesc
	adjustFieldNote
	adjustFieldBalance
	adjustFieldSubmit
	adjustFieldCount
)

func newAdjustForm(acct domain.Account, labeler feed.DateLabeler) adjustForm {
	return adjustForm{
		account: acct,
		date:    labeler.Day(time.Now()).Format("2006-01-02"),
		balance: acct.Balance.Value.String(),
	}
}

func (a *App) handleAdjustKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.adjustForm
	switch m.String() {
	case "esc":
		a.state = viewAccounts
	case "tab", "down":
		f.focus = (f.focus + 1) % adjustFieldCount
	case "shift+tab", "up":
		f.focus = (f.focus + adjustFieldCount - 1) % adjustFieldCount
	case "backspace":
		switch f.focus {
		case adjustFieldDate:
			f.date = chop(f.date)
		case adjustFieldDesc:
			f.desc = chop(f.desc)
		case adjustFieldNote:
			f.note = chop(f.note)
		case adjustFieldBalance:
			f.balance = chop(f.balance)
		}
	case "enter":
		if f.focus != adjustFieldSubmit {
			f.focus = (f.focus + 1) % adjustFieldCount
			return a, nil
		}
		date, err := time.ParseInLocation("2006-01-02", f.date, time.UTC)
		if err != nil {
			a.status = "date must be YYYY-MM-DD"
			return a, nil
		}
		value, err := decimal.NewFromString(f.balance)
		if err != nil {
			a.status = "balance must be a decimal amount"
			return a, nil
		}
		a.status = "saving..."
		balance := domain.Money{Value: value, Currency: f.account.Currency}
		return a, a.adjustCmd(f.account, date, f.desc, f.note, balance)
	default:
		if key := m.String(); len(key) == 1 && key[0] >= 32 && key[0] < 127 {
			switch f.focus {
			case adjustFieldDate:
				f.date += key
			case adjustFieldDesc:
				f.desc += key
			case adjustFieldNote:
				f.note += key
			case adjustFieldBalance:
				f.balance += key
			}
		}
	}
	return a, nil
}

func (a *App) adjustCmd(acct domain.Account, date time.Time, desc, note string, balance domain.Money) tea.Cmd {
	return func() tea.Msg {
		m, err := a.services.Adjuster.Adjust(a.ctx, acct.ID, date, desc, note, balance)
		if err != nil {
			return errMsg{err}
		}
		return adjustDoneMsg(m)
	}
}

func chop(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}
