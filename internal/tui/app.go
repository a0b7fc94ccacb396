package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"moneytrack/internal/config"
	"moneytrack/internal/domain"
	"moneytrack/internal/feed"
	"moneytrack/internal/log"
	"moneytrack/internal/repository"
	"moneytrack/internal/service"
)

// App ties together views.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	services Services
	logger   *log.Logger
	labeler  feed.DateLabeler

	state appState
	modal modalState

	overview    service.OverviewData
	acctCursor  int
	acctFocused *domain.Account

	movements  *feed.MovementFeed
	feedCursor int

	// browser is the all-accounts movement picker, scoped through
	// accountPicker's selection (empty selection = every account).
	browser        *feed.Selector[domain.Movement]
	browserCursor  int
	accountPicker  *feed.Selector[domain.Account]
	pickerCursor   int
	categoryPicker *categoryPicker

	importForm importForm
	adjustForm adjustForm

	stats []domain.AccountBalanceHistory

	status string
	width  int
	height int
}

// Repos are the outbound ports the screens fetch through.
type Repos struct {
	Accounts   repository.Accounts
	Movements  repository.Movements
	Groups     repository.Groups
	Categories repository.Categories
}

// Services are the workflows behind mutating keys.
type Services struct {
	Assigner *service.Assigner
	Importer *service.Importer
	Adjuster *service.BalanceAdjuster
	Overview *service.Overview
}

type appState string

const (
	viewAccounts  appState = "accounts"
	viewMovements appState = "movements"
	viewBrowser   appState = "browser"
	viewImport    appState = "import"
	viewAdjust    appState = "adjust"
	viewStats     appState = "stats"
)

type modalState string

const (
	modalNone           modalState = ""
	modalCategoryPicker modalState = "categoryPicker"
	modalAccountPicker  modalState = "accountPicker"
)

// New builds the app model.
func New(ctx context.Context, cfg config.Config, repos Repos, services Services, logger *log.Logger) *App {
	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		loc = time.UTC
	}
	labeler := feed.NewDateLabelerIn(cfg.UI.DateFormat, loc)
	return &App{
		ctx:           ctx,
		cfg:           cfg,
		repos:         repos,
		services:      services,
		logger:        logger.WithComponent("tui"),
		labeler:       labeler,
		state:         viewAccounts,
		browser:       feed.NewSelector[domain.Movement](false, false),
		accountPicker: feed.NewSelector[domain.Account](false, true),
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadOverview()
}

// messages

type overviewMsg service.OverviewData

type feedPageMsg domain.Page[domain.Movement]

type browserPageMsg domain.Page[domain.Movement]

type pickerAccountsMsg []domain.Account

type movementUpdatedMsg domain.Movement

type adjustDoneMsg domain.Movement

type importDoneMsg domain.Page[domain.Movement]

type statsMsg []domain.AccountBalanceHistory

type statusMsg string

type errMsg struct{ err error }

// commands

func (a *App) loadOverview() tea.Cmd {
	return func() tea.Msg {
		data, err := a.services.Overview.Load(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return overviewMsg(data)
	}
}

func (a *App) loadFeedPage(accountID domain.Account, page int) tea.Cmd {
	return func() tea.Msg {
		p, err := a.repos.Movements.FetchMovementsByAccount(a.ctx, accountID.ID, page)
		if err != nil {
			return errMsg{err}
		}
		return feedPageMsg(p)
	}
}

func (a *App) loadBrowserPage(page int) tea.Cmd {
	scope := a.accountPicker.Selected()
	return func() tea.Msg {
		var (
			p   domain.Page[domain.Movement]
			err error
		)
		if len(scope) > 0 {
			p, err = a.repos.Movements.FetchMovementsByAccount(a.ctx, scope[0].ID, page)
		} else {
			p, err = a.repos.Movements.FetchMovements(a.ctx, page)
		}
		if err != nil {
			return errMsg{err}
		}
		return browserPageMsg(p)
	}
}

func (a *App) loadPickerAccounts() tea.Cmd {
	return func() tea.Msg {
		accounts, err := a.repos.Accounts.FetchAccounts(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return pickerAccountsMsg(accounts)
	}
}

func (a *App) assignCategoryCmd(movementID, categoryID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		updated, err := a.services.Assigner.SetCategory(a.ctx, movementID, categoryID)
		if err != nil {
			return errMsg{err}
		}
		return movementUpdatedMsg(updated)
	}
}

func (a *App) loadStats() tea.Cmd {
	return func() tea.Msg {
		data, err := a.repos.Accounts.Stats(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return statsMsg(data)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height

	case tea.KeyMsg:
		return a.handleKey(m)

	case overviewMsg:
		a.overview = service.OverviewData(m)
		if a.acctCursor >= len(a.overview.Accounts) {
			a.acctCursor = 0
		}
		a.status = ""

	case feedPageMsg:
		if a.movements != nil {
			a.movements.OnPageLoaded(domain.Page[domain.Movement](m))
		}

	case browserPageMsg:
		a.browser.OnPageFetched(domain.Page[domain.Movement](m))

	case pickerAccountsMsg:
		a.accountPicker.OnDataLoaded([]domain.Account(m))
		if a.pickerCursor > len(m) {
			a.pickerCursor = 0
		}

	case movementUpdatedMsg:
		if a.movements != nil {
			a.movements.Replace(domain.Movement(m))
		}
		a.status = "category updated"

	case adjustDoneMsg:
		a.status = "balance adjusted"
		a.state = viewAccounts
		return a, a.loadOverview()

	case importDoneMsg:
		page := domain.Page[domain.Movement](m)
		a.status = statusForImport(page.Metadata.Total)
		a.state = viewAccounts
		return a, a.loadOverview()

	case statsMsg:
		a.stats = []domain.AccountBalanceHistory(m)

	case statusMsg:
		a.status = string(m)

	case errMsg:
		if a.state == viewMovements && a.movements != nil {
			a.movements.Fail(m.err.Error())
		}
		a.logger.Error("action failed", "err", m.err)
		a.status = "error: " + m.err.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	switch a.state {
	case viewImport:
		return a.handleImportKey(m)
	case viewAdjust:
		return a.handleAdjustKey(m)
	}

	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "a", "esc":
		a.state = viewAccounts
		a.status = ""

	case "m":
		a.state = viewBrowser
		if a.browser.Len() == 0 && !a.browser.Loading() {
			a.browser.BeginLoad()
			return a, a.loadBrowserPage(a.browser.NextPage())
		}

	case "s":
		a.state = viewStats
		return a, a.loadStats()

	case "r":
		return a.refreshCurrent()

	case "up", "k":
		a.moveCursor(-1)

	case "down", "j":
		return a.cursorDown()

	case "enter":
		if a.state == viewAccounts && len(a.overview.Accounts) > 0 {
			acct := a.overview.Accounts[a.acctCursor]
			return a.openMovements(acct)
		}
		if a.state == viewBrowser {
			if cur, ok := a.cursorMovement(); ok {
				a.browser.OnItemSelected(cur)
			}
		}

	case "c":
		if a.state == viewMovements {
			if cur, ok := a.cursorMovement(); ok {
				a.openCategoryPicker(cur)
			}
		}

	case "f":
		if a.state == viewBrowser {
			a.modal = modalAccountPicker
			a.pickerCursor = 0
			a.accountPicker.BeginLoad()
			return a, a.loadPickerAccounts()
		}

	case "i":
		if a.state == viewAccounts && len(a.overview.Accounts) > 0 {
			acct := a.overview.Accounts[a.acctCursor]
			a.acctFocused = &acct
			a.importForm = newImportForm()
			a.state = viewImport
		}

	case "b":
		if a.state == viewAccounts && len(a.overview.Accounts) > 0 {
			acct := a.overview.Accounts[a.acctCursor]
			a.acctFocused = &acct
			a.adjustForm = newAdjustForm(acct, a.labeler)
			a.state = viewAdjust
		}
	}
	return a, nil
}

func (a *App) refreshCurrent() (tea.Model, tea.Cmd) {
	switch a.state {
	case viewAccounts:
		a.status = "refreshing..."
		return a, a.loadOverview()
	case viewMovements:
		if a.movements != nil && a.acctFocused != nil {
			a.movements = feed.NewMovementFeed(a.acctFocused, a.labeler)
			a.feedCursor = 0
			a.movements.Begin()
			return a, a.loadFeedPage(*a.acctFocused, 1)
		}
	case viewBrowser:
		a.browser.Reset()
		a.browserCursor = 0
		a.browser.BeginLoad()
		return a, a.loadBrowserPage(a.browser.NextPage())
	case viewStats:
		return a, a.loadStats()
	}
	return a, nil
}

func (a *App) openMovements(acct domain.Account) (tea.Model, tea.Cmd) {
	a.acctFocused = &acct
	a.movements = feed.NewMovementFeed(&acct, a.labeler)
	a.feedCursor = 0
	a.state = viewMovements
	a.movements.Begin()
	return a, a.loadFeedPage(acct, 1)
}

func (a *App) moveCursor(delta int) {
	switch a.state {
	case viewAccounts:
		a.acctCursor = clamp(a.acctCursor+delta, len(a.overview.Accounts))
	case viewMovements:
		if a.movements != nil {
			a.feedCursor = clamp(a.feedCursor+delta, a.movements.Len())
		}
	case viewBrowser:
		a.browserCursor = clamp(a.browserCursor+delta, a.browser.Len())
	}
}

// cursorDown also drives pagination: stepping past the last loaded row
// requests the next page, but never while a fetch is already in flight.
func (a *App) cursorDown() (tea.Model, tea.Cmd) {
	switch a.state {
	case viewMovements:
		if a.movements == nil {
			return a, nil
		}
		if a.feedCursor < a.movements.Len()-1 {
			a.feedCursor++
			return a, nil
		}
		if a.movements.HasMoreData() && a.movements.State() != feed.StateLoading && a.acctFocused != nil {
			a.movements.Begin()
			page := a.movements.OnBottomReached()
			return a, a.loadFeedPage(*a.acctFocused, page)
		}
	case viewBrowser:
		if a.browserCursor < a.browser.Len()-1 {
			a.browserCursor++
			return a, nil
		}
		if a.browser.HasMorePages() && !a.browser.Loading() {
			a.browser.BeginLoad()
			return a, a.loadBrowserPage(a.browser.NextPage())
		}
	default:
		a.moveCursor(1)
	}
	return a, nil
}

func (a *App) cursorMovement() (domain.Movement, bool) {
	switch a.state {
	case viewMovements:
		if a.movements == nil {
			return domain.Movement{}, false
		}
		entries := a.movements.Entries()
		if a.feedCursor >= len(entries) {
			return domain.Movement{}, false
		}
		return entries[a.feedCursor].Movement, true
	case viewBrowser:
		items := a.browser.Items()
		if a.browserCursor >= len(items) {
			return domain.Movement{}, false
		}
		return items[a.browserCursor], true
	}
	return domain.Movement{}, false
}

func statusForImport(total int) string {
	if total == 1 {
		return "imported 1 movement"
	}
	return "imported " + strconv.Itoa(total) + " movements"
}

func clamp(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
