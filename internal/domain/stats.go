package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryPeriod selects the window for balance history queries.
type HistoryPeriod string

const (
	PeriodWeek  HistoryPeriod = "week"
	PeriodMonth HistoryPeriod = "month"
	PeriodYear  HistoryPeriod = "year"
)

// MovementsByCategories is one node of the per-category spending tree.
type MovementsByCategories struct {
	Category      Category                `json:"category"`
	CurrencyValue Money                   `json:"currencyValue"`
	Count         int                     `json:"count"`
	Children      []MovementsByCategories `json:"children"`
}

// StatsResult is one period's spending summary for an account.
type StatsResult struct {
	PeriodText            string                  `json:"periodText"`
	Balance               Money                   `json:"balance"`
	Count                 int                     `json:"count"`
	MovementsByCategories []MovementsByCategories `json:"movementsByCategories"`
}

// BalanceAtDate is one point of a balance history series. The service
// sends the date as a plain "2006-01-02" string.
type BalanceAtDate struct {
	Date    string `json:"date"`
	Balance Money  `json:"balance"`
}

// Day parses the date string in the fixed UTC calendar.
func (b BalanceAtDate) Day() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", b.Date, time.UTC)
}

// AccountBalanceHistory is one named series of the global stats chart.
type AccountBalanceHistory struct {
	Key      string          `json:"key"`
	Balances []BalanceAtDate `json:"balances"`
}

// GrowthType distinguishes how a growth figure is expressed.
type GrowthType string

const (
	GrowthPercentage GrowthType = "percentage"
	GrowthAmount     GrowthType = "amount"
)

// Growth is the balance delta over a history window, either an absolute
// amount or a percentage depending on Type.
type Growth struct {
	Value decimal.Decimal `json:"value"`
	Type  GrowthType      `json:"type"`
}

// HistoryQueryData is the balance-history half of an account details
// response.
type HistoryQueryData struct {
	Items   []BalanceAtDate `json:"items"`
	Min     Money           `json:"min"`
	Max     Money           `json:"max"`
	Balance Money           `json:"balance"`
	Growth  Growth          `json:"growth"`
	Period  HistoryPeriod   `json:"period"`
}

// AccountDetails is the combined details payload: the account snapshot,
// its balance history and the first movements page.
type AccountDetails struct {
	Account   Account          `json:"account"`
	History   HistoryQueryData `json:"history"`
	Movements Page[Movement]   `json:"movements"`
}
