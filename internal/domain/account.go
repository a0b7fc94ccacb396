package domain

import (
	"sort"

	"github.com/google/uuid"
)

// AccountGroup is a user-defined bucket accounts are organized under.
// Order is the manual display position, lowest first.
type AccountGroup struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Order       int       `json:"order"`
}

func (g AccountGroup) Identity() uuid.UUID { return g.ID }

// AccountGroupBody is the write shape for creating or updating a group.
type AccountGroupBody struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Order       int     `json:"order"`
}

// Account is an immutable snapshot fetched from the server. Local code
// never mutates one; changes arrive as fresh snapshots.
type Account struct {
	ID          uuid.UUID    `json:"id"`
	Group       AccountGroup `json:"group"`
	Currency    Currency     `json:"currency"`
	Symbol      *string      `json:"symbol,omitempty"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Balance     Money        `json:"balance"`
}

func (a Account) Identity() uuid.UUID { return a.ID }

// AccountBody is the write shape for creating an account.
type AccountBody struct {
	GroupID     uuid.UUID `json:"groupId" validate:"required"`
	Currency    Currency  `json:"currency" validate:"required,oneof=USD EUR GBP CHF"`
	Symbol      *string   `json:"symbol,omitempty"`
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description,omitempty"`
}

// OrderedGroups sorts groups by their manual order, ascending.
func OrderedGroups(groups []AccountGroup) []AccountGroup {
	out := append([]AccountGroup(nil), groups...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// OrderedAccounts sorts accounts for the full listing: group order
// ascending, then balance descending when group order ties.
func OrderedAccounts(accounts []Account) []Account {
	out := append([]Account(nil), accounts...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Group.Order == out[j].Group.Order {
			return out[i].Balance.Value.GreaterThan(out[j].Balance.Value)
		}
		return out[i].Group.Order < out[j].Group.Order
	})
	return out
}
