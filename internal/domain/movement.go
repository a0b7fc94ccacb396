package domain

import (
	"time"

	"github.com/google/uuid"
)

// Movement is a single transaction line affecting an account's balance.
// Identity is the id alone: two movements with the same id are the same
// movement, whatever the rest of the snapshot says. That is what makes
// replace-on-refetch work in the feeds.
type Movement struct {
	ID             uuid.UUID `json:"id"`
	Account        Account   `json:"account"`
	Category       Category  `json:"category"`
	Amount         Money     `json:"amount"`
	Fees           Money     `json:"fees"`
	Balance        Money     `json:"balance"`
	Date           time.Time `json:"date"`
	CompletionDate time.Time `json:"completionDate"`
	Description    string    `json:"description"`
	Note           *string   `json:"note,omitempty"`
	ImportKey      string    `json:"importKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (m Movement) Identity() uuid.UUID { return m.ID }

// Same reports identity equality.
func (m Movement) Same(other Movement) bool { return m.ID == other.ID }

// ImportFileType selects the server-side CSV parser.
type ImportFileType string

const (
	ImportFileRevolut ImportFileType = "revolut"
	ImportFileZKB     ImportFileType = "zkb"
)

// ImportFileTypes lists the supported formats in display order.
func ImportFileTypes() []ImportFileType {
	return []ImportFileType{ImportFileRevolut, ImportFileZKB}
}

// MovementImport carries a CSV upload. Parsing happens server-side; the
// client only ships the raw bytes plus options.
type MovementImport struct {
	FileType          ImportFileType `validate:"required,oneof=revolut zkb"`
	Filename          string         `validate:"required"`
	Data              []byte         `validate:"required"`
	SkipParsingErrors bool
	SkipExisting      bool
	RemoveText        *string
}

// BalanceAdjustment asks the server to write a correcting movement so the
// account's balance at the given day equals Balance.
type BalanceAdjustment struct {
	Date        time.Time `validate:"required"`
	Description *string
	Note        *string
	Balance     Money
}
