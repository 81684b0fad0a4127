package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Entry represents a ledger entry in the service layer.
type Entry struct {
	ID          uuid.UUID
	Voucher     string
	Account     int
	Amount      decimal.NullDecimal
	EntryDate   time.Time
	EntryText   string
	Counterpart string
	LineNo      int
	CreatedAt   time.Time
}

// EntryCursor identifies a position in a paginated result set.
type EntryCursor struct {
	Position int
	Limit    int
}
