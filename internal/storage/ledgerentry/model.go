package ledgerentry

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Entry represents one ledger entry record.
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

// EntryCreate is the input for creating a new ledger entry.
type EntryCreate struct {
	Voucher     string
	Account     int
	Amount      decimal.NullDecimal
	EntryDate   time.Time
	EntryText   string
	Counterpart string
	LineNo      int
}

// EntryFilter specifies filters for listing ledger entries.
type EntryFilter struct {
	Limit  int
	Offset int
}

// EntryCursor identifies a position in a paginated result set.
type EntryCursor struct {
	Position int
	Limit    int
}

// EntryListResult contains a page of entries and an optional next cursor.
type EntryListResult struct {
	Entries    []*Entry
	NextCursor *EntryCursor
}

// IEntriesTable defines the interface for ledger entry storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IEntriesTable interface {
	List(ctx context.Context, filter *EntryFilter) (*EntryListResult, error)
	ListAll(ctx context.Context) ([]*Entry, error)
	Count(ctx context.Context) (int64, error)
}

type entryRow struct {
	ID          uuid.UUID           `db:"id"`
	VoucherNo   string              `db:"voucher_no"`
	AccountNo   int                 `db:"account_no"`
	Amount      decimal.NullDecimal `db:"amount"`
	EntryDate   sql.NullTime        `db:"entry_date"`
	EntryText   string              `db:"entry_text"`
	Counterpart string              `db:"counterpart"`
	LineNo      int                 `db:"line_no"`
	CreatedAt   time.Time           `db:"created_at"`
}

func rowToEntry(row *entryRow) *Entry {
	return &Entry{
		ID:          row.ID,
		Voucher:     row.VoucherNo,
		Account:     row.AccountNo,
		Amount:      row.Amount,
		EntryDate:   row.EntryDate.Time,
		EntryText:   row.EntryText,
		Counterpart: row.Counterpart,
		LineNo:      row.LineNo,
		CreatedAt:   row.CreatedAt,
	}
}
