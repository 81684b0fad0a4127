package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordID identifies a record by its position in the dataset it was
// loaded into. IDs are stable for the lifetime of the dataset.
type RecordID int

// Record is one ledger transaction line. Records are owned by the loading
// collaborator and referenced, never copied, by the sampling core.
type Record struct {
	Voucher     string
	Account     int
	Amount      decimal.NullDecimal // invalid when the source cell was blank or unparsable
	Date        time.Time
	Text        string
	Counterpart string
}

// Columns holds the names of the source columns each record field was
// mapped from. An empty name means the field is absent from the source.
type Columns struct {
	Voucher     string
	Account     string
	Amount      string
	Date        string
	Text        string
	Counterpart string
}

// Dataset is an ordered, immutable set of ledger records together with the
// column mapping it was built from.
type Dataset struct {
	Columns Columns
	Records []Record
}

// HasAmount reports whether the amount column was present in the source.
func (d *Dataset) HasAmount() bool {
	return d.Columns.Amount != ""
}

// AccountUniverse returns the distinct account codes present in the
// dataset, in first-seen order.
func (d *Dataset) AccountUniverse() []int {
	seen := make(map[int]struct{}, len(d.Records))
	var out []int
	for i := range d.Records {
		code := d.Records[i].Account
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
