package sampling

import (
	"sort"
	"time"

	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/shopspring/decimal"
)

// AccountTotal is one row of the per-account pivot.
type AccountTotal struct {
	Account int
	Count   int
	Sum     decimal.Decimal
	SumAbs  decimal.Decimal
}

// Outputs holds the four result tables for one sub-population. Pure
// in-memory assembly; persistence and rendering belong to the caller.
type Outputs struct {
	Name    string
	Members []ledger.RecordID
	Pivot   []AccountTotal
	Strata  *Strata
	Draw    *DrawResult

	ds *ledger.Dataset
}

// buildOutputs combines the pipeline stages into the final result set.
func buildOutputs(ds *ledger.Dataset, name string, members []ledger.RecordID, strata *Strata, drawResult *DrawResult) *Outputs {
	return &Outputs{
		Name:    name,
		Members: members,
		Pivot:   buildPivot(ds, members),
		Strata:  strata,
		Draw:    drawResult,
		ds:      ds,
	}
}

func buildPivot(ds *ledger.Dataset, members []ledger.RecordID) []AccountTotal {
	byAccount := make(map[int]*AccountTotal)
	for _, id := range members {
		rec := &ds.Records[id]
		total, ok := byAccount[rec.Account]
		if !ok {
			total = &AccountTotal{Account: rec.Account}
			byAccount[rec.Account] = total
		}
		total.Count++
		if rec.Amount.Valid {
			total.Sum = total.Sum.Add(rec.Amount.Decimal)
			total.SumAbs = total.SumAbs.Add(rec.Amount.Decimal.Abs())
		}
	}

	out := make([]AccountTotal, 0, len(byAccount))
	for _, total := range byAccount {
		out = append(out, *total)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Account < out[b].Account })
	return out
}

// Shortfall reports whether any stratum draw came up short.
func (o *Outputs) Shortfall() bool {
	return o.Draw != nil && o.Draw.Shortfall()
}

// Tables renders the four named tables: <name>_Trans, <name>_Pivot,
// <name>_Strata and <name>_Trekk. Stratum numbering is 1-based in table
// output; the unassignable bucket appears as a labeled Strata row when
// non-empty.
func (o *Outputs) Tables() []*ledger.Table {
	return []*ledger.Table{
		o.transTable(),
		o.pivotTable(),
		o.strataTable(),
		o.drawTable(),
	}
}

var recordColumns = []string{"Voucher", "Account", "Amount", "Date", "Text", "Counterpart"}

func (o *Outputs) transTable() *ledger.Table {
	t := ledger.NewTable(o.Name+"_Trans", recordColumns...)
	for _, id := range o.Members {
		t.Append(recordCells(&o.ds.Records[id])...)
	}
	return t
}

func (o *Outputs) pivotTable() *ledger.Table {
	t := ledger.NewTable(o.Name+"_Pivot", "Account", "Lines", "Sum", "Sum (abs)")
	for _, row := range o.Pivot {
		t.Append(row.Account, row.Count, row.Sum, row.SumAbs)
	}
	return t
}

func (o *Outputs) strataTable() *ledger.Table {
	t := ledger.NewTable(o.Name+"_Strata", "Stratum", "From", "To", "Lines", "Sum", "Sum (abs)")
	if o.Strata == nil {
		return t
	}
	for i := range o.Strata.Strata {
		s := &o.Strata.Strata[i]
		t.Append(s.Index+1, s.Low, s.High, s.Count(), s.Sum, s.SumAbs)
	}
	if len(o.Strata.Unassignable) > 0 {
		sum, sumAbs := decimal.Zero, decimal.Zero
		for _, id := range o.Strata.Unassignable {
			if a := o.ds.Records[id].Amount; a.Valid {
				sum = sum.Add(a.Decimal)
				sumAbs = sumAbs.Add(a.Decimal.Abs())
			}
		}
		t.Append("unassignable", nil, nil, len(o.Strata.Unassignable), sum, sumAbs)
	}
	return t
}

func (o *Outputs) drawTable() *ledger.Table {
	columns := append([]string{"Stratum"}, recordColumns...)
	columns = append(columns, "Shortfall")
	t := ledger.NewTable(o.Name+"_Trekk", columns...)
	if o.Draw == nil {
		return t
	}
	for i := range o.Draw.Strata {
		sd := &o.Draw.Strata[i]
		for _, id := range sd.Selected {
			cells := append([]any{sd.StratumIndex + 1}, recordCells(&o.ds.Records[id])...)
			cells = append(cells, sd.Shortfall)
			t.Append(cells...)
		}
	}
	return t
}

func recordCells(rec *ledger.Record) []any {
	var amount any
	if rec.Amount.Valid {
		amount = rec.Amount.Decimal
	}
	var date any = ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format(time.DateOnly)
	}
	return []any{rec.Voucher, rec.Account, amount, date, rec.Text, rec.Counterpart}
}
