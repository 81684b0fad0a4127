package sampling

import (
	"github.com/carson-networks/audit-sampler/internal/ledger"
)

// applyFilter narrows the dataset to the records matching the
// sub-population spec. The returned IDs preserve dataset order and the
// dataset itself is never modified.
//
// Records whose amount is missing cannot be classified by sign and cannot
// satisfy an amount bound, so they survive only under DirectionAll with
// both bounds open.
func applyFilter(ds *ledger.Dataset, spec *SubPopulationSpec) ([]ledger.RecordID, error) {
	if !ds.HasAmount() {
		return nil, &DataUnavailableError{Column: "amount"}
	}

	accounts, err := ledger.ParseAccountExpr(spec.Accounts, ds.AccountUniverse())
	if err != nil {
		return nil, &ConfigurationError{Field: "accounts", Reason: err.Error()}
	}

	var members []ledger.RecordID
	for i := range ds.Records {
		rec := &ds.Records[i]

		if accounts != nil && !accounts.Contains(rec.Account) {
			continue
		}
		if !matchesDirection(rec, spec.Direction) {
			continue
		}
		if !withinBounds(rec, spec) {
			continue
		}
		members = append(members, ledger.RecordID(i))
	}
	return members, nil
}

func matchesDirection(rec *ledger.Record, dir Direction) bool {
	if dir == DirectionAll {
		return true
	}
	if !rec.Amount.Valid {
		return false
	}
	switch dir {
	case DirectionDebit:
		return rec.Amount.Decimal.IsPositive()
	case DirectionCredit:
		return rec.Amount.Decimal.IsNegative()
	}
	return false
}

func withinBounds(rec *ledger.Record, spec *SubPopulationSpec) bool {
	if spec.MinAmount == nil && spec.MaxAmount == nil {
		return true
	}
	if !rec.Amount.Valid {
		return false
	}
	value := rec.Amount.Decimal
	if spec.AbsoluteBounds {
		value = value.Abs()
	}
	if spec.MinAmount != nil && value.LessThan(*spec.MinAmount) {
		return false
	}
	if spec.MaxAmount != nil && value.GreaterThan(*spec.MaxAmount) {
		return false
	}
	return true
}
