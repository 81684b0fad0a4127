package sampling

import (
	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/shopspring/decimal"
)

// Stratum is one ordered bucket of the filtered population. Bounds run
// from Low to High; a basis value equal to an interior boundary belongs to
// the lower stratum, so every value is assigned exactly once.
type Stratum struct {
	Index   int
	Low     decimal.Decimal
	High    decimal.Decimal
	Members []ledger.RecordID
	Sum     decimal.Decimal // net sum of member amounts
	SumAbs  decimal.Decimal // sum of absolute member amounts
}

// Count returns the number of member records.
func (s *Stratum) Count() int {
	return len(s.Members)
}

// Strata is the full partition of a filtered sub-population: the ordered
// strata plus the bucket of records whose basis value is missing. Every
// filtered record lands in exactly one of the two.
type Strata struct {
	Strata       []Stratum
	Unassignable []ledger.RecordID
}

// buildStrata partitions the filtered members into spec.K strata on the
// chosen basis. Pure computation: deterministic for identical member order
// and spec.
//
// Boundaries: k-1 interior cut points, at quantiles i/k (linear
// interpolation) for the quantile method or at equal steps across
// [min, max] for equal-width. If every basis value is equal the strata
// collapse to one; duplicate cut points leave the later strata empty, and
// empty strata are still emitted so the partition stays visible.
func buildStrata(ds *ledger.Dataset, members []ledger.RecordID, spec *StratificationSpec) *Strata {
	out := &Strata{}

	assignable := make([]ledger.RecordID, 0, len(members))
	values := make([]decimal.Decimal, 0, len(members))
	for _, id := range members {
		rec := &ds.Records[id]
		if !rec.Amount.Valid {
			out.Unassignable = append(out.Unassignable, id)
			continue
		}
		assignable = append(assignable, id)
		values = append(values, basisValue(rec, spec.Basis))
	}
	if len(assignable) == 0 {
		return out
	}

	sorted := sortedCopy(values)
	min, max := sorted[0], sorted[len(sorted)-1]

	if min.Equal(max) {
		s := Stratum{Index: 0, Low: min, High: max}
		for _, id := range assignable {
			addMember(&s, ds, id)
		}
		out.Strata = []Stratum{s}
		return out
	}

	edges := cutPoints(sorted, min, max, spec)
	out.Strata = make([]Stratum, spec.K)
	for i := range out.Strata {
		out.Strata[i] = Stratum{Index: i, Low: edges[i], High: edges[i+1]}
	}

	for i, id := range assignable {
		idx := locateStratum(edges, values[i])
		addMember(&out.Strata[idx], ds, id)
	}
	return out
}

func basisValue(rec *ledger.Record, basis Basis) decimal.Decimal {
	if basis == BasisAbsolute {
		return rec.Amount.Decimal.Abs()
	}
	return rec.Amount.Decimal
}

func addMember(s *Stratum, ds *ledger.Dataset, id ledger.RecordID) {
	s.Members = append(s.Members, id)
	amount := ds.Records[id].Amount.Decimal
	s.Sum = s.Sum.Add(amount)
	s.SumAbs = s.SumAbs.Add(amount.Abs())
}

// cutPoints returns k+1 edges: min, the k-1 interior cuts, max.
func cutPoints(sorted []decimal.Decimal, min, max decimal.Decimal, spec *StratificationSpec) []decimal.Decimal {
	k := spec.K
	edges := make([]decimal.Decimal, k+1)
	edges[0] = min
	edges[k] = max

	if spec.Method == MethodEqualWidth {
		width := max.Sub(min).Div(decimal.NewFromInt(int64(k)))
		for i := 1; i < k; i++ {
			edges[i] = min.Add(width.Mul(decimal.NewFromInt(int64(i))))
		}
		return edges
	}

	for i := 1; i < k; i++ {
		edges[i] = quantile(sorted, float64(i)/float64(k))
	}
	return edges
}

// locateStratum finds the stratum for v: the first interval whose upper
// edge admits it. Interior boundary ties therefore land in the lower
// stratum; the last stratum is closed at the maximum.
func locateStratum(edges []decimal.Decimal, v decimal.Decimal) int {
	last := len(edges) - 2
	for i := 1; i < len(edges)-1; i++ {
		if v.LessThanOrEqual(edges[i]) {
			return i - 1
		}
	}
	return last
}
