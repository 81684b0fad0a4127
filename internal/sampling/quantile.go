package sampling

import (
	"sort"

	"github.com/shopspring/decimal"
)

// quantile returns the p-quantile (0 <= p <= 1) of sorted using linear
// interpolation between order statistics: the value at fractional rank
// h = (n-1)*p. This is the convention the tool is specified to use; do not
// swap in nearest-rank without flagging the change in results.
func quantile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	n := len(sorted)
	if n == 0 {
		return decimal.Zero
	}
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := int(h)
	frac := h - float64(lo)
	if lo >= n-1 {
		return sorted[n-1]
	}
	if frac == 0 {
		return sorted[lo]
	}
	step := sorted[lo+1].Sub(sorted[lo])
	return sorted[lo].Add(step.Mul(decimal.NewFromFloat(frac)))
}

// sortedCopy returns the values in ascending order without touching the
// input slice.
func sortedCopy(values []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	copy(out, values)
	sort.Slice(out, func(i, j int) bool { return out[i].LessThan(out[j]) })
	return out
}
