package sampling

import (
	"math/rand/v2"
	"sort"

	"github.com/carson-networks/audit-sampler/internal/ledger"
)

// StratumDraw is the draw outcome for one stratum.
type StratumDraw struct {
	StratumIndex int
	Requested    int
	Selected     []ledger.RecordID
	Shortfall    bool // stratum held fewer records than requested
}

// DrawResult is the outcome of one seeded draw across all strata.
type DrawResult struct {
	Strata []StratumDraw
}

// Shortfall reports whether any stratum came up short.
func (r *DrawResult) Shortfall() bool {
	for i := range r.Strata {
		if r.Strata[i].Shortfall {
			return true
		}
	}
	return false
}

// SelectedCount returns the total number of records drawn.
func (r *DrawResult) SelectedCount() int {
	n := 0
	for i := range r.Strata {
		n += len(r.Strata[i].Selected)
	}
	return n
}

// draw selects records from each stratum without replacement. The PRNG is
// seeded once from spec.Seed, so identical strata membership and sizes
// reproduce the identical selection across runs and restarts. Before
// drawing, each stratum's members are ordered by (voucher, record id) to
// cut the dependency on upstream record order.
func draw(ds *ledger.Dataset, strata *Strata, spec *DrawSpec) *DrawResult {
	rng := rand.New(rand.NewPCG(uint64(spec.Seed), 0))

	wanted := allocate(strata, spec)
	out := &DrawResult{Strata: make([]StratumDraw, len(strata.Strata))}
	for i := range strata.Strata {
		s := &strata.Strata[i]
		out.Strata[i] = drawStratum(ds, s, wanted[i], rng)
	}
	return out
}

// allocate decides how many records to request from each stratum. In
// per-stratum mode every stratum gets the same requested size. In total
// mode the requested total is split across non-empty strata proportionally
// to their population, using largest remainders so the allocations sum to
// the total exactly; remainder ties break toward the lower stratum index.
func allocate(strata *Strata, spec *DrawSpec) []int {
	wanted := make([]int, len(strata.Strata))
	if spec.Total <= 0 {
		for i := range wanted {
			wanted[i] = spec.PerStratum
		}
		return wanted
	}

	population := 0
	for i := range strata.Strata {
		population += strata.Strata[i].Count()
	}
	if population == 0 {
		return wanted
	}

	type remainder struct {
		index int
		frac  float64
	}
	var remainders []remainder
	allocated := 0
	for i := range strata.Strata {
		count := strata.Strata[i].Count()
		if count == 0 {
			continue // empty strata take no part in the allocation
		}
		exact := float64(spec.Total) * float64(count) / float64(population)
		base := int(exact)
		wanted[i] = base
		allocated += base
		remainders = append(remainders, remainder{index: i, frac: exact - float64(base)})
	}

	sort.SliceStable(remainders, func(a, b int) bool {
		return remainders[a].frac > remainders[b].frac
	})
	for i := 0; allocated < spec.Total && i < len(remainders); i++ {
		wanted[remainders[i].index]++
		allocated++
	}
	return wanted
}

func drawStratum(ds *ledger.Dataset, s *Stratum, requested int, rng *rand.Rand) StratumDraw {
	members := sortedMembers(ds, s.Members)
	result := StratumDraw{StratumIndex: s.Index, Requested: requested}

	if requested >= len(members) {
		// Everything is selected; no randomness needed.
		result.Selected = members
		result.Shortfall = requested > len(members)
		return result
	}

	// Partial Fisher-Yates: the first `requested` positions end up holding
	// a uniform without-replacement sample.
	for i := 0; i < requested; i++ {
		j := i + rng.IntN(len(members)-i)
		members[i], members[j] = members[j], members[i]
	}
	selected := members[:requested]
	sort.Slice(selected, func(a, b int) bool { return selected[a] < selected[b] })
	result.Selected = selected
	return result
}

// sortedMembers orders member IDs by voucher identifier, then record ID
// for voucher ties.
func sortedMembers(ds *ledger.Dataset, members []ledger.RecordID) []ledger.RecordID {
	out := make([]ledger.RecordID, len(members))
	copy(out, members)
	sort.Slice(out, func(a, b int) bool {
		va, vb := ds.Records[out[a]].Voucher, ds.Records[out[b]].Voucher
		if va != vb {
			return va < vb
		}
		return out[a] < out[b]
	})
	return out
}
