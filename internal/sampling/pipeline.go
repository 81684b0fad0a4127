// Package sampling implements the stratified-sampling core: filtering a
// transaction dataset into named sub-populations, partitioning each into
// strata by amount, drawing a seeded reproducible sample per stratum, and
// assembling the four result tables. Every stage is a pure function over
// immutable inputs; the package performs no I/O.
package sampling

import (
	"sync"

	"github.com/carson-networks/audit-sampler/internal/ledger"
)

// Result pairs one plan with its outcome. Exactly one of Outputs and Err
// is set.
type Result struct {
	Plan    Plan
	Outputs *Outputs
	Err     error
}

// Run executes the full pipeline for one sub-population: validate, filter,
// stratify, draw, assemble. Configuration and data-shape failures are
// returned as typed errors; nothing is retried since the computation is
// deterministic.
func Run(ds *ledger.Dataset, plan Plan) (*Outputs, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	members, err := applyFilter(ds, &plan.SubPopulation)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, &EmptyPopulationError{SubPopulation: plan.SubPopulation.Name}
	}

	strata := buildStrata(ds, members, &plan.Stratification)
	drawResult := draw(ds, strata, &plan.Draw)

	return buildOutputs(ds, plan.SubPopulation.Name, members, strata, drawResult), nil
}

// RunAll executes every plan against the same dataset, one goroutine per
// sub-population. Sub-populations share no mutable state, so no
// coordination is needed beyond the join; results come back in plan
// definition order regardless of completion order.
func RunAll(ds *ledger.Dataset, plans []Plan) []Result {
	results := make([]Result, len(plans))

	var wg sync.WaitGroup
	for i := range plans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs, err := Run(ds, plans[i])
			results[i] = Result{Plan: plans[i], Outputs: outputs, Err: err}
		}(i)
	}
	wg.Wait()

	return results
}
