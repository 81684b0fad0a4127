package runconfig

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/carson-networks/audit-sampler/internal/sampling"
)

// Defaults applied when a sub-population leaves a field empty.
const (
	defaultDirection = sampling.DirectionAll
	defaultBasis     = sampling.BasisSigned
	defaultMethod    = sampling.MethodQuantile
)

// MapRunConfig converts the YAML DTO into validated sampling plans.
// Sub-populations without their own seed inherit the run-level seed, so a
// whole run reproduces from one number.
func MapRunConfig(dto *YAMLRunConfig) (*RunConfig, error) {
	if len(dto.SubPopulations) == 0 {
		return nil, fmt.Errorf("run config defines no sub-populations")
	}
	if dto.Columns.Voucher == "" || dto.Columns.Account == "" {
		return nil, fmt.Errorf("columns.voucher and columns.account are required")
	}

	out := &RunConfig{
		Name: dto.Name,
		Columns: ledger.Columns{
			Voucher:     dto.Columns.Voucher,
			Account:     dto.Columns.Account,
			Amount:      dto.Columns.Amount,
			Date:        dto.Columns.Date,
			Text:        dto.Columns.Text,
			Counterpart: dto.Columns.Counterpart,
		},
		Plans: make([]sampling.Plan, len(dto.SubPopulations)),
	}

	for i := range dto.SubPopulations {
		plan, err := mapSubPopulation(&dto.SubPopulations[i], dto.Seed)
		if err != nil {
			return nil, err
		}
		out.Plans[i] = plan
	}

	return out, nil
}

func mapSubPopulation(dto *YAMLSubPopulation, defaultSeed int64) (sampling.Plan, error) {
	plan := sampling.Plan{
		SubPopulation: sampling.SubPopulationSpec{
			Name:           dto.Name,
			Direction:      sampling.Direction(dto.Direction),
			AbsoluteBounds: dto.AbsoluteBounds,
			Accounts:       dto.Accounts,
		},
		Stratification: sampling.StratificationSpec{
			Basis:  sampling.Basis(dto.Strata.Basis),
			Method: sampling.Method(dto.Strata.Method),
			K:      dto.Strata.K,
		},
		Draw: sampling.DrawSpec{
			PerStratum: dto.Draw.PerStratum,
			Total:      dto.Draw.Total,
			Seed:       dto.Draw.Seed,
		},
	}

	if dto.Direction == "" {
		plan.SubPopulation.Direction = defaultDirection
	}
	if dto.Strata.Basis == "" {
		plan.Stratification.Basis = defaultBasis
	}
	if dto.Strata.Method == "" {
		plan.Stratification.Method = defaultMethod
	}
	if plan.Draw.Seed == 0 {
		plan.Draw.Seed = defaultSeed
	}

	if dto.MinAmount != "" {
		minAmount, err := decimal.NewFromString(dto.MinAmount)
		if err != nil {
			return plan, fmt.Errorf("sub-population %q: invalid min_amount %q", dto.Name, dto.MinAmount)
		}
		plan.SubPopulation.MinAmount = &minAmount
	}
	if dto.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(dto.MaxAmount)
		if err != nil {
			return plan, fmt.Errorf("sub-population %q: invalid max_amount %q", dto.Name, dto.MaxAmount)
		}
		plan.SubPopulation.MaxAmount = &maxAmount
	}

	if err := plan.Validate(); err != nil {
		return plan, fmt.Errorf("sub-population %q: %w", dto.Name, err)
	}

	return plan, nil
}
