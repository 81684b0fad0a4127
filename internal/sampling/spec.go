package sampling

import (
	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/shopspring/decimal"
)

// Direction selects which side of the ledger a sub-population keeps.
// Debit keeps positive amounts and credit keeps negative amounts, the
// convention of the ledgers this tool is built for. Zero amounts are kept
// only by DirectionAll.
type Direction string

const (
	DirectionAll    Direction = "all"
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Basis selects the value the stratifier bins on.
type Basis string

const (
	BasisSigned   Basis = "signed"
	BasisAbsolute Basis = "absolute"
)

// Method selects how stratum boundaries are computed.
type Method string

const (
	MethodQuantile   Method = "quantile"
	MethodEqualWidth Method = "equal-width"
)

// SubPopulationSpec names and filters one sub-population of the ledger.
type SubPopulationSpec struct {
	Name           string
	Direction      Direction
	MinAmount      *decimal.Decimal // nil = open bound
	MaxAmount      *decimal.Decimal // nil = open bound
	AbsoluteBounds bool             // bounds compare against abs(amount)
	Accounts       string           // account expression, e.g. "6000-7999, 7210, 73*"; empty = all accounts
}

// StratificationSpec controls how a filtered sub-population is split into
// strata.
type StratificationSpec struct {
	Basis  Basis
	Method Method
	K      int
	Seed   int64
}

// DrawSpec controls the sample drawn from each stratum. Exactly one of
// PerStratum and Total applies: Total > 0 selects proportional allocation
// across strata, otherwise PerStratum records are drawn from every stratum.
type DrawSpec struct {
	PerStratum int
	Total      int
	Seed       int64
}

// Plan bundles the three specs for one sub-population.
type Plan struct {
	SubPopulation  SubPopulationSpec
	Stratification StratificationSpec
	Draw           DrawSpec
}

// Validate checks the plan before any computation. All violations are
// ConfigurationErrors; the first one found is returned.
func (p *Plan) Validate() error {
	if p.SubPopulation.Name == "" {
		return &ConfigurationError{Field: "name", Reason: "sub-population name is required"}
	}
	switch p.SubPopulation.Direction {
	case DirectionAll, DirectionDebit, DirectionCredit:
	default:
		return &ConfigurationError{Field: "direction", Reason: "must be all, debit or credit"}
	}
	if min, max := p.SubPopulation.MinAmount, p.SubPopulation.MaxAmount; min != nil && max != nil && min.GreaterThan(*max) {
		return &ConfigurationError{Field: "amount bounds", Reason: "min exceeds max"}
	}
	if _, err := ledger.ParseAccountExpr(p.SubPopulation.Accounts, nil); err != nil {
		return &ConfigurationError{Field: "accounts", Reason: err.Error()}
	}
	switch p.Stratification.Basis {
	case BasisSigned, BasisAbsolute:
	default:
		return &ConfigurationError{Field: "basis", Reason: "must be signed or absolute"}
	}
	switch p.Stratification.Method {
	case MethodQuantile, MethodEqualWidth:
	default:
		return &ConfigurationError{Field: "method", Reason: "must be quantile or equal-width"}
	}
	if p.Stratification.K <= 0 {
		return &ConfigurationError{Field: "k", Reason: "stratum count must be positive"}
	}
	if p.Draw.PerStratum < 0 {
		return &ConfigurationError{Field: "perStratum", Reason: "sample size cannot be negative"}
	}
	if p.Draw.Total < 0 {
		return &ConfigurationError{Field: "total", Reason: "sample size cannot be negative"}
	}
	if p.Draw.PerStratum == 0 && p.Draw.Total == 0 {
		return &ConfigurationError{Field: "draw", Reason: "either perStratum or total must be set"}
	}
	if p.Draw.PerStratum > 0 && p.Draw.Total > 0 {
		return &ConfigurationError{Field: "draw", Reason: "perStratum and total are mutually exclusive"}
	}
	return nil
}
