package analysis

// SubPopulationBody selects one sub-population of the ledger.
type SubPopulationBody struct {
	Name           string `json:"name" required:"true" minLength:"1" doc:"Sub-population name, used to prefix the result tables"`
	Direction      string `json:"direction" required:"true" enum:"all,debit,credit" doc:"Which side of the ledger to keep"`
	MinAmount      string `json:"minAmount,omitempty" doc:"Inclusive lower amount bound, empty for open"`
	MaxAmount      string `json:"maxAmount,omitempty" doc:"Inclusive upper amount bound, empty for open"`
	AbsoluteBounds bool   `json:"absoluteBounds,omitempty" doc:"Compare bounds against absolute amounts"`
	Accounts       string `json:"accounts,omitempty" doc:"Account expression, e.g. \"6000-7999, 7210, 73*\""`
}

// StratificationBody controls how the sub-population is split into strata.
type StratificationBody struct {
	Basis  string `json:"basis" required:"true" enum:"signed,absolute" doc:"Value the stratifier bins on"`
	Method string `json:"method" required:"true" enum:"quantile,equal-width" doc:"How stratum boundaries are computed"`
	K      int    `json:"k" required:"true" minimum:"1" doc:"Number of strata"`
}

// DrawBody controls the sample drawn from each stratum.
type DrawBody struct {
	PerStratum int   `json:"perStratum,omitempty" minimum:"0" doc:"Records to draw from every stratum"`
	Total      int   `json:"total,omitempty" minimum:"0" doc:"Records to draw in total, allocated proportionally"`
	Seed       int64 `json:"seed" doc:"PRNG seed, identical seeds reproduce identical draws"`
}

// PlanBody bundles the three specs for one sub-population.
type PlanBody struct {
	SubPopulation  SubPopulationBody  `json:"subPopulation" required:"true"`
	Stratification StratificationBody `json:"stratification" required:"true"`
	Draw           DrawBody           `json:"draw" required:"true"`
}

// StratumRow is one stratum summary row in a response.
type StratumRow struct {
	Stratum int    `json:"stratum" doc:"1-based stratum number"`
	From    string `json:"from" doc:"Lower boundary"`
	To      string `json:"to" doc:"Upper boundary"`
	Lines   int    `json:"lines" doc:"Number of records in the stratum"`
	Sum     string `json:"sum" doc:"Signed amount sum"`
	SumAbs  string `json:"sumAbs" doc:"Absolute amount sum"`
}

// PivotRow is one per-account summary row in a response.
type PivotRow struct {
	Account int    `json:"account" doc:"Account code"`
	Lines   int    `json:"lines" doc:"Number of records on the account"`
	Sum     string `json:"sum" doc:"Signed amount sum"`
	SumAbs  string `json:"sumAbs" doc:"Absolute amount sum"`
}

// SelectedRecord is one drawn record in a response.
type SelectedRecord struct {
	Stratum     int    `json:"stratum" doc:"1-based stratum number the record was drawn from"`
	Voucher     string `json:"voucher" doc:"Voucher number"`
	Account     int    `json:"account" doc:"Account code"`
	Amount      string `json:"amount" doc:"Decimal amount, empty when the source cell was blank"`
	EntryDate   string `json:"entryDate" doc:"Entry date (YYYY-MM-DD)"`
	EntryText   string `json:"entryText" doc:"Entry description"`
	Counterpart string `json:"counterpart" doc:"Counterpart name"`
	Shortfall   bool   `json:"shortfall" doc:"Stratum held fewer records than requested"`
}

// SubPopulationResult is the outcome for one sub-population.
type SubPopulationResult struct {
	Name          string           `json:"name" doc:"Sub-population name"`
	Error         string           `json:"error,omitempty" doc:"Why this sub-population produced no output"`
	MemberCount   int              `json:"memberCount" doc:"Records in the filtered sub-population"`
	Unassignable  int              `json:"unassignable" doc:"Members without an amount, excluded from strata"`
	Strata        []StratumRow     `json:"strata,omitempty" doc:"Stratum summaries"`
	Pivot         []PivotRow       `json:"pivot,omitempty" doc:"Per-account summaries"`
	Selected      []SelectedRecord `json:"selected,omitempty" doc:"Drawn sample in stratum order"`
	SelectedCount int              `json:"selectedCount" doc:"Records drawn"`
	Shortfall     bool             `json:"shortfall" doc:"Any stratum held fewer records than requested"`
}

// Run summarizes a recorded run in list and get responses.
type Run struct {
	ID             string `json:"id" doc:"Run UUID"`
	Name           string `json:"name" doc:"Run name"`
	SubPopulations int    `json:"subPopulations" doc:"Number of sub-populations in the run"`
	SelectedCount  int    `json:"selectedCount" doc:"Total records drawn"`
	Shortfall      bool   `json:"shortfall" doc:"Any stratum anywhere came up short"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}
