package runconfig

// YAMLRunConfig is the on-disk shape of a sampling run definition.
type YAMLRunConfig struct {
	Name    string      `yaml:"name"`
	Seed    int64       `yaml:"seed"`
	Columns YAMLColumns `yaml:"columns"`

	SubPopulations []YAMLSubPopulation `yaml:"sub_populations"`
}

// YAMLColumns maps record fields to source column headers.
type YAMLColumns struct {
	Voucher     string `yaml:"voucher"`
	Account     string `yaml:"account"`
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
	Text        string `yaml:"text"`
	Counterpart string `yaml:"counterpart"`
}

// YAMLSubPopulation defines one sub-population and how to sample it.
type YAMLSubPopulation struct {
	Name           string `yaml:"name"`
	Direction      string `yaml:"direction"`
	MinAmount      string `yaml:"min_amount"`
	MaxAmount      string `yaml:"max_amount"`
	AbsoluteBounds bool   `yaml:"absolute_bounds"`
	Accounts       string `yaml:"accounts"`

	Strata YAMLStrata `yaml:"strata"`
	Draw   YAMLDraw   `yaml:"draw"`
}

// YAMLStrata controls stratification for one sub-population.
type YAMLStrata struct {
	Basis  string `yaml:"basis"`
	Method string `yaml:"method"`
	K      int    `yaml:"k"`
}

// YAMLDraw controls the sample size for one sub-population.
type YAMLDraw struct {
	PerStratum int   `yaml:"per_stratum"`
	Total      int   `yaml:"total"`
	Seed       int64 `yaml:"seed"`
}
