package runconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/audit-sampler/internal/sampling"
)

const fullConfig = `
name: q1-audit
seed: 42
columns:
  voucher: Bilagsnr
  account: Konto
  amount: Beløp
  date: Dato
sub_populations:
  - name: debits
    direction: debit
    min_amount: "1000"
    accounts: "6000-7999, 73*"
    strata:
      basis: absolute
      method: equal-width
      k: 4
    draw:
      per_stratum: 5
      seed: 7
  - name: credits
    direction: credit
    strata:
      k: 3
    draw:
      total: 20
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))

	assert.NoError(t, err)
	assert.Equal(t, "q1-audit", cfg.Name)
	assert.Equal(t, "Bilagsnr", cfg.Columns.Voucher)
	assert.Equal(t, "Beløp", cfg.Columns.Amount)
	assert.Len(t, cfg.Plans, 2)

	debits := cfg.Plans[0]
	assert.Equal(t, "debits", debits.SubPopulation.Name)
	assert.Equal(t, sampling.DirectionDebit, debits.SubPopulation.Direction)
	assert.Equal(t, "1000", debits.SubPopulation.MinAmount.String())
	assert.Equal(t, "6000-7999, 73*", debits.SubPopulation.Accounts)
	assert.Equal(t, sampling.BasisAbsolute, debits.Stratification.Basis)
	assert.Equal(t, sampling.MethodEqualWidth, debits.Stratification.Method)
	assert.Equal(t, 4, debits.Stratification.K)
	assert.Equal(t, 5, debits.Draw.PerStratum)
	assert.Equal(t, int64(7), debits.Draw.Seed, "own seed kept")

	credits := cfg.Plans[1]
	assert.Equal(t, sampling.BasisSigned, credits.Stratification.Basis, "basis defaults to signed")
	assert.Equal(t, sampling.MethodQuantile, credits.Stratification.Method, "method defaults to quantile")
	assert.Equal(t, 20, credits.Draw.Total)
	assert.Equal(t, int64(42), credits.Draw.Seed, "run-level seed inherited")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "name: [unclosed"))
	assert.Error(t, err)
}

func TestMapRunConfig_NoSubPopulations(t *testing.T) {
	_, err := MapRunConfig(&YAMLRunConfig{
		Columns: YAMLColumns{Voucher: "V", Account: "K"},
	})
	assert.Error(t, err)
}

func TestMapRunConfig_MissingRequiredColumns(t *testing.T) {
	_, err := MapRunConfig(&YAMLRunConfig{
		Columns:        YAMLColumns{Voucher: "V"},
		SubPopulations: []YAMLSubPopulation{{Name: "all", Strata: YAMLStrata{K: 2}, Draw: YAMLDraw{PerStratum: 1}}},
	})
	assert.Error(t, err)
}

func TestMapRunConfig_InvalidPlanRejected(t *testing.T) {
	_, err := MapRunConfig(&YAMLRunConfig{
		Columns: YAMLColumns{Voucher: "V", Account: "K"},
		SubPopulations: []YAMLSubPopulation{{
			Name:   "bad",
			Strata: YAMLStrata{K: 0}, // k must be positive
			Draw:   YAMLDraw{PerStratum: 1},
		}},
	})

	assert.Error(t, err)
	var cfgErr *sampling.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestMapRunConfig_InvalidMinAmount(t *testing.T) {
	_, err := MapRunConfig(&YAMLRunConfig{
		Columns: YAMLColumns{Voucher: "V", Account: "K"},
		SubPopulations: []YAMLSubPopulation{{
			Name:      "bad",
			MinAmount: "not-a-number",
			Strata:    YAMLStrata{K: 2},
			Draw:      YAMLDraw{PerStratum: 1},
		}},
	})
	assert.Error(t, err)
}
