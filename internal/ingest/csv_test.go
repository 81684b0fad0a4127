package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/audit-sampler/internal/ledger"
)

var testColumns = ledger.Columns{
	Voucher:     "Bilagsnr",
	Account:     "Konto",
	Amount:      "Beløp",
	Date:        "Dato",
	Text:        "Tekst",
	Counterpart: "Motpart",
}

func TestRead_FullLedger(t *testing.T) {
	input := strings.Join([]string{
		"Bilagsnr;Konto;Beløp;Dato;Tekst;Motpart",
		"B0001;6000;1 250,50;2025-03-01;Husleie;Gårdeier AS",
		"B0002;7210;-300,00;14.03.2025;Kreditnota;Acme",
		"B0003;6000;;2025-03-20;Mangler beløp;",
	}, "\n")

	ds, err := Read(strings.NewReader(input), testColumns, ';')

	assert.NoError(t, err)
	assert.Len(t, ds.Records, 3)
	assert.True(t, ds.HasAmount())

	assert.Equal(t, "B0001", ds.Records[0].Voucher)
	assert.Equal(t, 6000, ds.Records[0].Account)
	assert.True(t, ds.Records[0].Amount.Valid)
	assert.Equal(t, "1250.5", ds.Records[0].Amount.Decimal.String())
	assert.Equal(t, "Husleie", ds.Records[0].Text)
	assert.Equal(t, "Gårdeier AS", ds.Records[0].Counterpart)

	assert.Equal(t, "-300", ds.Records[1].Amount.Decimal.String())
	assert.Equal(t, 2025, ds.Records[1].Date.Year(), "dotted date layout accepted")
	assert.Equal(t, 3, int(ds.Records[1].Date.Month()))

	assert.False(t, ds.Records[2].Amount.Valid, "blank amount kept as null")
}

func TestRead_AmountColumnAbsent(t *testing.T) {
	input := strings.Join([]string{
		"Bilagsnr;Konto",
		"B0001;6000",
	}, "\n")

	columns := ledger.Columns{Voucher: "Bilagsnr", Account: "Konto", Amount: "Beløp"}
	ds, err := Read(strings.NewReader(input), columns, ';')

	assert.NoError(t, err)
	assert.False(t, ds.HasAmount(), "mapped amount column missing from header counts as absent")
}

func TestRead_MissingVoucherColumn(t *testing.T) {
	input := "Konto;Beløp\n6000;100"

	_, err := Read(strings.NewReader(input), testColumns, ';')

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Bilagsnr")
}

func TestRead_InvalidAccount(t *testing.T) {
	input := strings.Join([]string{
		"Bilagsnr;Konto;Beløp",
		"B0001;ikke-et-tall;100",
	}, "\n")

	_, err := Read(strings.NewReader(input), testColumns, ';')

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		out   string
		valid bool
	}{
		{"1250.50", "1250.5", true},
		{"1 250,50", "1250.5", true},
		{"1.234,56", "1234.56", true},
		{"-300,00", "-300", true},
		{"500 kr", "500", true},
		{"500,-", "500", true},
		{"300,00-", "-300", true},
		{"0", "0", true},
		{"", "", false},
		{"abc", "", false},
	}

	for _, c := range cases {
		got := ParseAmount(c.in)
		assert.Equal(t, c.valid, got.Valid, "input %q", c.in)
		if c.valid {
			assert.Equal(t, c.out, got.Decimal.String(), "input %q", c.in)
		}
	}
}
