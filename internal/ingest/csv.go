// Package ingest loads ledger CSV exports into the in-memory dataset.
// Accounting systems around here export semicolon-separated files with
// Norwegian number formatting, so amount parsing is deliberately forgiving:
// currency suffixes, thousands spaces and comma decimals are all accepted,
// and a cell that still doesn't parse becomes a null amount instead of
// failing the whole import.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/audit-sampler/internal/ledger"
)

// dateLayouts are tried in order when parsing entry dates.
var dateLayouts = []string{
	time.DateOnly,
	"02.01.2006",
	"02.01.06",
}

// ReadFile loads a CSV ledger from disk. See Read.
func ReadFile(path string, columns ledger.Columns, delimiter rune) (*ledger.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, columns, delimiter)
}

// Read loads a CSV ledger. The first row is the header; columns names the
// header cells each record field is read from. Voucher and account columns
// are required, the rest are optional and recorded as absent when unmapped
// or not found.
func Read(r io.Reader, columns ledger.Columns, delimiter rune) (*ledger.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	voucherCol, ok := index[columns.Voucher]
	if !ok {
		return nil, fmt.Errorf("voucher column %q not found in header", columns.Voucher)
	}
	accountCol, ok := index[columns.Account]
	if !ok {
		return nil, fmt.Errorf("account column %q not found in header", columns.Account)
	}

	resolved := ledger.Columns{Voucher: columns.Voucher, Account: columns.Account}
	amountCol := resolveOptional(index, columns.Amount, &resolved.Amount)
	dateCol := resolveOptional(index, columns.Date, &resolved.Date)
	textCol := resolveOptional(index, columns.Text, &resolved.Text)
	counterpartCol := resolveOptional(index, columns.Counterpart, &resolved.Counterpart)

	var records []ledger.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		record := ledger.Record{Voucher: cell(row, voucherCol)}

		account, err := strconv.Atoi(strings.TrimSpace(cell(row, accountCol)))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid account %q", line, cell(row, accountCol))
		}
		record.Account = account

		if amountCol >= 0 {
			record.Amount = ParseAmount(cell(row, amountCol))
		}
		if dateCol >= 0 {
			record.Date = parseDate(cell(row, dateCol))
		}
		if textCol >= 0 {
			record.Text = cell(row, textCol)
		}
		if counterpartCol >= 0 {
			record.Counterpart = cell(row, counterpartCol)
		}

		records = append(records, record)
	}

	return &ledger.Dataset{Columns: resolved, Records: records}, nil
}

func resolveOptional(index map[string]int, name string, resolved *string) int {
	if name == "" {
		return -1
	}
	col, ok := index[name]
	if !ok {
		return -1
	}
	*resolved = name
	return col
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// ParseAmount parses a ledger amount cell. Norwegian formatting is
// normalized first: "kr" suffixes, thousands separators (space, no-break
// space, dot-before-comma) and comma decimals. A blank or unparsable cell
// yields an invalid NullDecimal.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(strings.ToLower(s), "kr")
	s = strings.TrimSuffix(s, ",-")

	// Trailing minus, as some exports write credits: "300,00-".
	if strings.HasSuffix(s, "-") && len(s) > 1 {
		s = "-" + strings.TrimSuffix(s, "-")
	}

	// "1.234,56" → "1234.56"; a comma always marks the decimal point.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
