// Package export renders sampling results into an Excel workbook, one sheet
// per result table, so the sample can be handed straight to the auditor.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/audit-sampler/internal/ledger"
	"github.com/carson-networks/audit-sampler/internal/sampling"
)

// Excel refuses sheet names longer than 31 characters or containing these.
const maxSheetName = 31

var sheetNameStripper = strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")

// WriteWorkbook writes the four tables of every successful result into path.
// Sheets appear in plan definition order; failed sub-populations contribute
// no sheets. Writing an empty workbook is an error since it means every
// plan failed.
func WriteWorkbook(path string, results []sampling.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	wrote := 0
	for i := range results {
		if results[i].Outputs == nil {
			continue
		}
		for _, table := range results[i].Outputs.Tables() {
			if err := writeSheet(f, table); err != nil {
				return err
			}
			wrote++
		}
	}
	if wrote == 0 {
		return fmt.Errorf("no results to export")
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, table *ledger.Table) error {
	name := SheetName(table.Name)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for col, header := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
	}

	for row := 0; row < table.Len(); row++ {
		for col, value := range table.Row(row) {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, cellValue(value)); err != nil {
				return err
			}
		}
	}

	return nil
}

// SheetName sanitizes a table name into a legal Excel sheet name.
func SheetName(name string) string {
	name = sheetNameStripper.Replace(name)
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return v
}
