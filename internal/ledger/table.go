package ledger

// Table is a named, ordered, random-access result table. Renderers and
// exporters consume tables as-is; row order is part of the contract.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// NewTable creates an empty table with the given name and column headers.
func NewTable(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds one row. The caller is expected to pass one cell per column.
func (t *Table) Append(cells ...any) {
	t.Rows = append(t.Rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Row returns the row at index i.
func (t *Table) Row(i int) []any {
	return t.Rows[i]
}
