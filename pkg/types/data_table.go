package types

// Row maps a column name to that row's cell value.
type Row map[string]Value

// DataTable is a row-oriented view of a spreadsheet: ordered column names
// plus rows in source order.
type DataTable struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table contains the named column.
func (t *DataTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of data rows.
func (t *DataTable) Len() int { return len(t.Rows) }
