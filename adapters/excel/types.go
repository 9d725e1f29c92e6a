package excel

// Row is one data row keyed by trimmed header name
type Row map[string]string

// Table is a rectangular dataset read from a CSV or XLSX file
type Table struct {
	Headers []string // Column headers in file order
	Rows    []Row    // Data rows in file order
}

// HasColumn reports whether the header row contains name
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Column returns the values of one column in row order
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}
