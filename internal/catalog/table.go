package catalog

import "strings"

// Table is an in-memory semicolon-CSV member with named columns.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

func NewTable(headers []string, rows [][]string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	return &Table{Headers: headers, Rows: rows, index: index}
}

func (t *Table) Len() int { return len(t.Rows) }

// Get returns the cell at (row, column), or "" when the column is unknown
// or the row is shorter than the header (the source file has ragged rows).
func (t *Table) Get(row int, column string) string {
	idx, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
