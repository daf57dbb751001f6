package source

import (
	"strings"

	"contentgen/internal/textutil"
)

// Table is a header row plus data rows. Every row has exactly len(Columns)
// cells; missing trailing cells are padded with empty strings.
type Table struct {
	Columns []string
	Rows    [][]string
	// Positions holds each row's zero-based data position in the source,
	// counting dropped blank rows. Nil means rows are contiguous.
	Positions []int
}

// NewTable builds a Table from raw records whose first record is the header.
// Header names are trimmed, cells are NFC-normalized, and rows consisting only
// of blank cells are dropped.
func NewTable(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{}
	}
	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(textutil.NormalizeCell(name))
	}

	rows := make([][]string, 0, len(records)-1)
	positions := make([]int, 0, len(records)-1)
	for pos, record := range records[1:] {
		row := make([]string, len(header))
		blank := true
		for i := range row {
			if i >= len(record) {
				break
			}
			row[i] = textutil.NormalizeCell(record[i])
			if !textutil.IsBlank(row[i]) {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
		positions = append(positions, pos)
	}
	return &Table{Columns: header, Rows: rows, Positions: positions}
}

// Position returns the source data position of Rows[i].
func (t *Table) Position(i int) int {
	if len(t.Positions) != len(t.Rows) {
		return i
	}
	return t.Positions[i]
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, column := range t.Columns {
		if column == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
