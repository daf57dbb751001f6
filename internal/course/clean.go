package course

import (
	"strings"

	"contentgen/internal/source"
	"contentgen/internal/textutil"
)

// row is a cleaned sheet row keyed by column header. Columns not present in
// the sheet read as absent.
type row map[string]Value

func (r row) get(column string) Value {
	return r[column]
}

// cleanRows converts raw table rows into cleaned rows: trimmed-blank cells
// become absent, the subject column takes its first value, and the chapter
// columns are forward-filled.
func cleanRows(table *source.Table) []row {
	rows := make([]row, len(table.Rows))
	for i, raw := range table.Rows {
		r := make(row, len(table.Columns))
		for c, column := range table.Columns {
			if column == "" || c >= len(raw) {
				continue
			}
			if _, seen := r[column]; seen {
				continue
			}
			cell := raw[c]
			if textutil.IsBlank(cell) {
				r[column] = Value{}
				continue
			}
			r[column] = Present(strings.TrimSpace(cell))
		}
		rows[i] = r
	}

	fillFirst(rows, ColumnSubject)
	forwardFill(rows, ColumnChapter)
	forwardFill(rows, ColumnChapterName)
	return rows
}

// fillFirst replaces every absent cell after the column's first present value
// with that first value. Absent cells before it stay absent.
func fillFirst(rows []row, column string) {
	var first Value
	for _, r := range rows {
		current := r.get(column)
		if !first.Present {
			first = current
			continue
		}
		if !current.Present {
			r[column] = first
		}
	}
}

// forwardFill replaces every absent cell with the nearest preceding present
// value in the same column.
func forwardFill(rows []row, column string) {
	var last Value
	for _, r := range rows {
		current := r.get(column)
		if current.Present {
			last = current
			continue
		}
		if last.Present {
			r[column] = last
		}
	}
}
