package course

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"contentgen/internal/services"
)

// parseOrdinal reads an integer cell. Spreadsheet exports often render
// integers as floats, so "7", "7.0" and " 7 " are all accepted. Absent cells
// return nil.
func parseOrdinal(v Value, rowNumber int, column string) (*int, error) {
	if !v.Present {
		return nil, nil
	}
	text := strings.TrimSpace(v.Text)
	if n, err := strconv.Atoi(text); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil, services.Wrap(
			services.ErrMalformedSource,
			"parse",
			column,
			fmt.Sprintf("row %d: %q is not a whole number", rowNumber, v.Text),
			nil,
		)
	}
	n := int(f)
	return &n, nil
}

// zeroPad renders a lesson index as the two-digit directory name.
func zeroPad(index int) string {
	return fmt.Sprintf("%02d", index)
}
