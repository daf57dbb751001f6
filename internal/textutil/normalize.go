package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeCell converts sheet text to Unicode NFC. Workbooks saved on macOS
// frequently carry decomposed Hangul, which would otherwise leak into titles
// and compare unequal to the same text typed elsewhere. Surrounding
// whitespace is preserved.
func NormalizeCell(value string) string {
	if norm.NFC.IsNormalString(value) {
		return value
	}
	return norm.NFC.String(value)
}

// IsBlank reports whether value holds nothing but whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Fold returns a case-folded copy of value for case-insensitive matching.
func Fold(value string) string {
	return cases.Fold().String(value)
}
