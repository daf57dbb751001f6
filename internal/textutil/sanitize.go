package textutil

import "strings"

// pathSegmentReplacer replaces characters that would break a single path
// segment with safe alternatives.
var pathSegmentReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizePathSegment makes value usable as one directory name. Separators,
// colons, and asterisks become dashes; other unsafe characters are removed.
// "." and ".." collapse to the empty string so callers cannot escape the
// output root.
func SanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	out := strings.TrimSpace(pathSegmentReplacer.Replace(value))
	if out == "." || out == ".." {
		return ""
	}
	return out
}
