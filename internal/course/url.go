package course

import "strings"

// NormalizeURL turns a sheet link into an absolute URL. Blank input yields
// nil. Protocol-relative links get an https: scheme and bare hosts get
// https://. Anything already starting with "http" is returned trimmed. No
// further validation is attempted.
func NormalizeURL(raw *string) *string {
	if raw == nil {
		return nil
	}
	value := strings.TrimSpace(*raw)
	switch {
	case value == "":
		return nil
	case strings.HasPrefix(value, "/"):
		value = "https:" + value
	case !strings.HasPrefix(value, "http"):
		value = "https://" + value
	}
	return &value
}
