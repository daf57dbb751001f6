package generator

import (
	"bytes"
	"encoding/json"
)

// marshalTabbed encodes v with tab indentation, literal non-ASCII and HTML
// characters, and no trailing newline.
func marshalTabbed(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
