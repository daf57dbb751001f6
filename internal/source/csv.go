package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"contentgen/internal/services"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func parseCSV(data []byte, origin string) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, services.Wrap(services.ErrMalformedSource, "source", "parse csv", origin, err)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, services.Wrap(services.ErrMalformedSource, "source", "parse csv", origin+": no header row", nil)
	}
	return NewTable(records), nil
}
