package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"contentgen/internal/services"
)

func loadWorkbook(path, sheet string) (*Table, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrMalformedSource, "source", "open workbook", path, err)
	}
	defer book.Close()

	name, err := resolveSheet(book.GetSheetList(), sheet)
	if err != nil {
		return nil, services.Wrap(services.ErrMalformedSource, "source", "select sheet", path, err)
	}

	rows, err := book.GetRows(name)
	if err != nil {
		return nil, services.Wrap(services.ErrMalformedSource, "source", "read sheet", fmt.Sprintf("%s[%s]", path, name), err)
	}
	if len(rows) == 0 {
		return nil, services.Wrap(services.ErrMalformedSource, "source", "read sheet", fmt.Sprintf("%s[%s]: no header row", path, name), nil)
	}
	return NewTable(rows), nil
}

// resolveSheet maps a selector to a sheet name. An empty selector picks the
// first sheet, an all-digit selector is a zero-based index, anything else is
// matched by name.
func resolveSheet(names []string, selector string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return names[0], nil
	}
	for _, name := range names {
		if name == selector {
			return name, nil
		}
	}
	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 0 || idx >= len(names) {
			return "", fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(names))
		}
		return names[idx], nil
	}
	return "", fmt.Errorf("sheet %q not found (available: %s)", selector, strings.Join(names, ", "))
}

func listWorkbookSheets(path string) ([]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrMalformedSource, "source", "open workbook", path, err)
	}
	defer book.Close()
	return book.GetSheetList(), nil
}
