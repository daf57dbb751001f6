package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"contentgen/internal/services"
)

// Options customizes how a location is loaded.
type Options struct {
	// Sheet selects a workbook sheet by name or zero-based index. Ignored for
	// CSV files and URLs.
	Sheet     string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the resty client used for remote fetches.
	HTTPClient *resty.Client
}

// IsURL reports whether location is an http(s) URL.
func IsURL(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// IsWorkbook reports whether location names a local spreadsheet workbook.
func IsWorkbook(location string) bool {
	return !IsURL(location) && strings.EqualFold(filepath.Ext(location), ".xlsx")
}

// Load reads location into a Table.
func Load(ctx context.Context, location string, opts Options) (*Table, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, services.Wrap(services.ErrUnsupportedFormat, "source", "load", "input location is empty", nil)
	}
	if IsURL(location) {
		return fetchCSV(ctx, newHTTPClient(opts), location)
	}

	ext := strings.ToLower(filepath.Ext(location))
	if ext != ".xlsx" && ext != ".csv" {
		return nil, services.Wrap(services.ErrUnsupportedFormat, "source", "load", fmt.Sprintf("%s: extension %q is not .xlsx or .csv", location, ext), nil)
	}
	if err := checkLocalFile(location); err != nil {
		return nil, err
	}

	if ext == ".xlsx" {
		return loadWorkbook(location, opts.Sheet)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "read", location, err)
	}
	return parseCSV(data, location)
}

// ListSheets returns the sheet names of a local workbook in workbook order.
func ListSheets(location string) ([]string, error) {
	if !IsWorkbook(location) {
		return nil, services.Wrap(services.ErrUnsupportedFormat, "source", "list sheets", location+": only .xlsx workbooks have sheets", nil)
	}
	if err := checkLocalFile(location); err != nil {
		return nil, err
	}
	return listWorkbookSheets(location)
}

func checkLocalFile(location string) error {
	info, err := os.Stat(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrSourceUnavailable, "source", "open", location+": file not found", nil)
		}
		return services.Wrap(services.ErrSourceUnavailable, "source", "open", location, err)
	}
	if info.IsDir() {
		return services.Wrap(services.ErrSourceUnavailable, "source", "open", location+": is a directory", nil)
	}
	return nil
}
