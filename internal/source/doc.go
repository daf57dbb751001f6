// Package source loads course sheets into a uniform row-oriented Table.
//
// Three kinds of location are understood: local .xlsx workbooks (first sheet
// or a selected one, read with excelize), local .csv files, and http(s) URLs.
// Google Sheets edit links are rewritten to their CSV export endpoint with the
// tab's gid preserved; every other URL is fetched and parsed as CSV. Remote
// fetches are a single GET bounded by a timeout.
//
// Failures carry the services markers ErrUnsupportedFormat,
// ErrSourceUnavailable, and ErrMalformedSource so callers can classify them
// without string matching.
package source
