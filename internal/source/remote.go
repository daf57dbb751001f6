package source

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"

	"contentgen/internal/services"
)

// DefaultFetchTimeout bounds the single GET issued for remote sheets.
const DefaultFetchTimeout = 30 * time.Second

var (
	sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	gidPattern     = regexp.MustCompile(`[#&?]gid=([0-9]+)`)
)

// ExportURL rewrites a Google Sheets link to its CSV export endpoint. The tab
// is taken from the gid query or fragment parameter and defaults to 0. Links
// that are not Google Sheets documents are returned unchanged with ok=false.
func ExportURL(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host != "docs.google.com" {
		return raw, false
	}
	match := sheetIDPattern.FindStringSubmatch(parsed.Path)
	if match == nil {
		return raw, false
	}
	gid := "0"
	if m := gidPattern.FindStringSubmatch(raw); m != nil {
		gid = m[1]
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", match[1], gid), true
}

func fetchCSV(ctx context.Context, client *resty.Client, location string) (*Table, error) {
	target, _ := ExportURL(location)

	resp, err := client.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "fetch", target, err)
	}
	if !resp.IsSuccess() {
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "fetch", fmt.Sprintf("%s returned %s", target, resp.Status()), nil)
	}
	return parseCSV(resp.Body(), target)
}

func newHTTPClient(opts Options) *resty.Client {
	if opts.HTTPClient != nil {
		return opts.HTTPClient
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	client := resty.New().SetTimeout(timeout)
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	return client
}
