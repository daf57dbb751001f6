package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"contentgen/internal/services"
	"contentgen/internal/source"
	"contentgen/internal/testsupport"
)

func TestLoadCSVStripsBOMAndPadsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.csv")
	data := "\ufeff과정명 ,차시번호,차시명\n파이썬,1,소개\n,2\n,,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	table, err := source.Load(context.Background(), path, source.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := strings.Join(table.Columns, "|"); got != "과정명|차시번호|차시명" {
		t.Fatalf("columns = %q", got)
	}
	if table.Len() != 2 {
		t.Fatalf("rows = %d, want 2 (blank row dropped)", table.Len())
	}
	if got := table.Rows[1]; len(got) != 3 || got[2] != "" {
		t.Fatalf("short row not padded: %#v", got)
	}
}

func TestLoadWorkbookSelectsSheet(t *testing.T) {
	path := testsupport.WriteWorkbook(t, t.TempDir(), map[string][][]string{
		"first":  {{"과정명"}, {"A"}},
		"second": {{"과정명"}, {"B"}},
	}, "first", "second")

	for _, tc := range []struct {
		sheet string
		want  string
	}{
		{"", "A"},
		{"second", "B"},
		{"1", "B"},
	} {
		table, err := source.Load(context.Background(), path, source.Options{Sheet: tc.sheet})
		if err != nil {
			t.Fatalf("Load(sheet=%q): %v", tc.sheet, err)
		}
		if table.Rows[0][0] != tc.want {
			t.Fatalf("sheet %q first cell = %q, want %q", tc.sheet, table.Rows[0][0], tc.want)
		}
	}

	_, err := source.Load(context.Background(), path, source.Options{Sheet: "missing"})
	if !errors.Is(err, services.ErrMalformedSource) {
		t.Fatalf("unknown sheet error = %v, want ErrMalformedSource", err)
	}
}

func TestListSheets(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteWorkbook(t, dir, map[string][][]string{
		"1차": {{"과정명"}},
		"2차": {{"과정명"}},
	}, "1차", "2차")

	names, err := source.ListSheets(path)
	if err != nil {
		t.Fatalf("ListSheets: %v", err)
	}
	if strings.Join(names, ",") != "1차,2차" {
		t.Fatalf("names = %v", names)
	}

	csvPath := testsupport.WriteCSV(t, dir, "course.csv", [][]string{{"과정명"}})
	if _, err := source.ListSheets(csvPath); !errors.Is(err, services.ErrUnsupportedFormat) {
		t.Fatalf("csv ListSheets error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadRejectsUnsupportedAndMissing(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "course.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := source.Load(context.Background(), txt, source.Options{}); !errors.Is(err, services.ErrUnsupportedFormat) {
		t.Fatalf("txt error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := source.Load(context.Background(), filepath.Join(dir, "nope.csv"), source.Options{}); !errors.Is(err, services.ErrSourceUnavailable) {
		t.Fatalf("missing file error = %v, want ErrSourceUnavailable", err)
	}
	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := source.Load(context.Background(), empty, source.Options{}); !errors.Is(err, services.ErrMalformedSource) {
		t.Fatalf("empty csv error = %v, want ErrMalformedSource", err)
	}
}

func TestLoadRemoteCSV(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("과정명,차시번호\n파이썬,1\n"))
	}))
	defer server.Close()

	table, err := source.Load(context.Background(), server.URL+"/sheet.csv", source.Options{UserAgent: "contentgen-test"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 1 || table.Rows[0][0] != "파이썬" {
		t.Fatalf("unexpected table: %#v", table)
	}
	if gotAgent != "contentgen-test" {
		t.Fatalf("User-Agent = %q", gotAgent)
	}
}

func TestLoadRemoteFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			time.Sleep(200 * time.Millisecond)
		}
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := source.Load(context.Background(), server.URL+"/missing", source.Options{})
	if !errors.Is(err, services.ErrSourceUnavailable) {
		t.Fatalf("404 error = %v, want ErrSourceUnavailable", err)
	}

	_, err = source.Load(context.Background(), server.URL+"/slow", source.Options{Timeout: 20 * time.Millisecond})
	if !errors.Is(err, services.ErrSourceUnavailable) {
		t.Fatalf("timeout error = %v, want ErrSourceUnavailable", err)
	}
}

func TestExportURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{
			in:   "https://docs.google.com/spreadsheets/d/abc_123-X/edit#gid=42",
			want: "https://docs.google.com/spreadsheets/d/abc_123-X/export?format=csv&gid=42",
			ok:   true,
		},
		{
			in:   "https://docs.google.com/spreadsheets/d/abc/edit?usp=sharing",
			want: "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=0",
			ok:   true,
		},
		{
			in:   "https://example.com/course.csv",
			want: "https://example.com/course.csv",
		},
	}
	for _, tc := range cases {
		got, ok := source.ExportURL(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ExportURL(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsURLAndIsWorkbook(t *testing.T) {
	if !source.IsURL(" HTTPS://example.com/x ") {
		t.Fatal("expected https URL to be detected")
	}
	if source.IsURL("/tmp/course.csv") {
		t.Fatal("local path reported as URL")
	}
	if !source.IsWorkbook("/tmp/Course.XLSX") {
		t.Fatal("expected .XLSX to be a workbook")
	}
	if source.IsWorkbook("https://example.com/a.xlsx") {
		t.Fatal("URL reported as local workbook")
	}
}

func TestNewTableRecordsPositionsOfKeptRows(t *testing.T) {
	table := source.NewTable([][]string{
		{"a", "b"},
		{"1", "x"},
		{" ", ""},
		{"3"},
	})
	if table.Len() != 2 {
		t.Fatalf("rows = %d, want 2", table.Len())
	}
	if table.Position(0) != 0 || table.Position(1) != 2 {
		t.Fatalf("positions = %v, want [0 2]", table.Positions)
	}

	literal := &source.Table{Columns: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}}
	if literal.Position(1) != 1 {
		t.Fatalf("contiguous position = %d, want 1", literal.Position(1))
	}
}
