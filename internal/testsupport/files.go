package testsupport

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteCSV writes records as a CSV file named name under dir and returns its path.
func WriteCSV(t testing.TB, dir, name string, records [][]string) string {
	t.Helper()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("encode csv: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteWorkbook writes course.xlsx under dir with one sheet per entry in
// order. Each sheet's rows are written starting at A1.
func WriteWorkbook(t testing.TB, dir string, sheets map[string][][]string, order ...string) string {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	defaultSheet := book.GetSheetName(0)
	for i, name := range order {
		if i == 0 {
			if err := book.SetSheetName(defaultSheet, name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := book.NewSheet(name); err != nil {
			t.Fatalf("new sheet %s: %v", name, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := make([]any, len(row))
			for c, v := range row {
				values[c] = v
			}
			if err := book.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("set row %d on %s: %v", r+1, name, err)
			}
		}
	}

	path := filepath.Join(dir, "course.xlsx")
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// CourseRecords returns a small well-formed course sheet: two chapters, three
// lessons, one download link on the first lesson.
func CourseRecords() [][]string {
	return [][]string{
		{"과정명", "차시", "차시번호", "차시명", "챕터구분", "챕터명", "강의영상(mp4) 링크", "다운로드(zip) 링크"},
		{"파이썬 기초", "1", "1", "소개", "1", "시작하기", "https://cdn.example.com/2024/PY101/01.mp4", "https://cdn.example.com/PY101/ch1.zip"},
		{"", "2", "2", "설치", "", "", "https://cdn.example.com/2024/PY101/02.mp4", ""},
		{"", "3", "3", "변수", "2", "기본 문법", "https://cdn.example.com/2024/PY101/03.mp4", ""},
	}
}
