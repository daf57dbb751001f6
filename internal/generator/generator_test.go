package generator_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"contentgen/internal/course"
	"contentgen/internal/generator"
	"contentgen/internal/services"
	"contentgen/internal/source"
	"contentgen/internal/testsupport"
)

func parseRecords(t *testing.T, records [][]string) *course.Course {
	t.Helper()
	c, err := course.Parse(source.NewTable(records))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func walkTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	sort.Strings(paths)
	return paths
}

func TestGenerateWritesTree(t *testing.T) {
	c := parseRecords(t, testsupport.CourseRecords())
	root := t.TempDir()

	report, err := generator.Generate(context.Background(), c, generator.Options{OutputRoot: root, Variant: generator.VariantCT2022})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report.CourseCode != "PY101" || report.OutputDir != filepath.Join(root, "PY101") {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if report.TotalLessons != 3 || report.Chapters != 2 {
		t.Fatalf("counts = %d lessons / %d chapters", report.TotalLessons, report.Chapters)
	}

	raw, err := os.ReadFile(filepath.Join(root, "PY101", "subjects.json"))
	if err != nil {
		t.Fatalf("read subjects.json: %v", err)
	}
	var subjects struct {
		Subjects []struct {
			Title string   `json:"title"`
			Lists []string `json:"lists"`
		} `json:"subjects"`
	}
	if err := json.Unmarshal(raw, &subjects); err != nil {
		t.Fatalf("decode subjects.json: %v", err)
	}
	if len(subjects.Subjects) != c.TotalLessons {
		t.Fatalf("subjects = %d, want %d", len(subjects.Subjects), c.TotalLessons)
	}
	if subjects.Subjects[1].Title != "2차 설치" || subjects.Subjects[1].Lists[0] != "02 설치" {
		t.Fatalf("subject entry = %+v", subjects.Subjects[1])
	}
	if !strings.HasPrefix(string(raw), "{\n\t\"subjects\"") || strings.HasSuffix(string(raw), "\n") {
		t.Fatalf("subjects.json formatting: %q", raw)
	}

	html, err := os.ReadFile(filepath.Join(root, "PY101", "01", "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if string(html) != generator.Render(generator.VariantCT2022) {
		t.Fatal("index.html does not match ct2022 body")
	}

	for _, rel := range []string{"subjects.json", "01/index.html", "03/assets/data/data.json"} {
		info, err := os.Stat(filepath.Join(root, "PY101", filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("stat %s: %v", rel, err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Fatalf("%s mode = %o, want 644", rel, info.Mode().Perm())
		}
	}
}

func readLessonData(t *testing.T, dir, number string) map[string]any {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, number, "assets", "data", "data.json"))
	if err != nil {
		t.Fatalf("read data.json: %v", err)
	}
	if strings.Contains(string(raw), `\u`) {
		t.Fatalf("data.json escapes characters: %s", raw)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("decode data.json: %v", err)
	}
	return data
}

func TestLessonDataShape(t *testing.T) {
	c := parseRecords(t, testsupport.CourseRecords())
	root := t.TempDir()
	report, err := generator.Generate(context.Background(), c, generator.Options{OutputRoot: root, Variant: generator.VariantCT2022})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data := readLessonData(t, report.OutputDir, "01")
	if data["subject"] != "파이썬 기초" || data["index"] != float64(1) || data["section"] != float64(1) {
		t.Fatalf("header fields = %v", data)
	}
	pages := data["pages"].([]any)
	first := pages[0].(map[string]any)
	if first["path"] != "/lecture" || first["component"] != "lecture" || first["title"] != "학습하기" {
		t.Fatalf("page = %v", first)
	}
	if first["media"] != "https://cdn.example.com/2024/PY101/01.mp4" {
		t.Fatalf("media = %v", first["media"])
	}
	if data["guide"] != "https://cdn.example.com/PY101/ch1.zip" {
		t.Fatalf("guide = %v", data["guide"])
	}

	// Lesson 02 shares chapter 1 and inherits its first lesson's download.
	if got := readLessonData(t, report.OutputDir, "02")["guide"]; got != "https://cdn.example.com/PY101/ch1.zip" {
		t.Fatalf("lesson 02 guide = %v", got)
	}
	// Lesson 03 opens chapter 2 with no download; the course-wide fallback applies.
	if got := readLessonData(t, report.OutputDir, "03")["guide"]; got != "https://cdn.example.com/PY101/ch1.zip" {
		t.Fatalf("lesson 03 guide = %v", got)
	}
}

func TestIT2023OmitsFallbackGuide(t *testing.T) {
	c := parseRecords(t, testsupport.CourseRecords())
	root := t.TempDir()
	report, err := generator.Generate(context.Background(), c, generator.Options{OutputRoot: root, Variant: generator.VariantIT2023})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, ok := readLessonData(t, report.OutputDir, "02")["guide"]; ok {
		t.Fatal("it2023 lesson without download should omit guide")
	}
	if got := readLessonData(t, report.OutputDir, "01")["guide"]; got != "https://cdn.example.com/PY101/ch1.zip" {
		t.Fatalf("own download should still be written, got %v", got)
	}
	html, err := os.ReadFile(filepath.Join(report.OutputDir, "01", "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if !strings.Contains(string(html), "commons.js") || strings.Contains(string(html), "commons_ct.js") {
		t.Fatal("it2023 body not rendered")
	}
}

func TestDryRunMatchesRealRun(t *testing.T) {
	c := parseRecords(t, testsupport.CourseRecords())
	root := t.TempDir()
	opts := generator.Options{OutputRoot: root, Variant: generator.VariantCT2022, DryRun: true}

	preview, err := generator.Generate(context.Background(), c, opts)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if entries, _ := os.ReadDir(root); len(entries) != 0 {
		t.Fatalf("dry run touched the filesystem: %v", entries)
	}

	opts.DryRun = false
	actual, err := generator.Generate(context.Background(), c, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := append([]string(nil), preview.Entries...)
	sort.Strings(want)
	got := walkTree(t, actual.OutputDir)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("tree mismatch\npreview:\n%s\nactual:\n%s", strings.Join(want, "\n"), strings.Join(got, "\n"))
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	c := parseRecords(t, testsupport.CourseRecords())
	root := t.TempDir()
	opts := generator.Options{OutputRoot: root, Variant: generator.VariantCT2022}

	if _, err := generator.Generate(context.Background(), c, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	target := filepath.Join(root, "PY101", "01", "assets", "data", "data.json")
	first, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(target, []byte("stale content that is much longer than before"+strings.Repeat("x", 2048)), 0o600); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := os.Chmod(target, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if _, err := generator.Generate(context.Background(), c, opts); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("content changed between runs:\n%s\n---\n%s", first, second)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("mode = %o, want 644", info.Mode().Perm())
	}
}

func TestGenerateRequiresCourseCode(t *testing.T) {
	records := testsupport.CourseRecords()
	for _, row := range records[1:] {
		row[6] = "https://cdn.example.com/nocode/a.mp4"
	}
	c := parseRecords(t, records)

	_, err := generator.Generate(context.Background(), c, generator.Options{OutputRoot: t.TempDir()})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	report, err := generator.Generate(context.Background(), c, generator.Options{OutputRoot: t.TempDir(), CourseCode: "manual", DryRun: true})
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if report.CourseCode != "manual" {
		t.Fatalf("course code = %q", report.CourseCode)
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	c := parseRecords(t, testsupport.CourseRecords())
	root := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(root, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := generator.Generate(context.Background(), c, generator.Options{OutputRoot: root})
	if !errors.Is(err, services.ErrWriteFailed) {
		t.Fatalf("error = %v, want ErrWriteFailed", err)
	}
}
