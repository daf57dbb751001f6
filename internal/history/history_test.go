package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"contentgen/internal/history"
	"contentgen/internal/testsupport"
)

func sampleRecord(runID string) *history.Record {
	video := "https://cdn.example.com/2024/PY101/01.mp4"
	return &history.Record{
		RunID:        runID,
		GeneratedAt:  time.Date(2025, 11, 19, 10, 7, 30, 0, time.Local),
		CourseCode:   "PY101",
		Subject:      "파이썬 기초",
		TotalLessons: 1,
		Chapters:     1,
		Template:     "ct2022",
		Input:        "course.xlsx",
		OutputDir:    "/tmp/out/PY101",
		Status:       history.StatusSucceeded,
		Lessons: []history.LessonRecord{{
			Number:      "01",
			Title:       "소개",
			VideoURL:    &video,
			HasDownload: true,
			DownloadURL: "https://cdn.example.com/PY101/ch1.zip",
		}},
	}
}

func TestStoreAddListGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	first := sampleRecord("run-1")
	if err := store.Add(ctx, first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	failed := sampleRecord("run-2")
	failed.Status = history.StatusFailed
	failed.Error = "missing columns: 차시명"
	failed.ErrorKind = "missing_columns"
	failed.Lessons = nil
	if err := store.Add(ctx, failed); err != nil {
		t.Fatalf("Add: %v", err)
	}

	records, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 || records[0].RunID != "run-2" {
		t.Fatalf("List order = %+v", records)
	}

	got, err := store.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Subject != "파이썬 기초" || len(got.Lessons) != 1 || *got.Lessons[0].VideoURL != *first.Lessons[0].VideoURL {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.GeneratedAt.Equal(first.GeneratedAt) {
		t.Fatalf("generated_at = %v, want %v", got.GeneratedAt, first.GeneratedAt)
	}

	if _, err := store.Get(ctx, 999); !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("missing Get error = %v", err)
	}
	byRun, err := store.ByRunID(ctx, "run-2")
	if err != nil || len(byRun) != 1 || byRun[0].ErrorKind != "missing_columns" {
		t.Fatalf("ByRunID = %+v, %v", byRun, err)
	}
}

func TestStoreReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history.db")
	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Add(context.Background(), sampleRecord("run-1")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	store.Close()

	reopened, err := history.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	records, err := reopened.List(context.Background(), 10)
	if err != nil || len(records) != 1 {
		t.Fatalf("List after reopen = %d, %v", len(records), err)
	}
}

func TestWriteFileNamesAndCollisions(t *testing.T) {
	dir := t.TempDir()
	rec := sampleRecord("run-1")

	first, err := history.WriteFile(dir, rec)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Base(first) != "251119_1007.json" {
		t.Fatalf("file name = %s", filepath.Base(first))
	}
	second, err := history.WriteFile(dir, rec)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if filepath.Base(second) != "251119_1007_2.json" {
		t.Fatalf("collision name = %s", filepath.Base(second))
	}

	raw, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"generated_at", "run_id", "course_code", "subject", "total_lessons", "chapters", "template", "input", "output_dir", "status", "lessons"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("history file missing %q", key)
		}
	}
	lesson := decoded["lessons"].([]any)[0].(map[string]any)
	if lesson["has_download"] != true || lesson["download_url"] == "" {
		t.Fatalf("lesson entry = %v", lesson)
	}
	info, err := os.Stat(first)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("mode = %o", info.Mode().Perm())
	}
}
