package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const runColumns = `id, run_id, generated_at, status, course_code, subject, total_lessons, chapters,
    template, input, sheet, output_dir, error_message, error_kind, lessons_json, history_file`

// Add inserts rec and sets rec.ID.
func (s *Store) Add(ctx context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("history record is nil")
	}
	lessons, err := json.Marshal(rec.Lessons)
	if err != nil {
		return fmt.Errorf("encode lessons: %w", err)
	}
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now()
	}

	var res sql.Result
	err = retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx,
			`INSERT INTO runs (
                run_id, generated_at, status, course_code, subject, total_lessons, chapters,
                template, input, sheet, output_dir, error_message, error_kind, lessons_json, history_file
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.RunID,
			rec.GeneratedAt.Format(time.RFC3339Nano),
			string(rec.Status),
			nullableString(rec.CourseCode),
			nullableString(rec.Subject),
			rec.TotalLessons,
			rec.Chapters,
			nullableString(rec.Template),
			rec.Input,
			nullableString(rec.Sheet),
			nullableString(rec.OutputDir),
			nullableString(rec.Error),
			nullableString(rec.ErrorKind),
			string(lessons),
			nullableString(rec.HistoryFile),
		)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read run id: %w", err)
	}
	rec.ID = id
	return nil
}

// List returns the most recent runs first. A limit <= 0 returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// Get returns the run with the given database id.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return rec, err
}

// ByRunID returns every record of one invocation, one per sheet, in insert order.
func (s *Store) ByRunID(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+runColumns+" FROM runs WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: run %s", ErrNotFound, runID)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec         Record
		generatedAt string
		status      string
		courseCode  sql.NullString
		subject     sql.NullString
		template    sql.NullString
		sheet       sql.NullString
		outputDir   sql.NullString
		errMessage  sql.NullString
		errKind     sql.NullString
		lessonsJSON sql.NullString
		historyFile sql.NullString
	)
	if err := row.Scan(
		&rec.ID,
		&rec.RunID,
		&generatedAt,
		&status,
		&courseCode,
		&subject,
		&rec.TotalLessons,
		&rec.Chapters,
		&template,
		&rec.Input,
		&sheet,
		&outputDir,
		&errMessage,
		&errKind,
		&lessonsJSON,
		&historyFile,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse generated_at %q: %w", generatedAt, err)
	}
	rec.GeneratedAt = ts
	rec.Status = Status(status)
	rec.CourseCode = courseCode.String
	rec.Subject = subject.String
	rec.Template = template.String
	rec.Sheet = sheet.String
	rec.OutputDir = outputDir.String
	rec.Error = errMessage.String
	rec.ErrorKind = errKind.String
	rec.HistoryFile = historyFile.String
	if lessonsJSON.Valid && lessonsJSON.String != "" {
		if err := json.Unmarshal([]byte(lessonsJSON.String), &rec.Lessons); err != nil {
			return nil, fmt.Errorf("decode lessons for run %d: %w", rec.ID, err)
		}
	}
	return &rec, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
