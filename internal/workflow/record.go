package workflow

import (
	"context"
	"log/slog"

	"contentgen/internal/history"
	"contentgen/internal/logging"
	"contentgen/internal/services"
)

// record persists an outcome to the enabled history sinks. Dry runs are not
// recorded. History failures are logged and never fail the unit.
func (r *Runner) record(ctx context.Context, req Request, runID string, outcome *Outcome) {
	if req.DryRun {
		return
	}
	logger := logging.WithContext(ctx, r.logger)
	rec := buildRecord(req, runID, outcome)
	rec.GeneratedAt = r.now()

	if r.cfg.History.JSONFiles {
		path, err := history.WriteFile(r.cfg.Paths.HistoryDir, rec)
		if err != nil {
			logging.WarnWithContext(logger, "history file not written", "history_file_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check paths.history_dir permissions"),
				logging.String(logging.FieldImpact, "run missing from history directory"),
			)
		} else {
			rec.HistoryFile = path
			outcome.HistoryFile = path
			logger.Info("history file written", logging.String("path", path))
		}
	}

	if r.cfg.History.Enabled && r.store != nil {
		if err := r.store.Add(ctx, rec); err != nil {
			logging.WarnWithContext(logger, "history record not stored", "history_db_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "run contentgen doctor"),
				logging.String(logging.FieldImpact, "run missing from contentgen history"),
			)
		} else {
			outcome.HistoryID = rec.ID
		}
	}
}

func buildRecord(req Request, runID string, outcome *Outcome) *history.Record {
	rec := &history.Record{
		RunID:    runID,
		Input:    req.Input,
		Sheet:    outcome.Sheet,
		Template: string(req.Template),
		Status:   history.StatusSucceeded,
	}
	if c := outcome.Course; c != nil {
		rec.CourseCode = c.CourseCode
		rec.Subject = c.Subject
		rec.TotalLessons = c.TotalLessons
		rec.Chapters = len(c.Chapters)
	}
	if req.CourseCode != "" {
		rec.CourseCode = req.CourseCode
	}
	if report := outcome.Report; report != nil {
		rec.CourseCode = report.CourseCode
		rec.Template = string(report.Variant)
		rec.OutputDir = report.OutputDir
		rec.Lessons = make([]history.LessonRecord, 0, len(report.Lessons))
		for _, lesson := range report.Lessons {
			rec.Lessons = append(rec.Lessons, history.LessonRecord{
				Number:      lesson.Number,
				Title:       lesson.Title,
				VideoURL:    lesson.VideoURL,
				HasDownload: lesson.HasDownload,
				DownloadURL: lesson.Guide,
			})
		}
	}
	if outcome.Err != nil {
		rec.Status = history.StatusFailed
		rec.Error = outcome.Err.Error()
		rec.ErrorKind = services.Kind(outcome.Err)
	}
	return rec
}

func (r *Runner) logFailure(logger *slog.Logger, stage string, err error) {
	logging.ErrorWithContext(logger, "unit failed", "unit_failed",
		logging.String("stage", stage),
		logging.String(logging.FieldErrorKind, services.Kind(err)),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, hintFor(err)),
	)
}

func hintFor(err error) string {
	switch services.Kind(err) {
	case "missing_columns":
		return "add the listed columns to the sheet header"
	case "source_unavailable":
		return "check the path or that the sheet is shared for link access"
	case "unsupported_format":
		return "use an .xlsx, .csv or http(s) input"
	case "malformed_source":
		return "re-export the sheet; numeric columns must hold whole numbers"
	case "validation":
		return "pass --course-code or fix the reported lint warnings"
	case "write_failed":
		return "check permissions on the output directory"
	default:
		return ""
	}
}
