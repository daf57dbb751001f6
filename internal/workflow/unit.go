package workflow

import (
	"context"
	"time"

	"contentgen/internal/course"
	"contentgen/internal/generator"
	"contentgen/internal/logging"
	"contentgen/internal/services"
	"contentgen/internal/source"
)

// Outcome is the result of one unit of work (one sheet or one file).
type Outcome struct {
	Sheet    string
	Course   *course.Course
	Report   *generator.Report
	Warnings []course.Warning
	Err      error
	// HistoryID is the SQLite row id, zero when not recorded.
	HistoryID   int64
	HistoryFile string
}

// Result aggregates the outcomes of a run.
type Result struct {
	RunID    string
	Outcomes []Outcome
}

// Succeeded counts units without error.
func (res *Result) Succeeded() int {
	n := 0
	for _, o := range res.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts units that returned an error.
func (res *Result) Failed() int {
	return len(res.Outcomes) - res.Succeeded()
}

func (r *Runner) runUnit(ctx context.Context, req Request, sheet string) Outcome {
	outcome := Outcome{Sheet: sheet}
	if sheet != "" {
		ctx = services.WithSheet(ctx, sheet)
	}
	logger := logging.WithContext(ctx, r.logger)

	table, err := source.Load(ctx, req.Input, source.Options{
		Sheet:     sheet,
		Timeout:   time.Duration(r.cfg.Source.FetchTimeout) * time.Second,
		UserAgent: r.cfg.Source.UserAgent,
	})
	if err != nil {
		outcome.Err = err
		r.logFailure(logger, "load", err)
		return outcome
	}
	logger.Debug("table loaded", logging.Int("rows", table.Len()), logging.Int("columns", len(table.Columns)))

	c, err := course.Parse(table)
	if err != nil {
		outcome.Err = err
		r.logFailure(logger, "parse", err)
		return outcome
	}
	outcome.Course = c

	code := c.CourseCode
	if req.CourseCode != "" {
		code = req.CourseCode
	}
	if code != "" {
		ctx = services.WithCourse(ctx, code)
		logger = logging.WithContext(ctx, r.logger)
	}

	outcome.Warnings = lintWarnings(c, req.CourseCode != "")
	for _, w := range outcome.Warnings {
		logging.WarnWithContext(logger, w.String(), "course_lint",
			logging.String("lint_kind", w.Kind),
			logging.String(logging.FieldErrorHint, "fix the sheet or pass --course-code"),
			logging.String(logging.FieldImpact, "output may overlap or miss files"),
		)
	}
	if req.Strict && len(outcome.Warnings) > 0 {
		outcome.Err = services.Wrap(services.ErrValidation, "lint", "strict", outcome.Warnings[0].String(), nil)
		r.logFailure(logger, "lint", outcome.Err)
		return outcome
	}

	report, err := r.gen.Generate(ctx, c, generator.Options{
		OutputRoot: req.OutputRoot,
		Variant:    req.Template,
		DryRun:     req.DryRun,
		CourseCode: req.CourseCode,
	})
	if err != nil {
		outcome.Err = err
		r.logFailure(logger, "generate", err)
		return outcome
	}
	outcome.Report = report
	return outcome
}

// lintWarnings drops the missing course code warning when the caller
// supplied an explicit code.
func lintWarnings(c *course.Course, codeOverridden bool) []course.Warning {
	warnings := course.Lint(c)
	if !codeOverridden {
		return warnings
	}
	kept := warnings[:0]
	for _, w := range warnings {
		if w.Kind != course.WarnMissingCourseCode {
			kept = append(kept, w)
		}
	}
	return kept
}
