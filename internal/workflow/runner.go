package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"contentgen/internal/config"
	"contentgen/internal/generator"
	"contentgen/internal/history"
	"contentgen/internal/logging"
	"contentgen/internal/services"
	"contentgen/internal/source"
)

// Request describes one generate invocation.
type Request struct {
	Input      string
	Sheet      string
	AllSheets  bool
	OutputRoot string
	Template   generator.Variant
	CourseCode string
	DryRun     bool
	Strict     bool
}

// Runner executes generate requests.
type Runner struct {
	cfg    *config.Config
	store  *history.Store
	logger *slog.Logger
	gen    *generator.Generator

	now   func() time.Time
	newID func() string
}

// Option configures optional Runner behavior.
type Option func(*Runner)

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithRunIDs overrides run id generation.
func WithRunIDs(newID func() string) Option {
	return func(r *Runner) {
		r.newID = newID
	}
}

// NewRunner constructs a Runner. store may be nil, in which case the SQLite
// history is skipped.
func NewRunner(cfg *config.Config, store *history.Store, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "workflow"),
		gen:    generator.New(logger),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every unit of work in req. The returned error covers
// failures that stop the whole invocation (lock, sheet listing); per-unit
// failures are reported through Result.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if r.cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "run", "config is nil", nil)
	}
	if req.Input == "" {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "run", "no input given (use -i or set defaults.input)", nil)
	}

	if !req.DryRun {
		unlock, err := r.acquireLock()
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	runID := r.newID()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	sheets, err := r.units(req, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("run started",
		logging.String(logging.FieldEventType, "run_started"),
		logging.String("input", req.Input),
		logging.Int("units", len(sheets)),
		logging.Bool("dry_run", req.DryRun),
	)

	result := &Result{RunID: runID}
	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		outcome := r.runUnit(ctx, req, sheet)
		r.record(ctx, req, runID, &outcome)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	logger.Info("run finished",
		logging.String(logging.FieldEventType, "run_finished"),
		logging.Int("succeeded", result.Succeeded()),
		logging.Int("failed", result.Failed()),
	)
	return result, nil
}

// units expands a request into the sheets to process. "" means the default
// sheet (or the whole CSV / URL payload).
func (r *Runner) units(req Request, logger *slog.Logger) ([]string, error) {
	if !req.AllSheets {
		return []string{req.Sheet}, nil
	}
	if !source.IsWorkbook(req.Input) {
		logging.WarnWithContext(logger, "input has no sheets; processing it once", "all_sheets_not_workbook",
			logging.String("input", req.Input),
			logging.String(logging.FieldErrorHint, "--all-sheets only expands .xlsx workbooks"),
			logging.String(logging.FieldImpact, "single run"),
		)
		return []string{""}, nil
	}
	sheets, err := source.ListSheets(req.Input)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, services.Wrap(services.ErrMalformedSource, "workflow", "list sheets", req.Input+": workbook has no sheets", nil)
	}
	return sheets, nil
}

func (r *Runner) acquireLock() (func(), error) {
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "prepare directories", "", err)
	}
	lockPath := r.cfg.LockPath()
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrLocked, "workflow", "acquire lock", lockPath, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, "workflow", "acquire lock", fmt.Sprintf("%s is held by another contentgen process", lockPath), nil)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release run lock", logging.String("path", lockPath), logging.Error(err))
		}
	}, nil
}

// FirstError returns the first unit failure, or nil when every unit succeeded.
func (res *Result) FirstError() error {
	if res == nil {
		return nil
	}
	for _, o := range res.Outcomes {
		if o.Err != nil {
			return o.Err
		}
	}
	return nil
}

// Err summarizes unit failures as a single error suitable for exit status
// selection. The first failure's marker decides the exit code.
func (res *Result) Err() error {
	first := res.FirstError()
	if first == nil {
		return nil
	}
	if failed := res.Failed(); failed > 1 || len(res.Outcomes) > 1 {
		return fmt.Errorf("%d of %d units failed: %w", failed, len(res.Outcomes), first)
	}
	return first
}
