package generator

import (
	"context"
	"log/slog"

	"contentgen/internal/course"
	"contentgen/internal/logging"
)

// Generator writes course trees. The zero value logs nowhere.
type Generator struct {
	logger *slog.Logger
}

// New constructs a Generator logging through logger.
func New(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{logger: logging.NewComponentLogger(logger, "generator")}
}

// Generate plans the course tree and, unless opts.DryRun is set, writes it.
// The returned report describes the plan in both cases.
func (g *Generator) Generate(ctx context.Context, c *course.Course, opts Options) (*Report, error) {
	logger := g.logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithContext(ctx, logger)

	plan, err := BuildPlan(c, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("plan built",
		logging.String("course_code", plan.CourseCode),
		logging.String("template", string(plan.Variant)),
		logging.Int("entries", len(plan.Entries)),
		logging.Bool("dry_run", opts.DryRun),
	)

	if !opts.DryRun {
		if err := writePlan(ctx, plan, logger); err != nil {
			return nil, err
		}
		logger.Info("course generated",
			logging.String(logging.FieldEventType, "course_generated"),
			logging.String("course_code", plan.CourseCode),
			logging.String("output_dir", plan.CourseDir),
			logging.Int("lessons", c.TotalLessons),
		)
	}
	return newReport(c, plan, opts.DryRun), nil
}

// Generate runs a Generator without logging.
func Generate(ctx context.Context, c *course.Course, opts Options) (*Report, error) {
	return New(nil).Generate(ctx, c, opts)
}
