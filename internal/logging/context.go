package logging

import (
	"context"
	"log/slog"

	"contentgen/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for generation run identifiers.
	FieldRunID = "run_id"
	// FieldSheet is the standardized structured logging key for the sheet being processed.
	FieldSheet = "sheet"
	// FieldCourse is the standardized structured logging key for course codes.
	FieldCourse = "course"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldErrorKind carries services.Kind of a failure.
	FieldErrorKind = "error_kind"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if sheet, ok := services.SheetFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSheet, sheet))
	}
	if code, ok := services.CourseFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCourse, code))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(args(fields)...)
}
