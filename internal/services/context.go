package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	sheetKey  contextKey = "sheet"
	courseKey contextKey = "course"
)

// WithRunID annotates context with the generation run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the generation run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSheet annotates context with the sheet currently being processed.
func WithSheet(ctx context.Context, sheet string) context.Context {
	if sheet == "" {
		return ctx
	}
	return context.WithValue(ctx, sheetKey, sheet)
}

// SheetFromContext returns the sheet name if present.
func SheetFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sheetKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithCourse annotates context with the course code being generated.
func WithCourse(ctx context.Context, code string) context.Context {
	if code == "" {
		return ctx
	}
	return context.WithValue(ctx, courseKey, code)
}

// CourseFromContext returns the course code if present.
func CourseFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(courseKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
