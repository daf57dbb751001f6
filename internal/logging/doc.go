// Package logging assembles structured slog loggers used across contentgen.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context-aware helpers so pipeline code can tag log lines with run
// IDs, sheet names, and course codes. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
