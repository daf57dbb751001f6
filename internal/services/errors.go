package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedSource   = errors.New("malformed source")
	ErrMissingColumns    = errors.New("missing columns")
	ErrWriteFailed       = errors.New("write failed")
	ErrValidation        = errors.New("validation error")
	ErrConfiguration     = errors.New("configuration error")
	// ErrLocked reports that another run holds the state directory lock.
	ErrLocked            = errors.New("another run in progress")
)

// Exit codes returned by the CLI for each failure class.
const (
	ExitFailure       = 1
	ExitConfiguration = 2
	ExitSource        = 3
	ExitSchema        = 4
	ExitWrite         = 5
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// MissingColumnsError lists every required column absent from a table header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns, strings.Join(e.Columns, ", "))
}

// Is lets errors.Is match the ErrMissingColumns marker.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// Kind returns a short classification label for logs and history records.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrSourceUnavailable):
		return "source_unavailable"
	case errors.Is(err, ErrMalformedSource):
		return "malformed_source"
	case errors.Is(err, ErrMissingColumns):
		return "missing_columns"
	case errors.Is(err, ErrWriteFailed):
		return "write_failed"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrLocked):
		return "locked"
	default:
		return "unknown"
	}
}

// ExitCode maps an error to the process exit status the CLI should use.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrUnsupportedFormat):
		return ExitConfiguration
	case errors.Is(err, ErrSourceUnavailable), errors.Is(err, ErrMalformedSource):
		return ExitSource
	case errors.Is(err, ErrMissingColumns), errors.Is(err, ErrValidation):
		return ExitSchema
	case errors.Is(err, ErrWriteFailed):
		return ExitWrite
	default:
		return ExitFailure
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
