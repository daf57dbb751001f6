package generator

import (
	"context"
	"log/slog"

	"contentgen/internal/fileutil"
	"contentgen/internal/logging"
	"contentgen/internal/services"
)

// writePlan materializes entries in order. Directories are created if
// absent; files are truncated, rewritten, and chmodded to the entry mode.
// A failure stops the run and leaves already-written entries in place.
func writePlan(ctx context.Context, plan *Plan, logger *slog.Logger) error {
	for _, entry := range plan.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := plan.Path(entry)
		switch entry.Kind {
		case EntryDir:
			if err := fileutil.EnsureDir(target); err != nil {
				return services.Wrap(services.ErrWriteFailed, "generate", "mkdir", target, err)
			}
		case EntryFile:
			if err := fileutil.WriteFileMode(target, entry.Content, entry.Mode); err != nil {
				return services.Wrap(services.ErrWriteFailed, "generate", "write", target, err)
			}
			logger.Debug("file written",
				logging.String("path", target),
				logging.Int("bytes", len(entry.Content)),
			)
		}
	}
	return nil
}
