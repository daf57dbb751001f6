package preflight

import (
	"context"
	"time"

	"contentgen/internal/config"
	"contentgen/internal/source"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config. The
// input check runs only when input is non-empty.
func RunAll(ctx context.Context, cfg *config.Config, input string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckCreatableDirectory("Output root", cfg.Paths.OutputDir))
	results = append(results, CheckCreatableDirectory("State directory", cfg.Paths.StateDir))

	if cfg.History.JSONFiles {
		results = append(results, CheckCreatableDirectory("History directory", cfg.Paths.HistoryDir))
	}
	if cfg.History.Enabled {
		results = append(results, CheckHistoryDB(cfg.HistoryDBPath()))
	}

	if input != "" {
		results = append(results, CheckInput(ctx, input, source.Options{
			Sheet:     cfg.Defaults.Sheet,
			Timeout:   time.Duration(cfg.Source.FetchTimeout) * time.Second,
			UserAgent: cfg.Source.UserAgent,
		}))
	}
	return results
}
