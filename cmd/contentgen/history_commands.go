package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"contentgen/internal/history"
	"contentgen/internal/services"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past generation runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func withHistory(ctx *commandContext, fn func(*history.Store) error) error {
	store, err := ctx.openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		return services.Wrap(services.ErrConfiguration, "history", "", "history is disabled (history.enabled = false)", nil)
	}
	defer store.Close()
	return fn(store)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(ctx, func(store *history.Store) error {
				records, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, historyEntries(records))
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						strconv.FormatInt(rec.ID, 10),
						rec.GeneratedAt.Local().Format("2006-01-02 15:04"),
						string(rec.Status),
						dashIfEmpty(rec.CourseCode),
						dashIfEmpty(rec.Sheet),
						strconv.Itoa(rec.TotalLessons),
						dashIfEmpty(rec.Template),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "When", "Status", "Course", "Sheet", "Lessons", "Template"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print runs as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id|run-id>",
		Short: "Show one run with its lessons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(ctx, func(store *history.Store) error {
				records, err := lookupRecords(cmd, store, strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				if asJSON {
					entries := historyEntries(records)
					if len(entries) == 1 {
						return writeJSON(cmd, entries[0])
					}
					return writeJSON(cmd, entries)
				}
				for i, rec := range records {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					printRecord(cmd, rec)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run as JSON")
	return cmd
}

// historyEntry exposes the database id that the history file format omits.
type historyEntry struct {
	ID int64 `json:"id"`
	history.Record
}

func historyEntries(records []history.Record) []historyEntry {
	entries := make([]historyEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, historyEntry{ID: rec.ID, Record: rec})
	}
	return entries
}

// lookupRecords resolves a numeric database id first, then a run id.
func lookupRecords(cmd *cobra.Command, store *history.Store, key string) ([]history.Record, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		rec, err := store.Get(cmd.Context(), id)
		if err == nil {
			return []history.Record{*rec}, nil
		}
		if !errors.Is(err, history.ErrNotFound) {
			return nil, err
		}
	}
	return store.ByRunID(cmd.Context(), key)
}

func printRecord(cmd *cobra.Command, rec history.Record) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader(fmt.Sprintf("Run %d", rec.ID), colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderField("Run ID", rec.RunID))
	fmt.Fprintln(out, renderField("Generated", rec.GeneratedAt.Local().Format(time.RFC3339)))
	kind := statusOK
	if rec.Status == history.StatusFailed {
		kind = statusError
	}
	fmt.Fprintln(out, renderStatusLine("Status", kind, rec.Error, colorize))
	fmt.Fprintln(out, renderField("Input", rec.Input))
	if rec.Sheet != "" {
		fmt.Fprintln(out, renderField("Sheet", rec.Sheet))
	}
	fmt.Fprintln(out, renderField("Course code", dashIfEmpty(rec.CourseCode)))
	fmt.Fprintln(out, renderField("Subject", dashIfEmpty(rec.Subject)))
	fmt.Fprintln(out, renderField("Template", dashIfEmpty(rec.Template)))
	fmt.Fprintln(out, renderField("Output", dashIfEmpty(rec.OutputDir)))
	fmt.Fprintln(out, renderField("Lessons", strconv.Itoa(rec.TotalLessons)))
	fmt.Fprintln(out, renderField("Chapters", strconv.Itoa(rec.Chapters)))
	if rec.HistoryFile != "" {
		fmt.Fprintln(out, renderField("History file", rec.HistoryFile))
	}
	if len(rec.Lessons) == 0 {
		return
	}
	rows := make([][]string, 0, len(rec.Lessons))
	for _, lesson := range rec.Lessons {
		video := ""
		if lesson.VideoURL != nil {
			video = *lesson.VideoURL
		}
		rows = append(rows, []string{lesson.Number, lesson.Title, dashIfEmpty(video), yesNo(lesson.HasDownload), dashIfEmpty(lesson.DownloadURL)})
	}
	fmt.Fprintln(out, renderTable([]string{"No", "Title", "Video", "Own download", "Guide"}, rows, nil))
}

func dashIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
