package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"contentgen/internal/config"
	"contentgen/internal/generator"
	"contentgen/internal/history"
	"contentgen/internal/logging"
	"contentgen/internal/services"
	"contentgen/internal/workflow"
)

type generateFlags struct {
	input      string
	output     string
	template   string
	sheet      string
	allSheets  bool
	dryRun     bool
	courseCode string
	strict     bool
	save       bool
	json       bool
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate lesson directories from a course sheet",
		Long: `Generate reads a course sheet (.xlsx, .csv or an http(s) / Google Sheets URL)
and writes <output>/<course_code>/ with subjects.json and one directory per
lesson. Omitted -i/-o/-t/-s fall back to the saved [defaults] in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "", "Course sheet path or URL")
	f.StringVarP(&flags.output, "output", "o", "", "Output root directory")
	f.StringVarP(&flags.template, "template", "t", "", "Lesson template: ct2022, it2023 or auto")
	f.StringVarP(&flags.sheet, "sheet", "s", "", "Workbook sheet name or zero-based index")
	f.BoolVar(&flags.allSheets, "all-sheets", false, "Generate every sheet of the workbook")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Preview the tree without writing")
	f.StringVar(&flags.courseCode, "course-code", "", "Course code to use instead of the one derived from video URLs")
	f.BoolVar(&flags.strict, "strict", false, "Fail on lint warnings (duplicate lessons, missing course code, ...)")
	f.BoolVar(&flags.save, "save", false, "Save input, output, template and sheet as defaults")
	f.BoolVar(&flags.json, "json", false, "Print the run result as JSON")
	return cmd
}

func runGenerate(cmd *cobra.Command, ctx *commandContext, flags generateFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	input := firstNonEmpty(flags.input, cfg.Defaults.Input)
	sheet := firstNonEmpty(flags.sheet, cfg.Defaults.Sheet)
	templateName := firstNonEmpty(flags.template, cfg.Defaults.Template)
	output := cfg.Paths.OutputDir
	if strings.TrimSpace(flags.output) != "" {
		output, err = config.ExpandPath(strings.TrimSpace(flags.output))
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "generate", "output", flags.output, err)
		}
	}
	variant, err := generator.ParseVariant(templateName)
	if err != nil {
		return err
	}

	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	// Dry runs leave the state directory untouched.
	var store *history.Store
	if !flags.dryRun {
		store = openHistoryOrWarn(ctx, cfg, logger)
		if store != nil {
			defer store.Close()
		}
	}

	runner := workflow.NewRunner(cfg, store, logger)
	result, err := runner.Run(cmd.Context(), workflow.Request{
		Input:      input,
		Sheet:      sheet,
		AllSheets:  flags.allSheets,
		OutputRoot: output,
		Template:   variant,
		CourseCode: strings.TrimSpace(flags.courseCode),
		DryRun:     flags.dryRun,
		Strict:     flags.strict || cfg.Generator.Strict,
	})
	if err != nil {
		return err
	}

	if flags.json {
		if err := writeJSON(cmd, newRunView(result)); err != nil {
			return err
		}
	} else {
		printRun(cmd.OutOrStdout(), result, ctx.isVerbose())
	}

	runErr := result.Err()
	if flags.save && runErr == nil && !flags.dryRun {
		if err := saveDefaults(cmd, ctx, cfg, input, output, string(variant), sheet); err != nil {
			return err
		}
	}
	return runErr
}

// openHistoryOrWarn opens the history database. A database that cannot be
// opened is logged and the run proceeds unrecorded.
func openHistoryOrWarn(ctx *commandContext, cfg *config.Config, logger *slog.Logger) *history.Store {
	store, err := ctx.openHistory()
	if err != nil {
		logging.WarnWithContext(logger, "history database unavailable", "history_open_failed",
			logging.Error(err),
			logging.String("path", cfg.HistoryDBPath()),
			logging.String(logging.FieldErrorHint, "run contentgen doctor, or move the database aside"),
			logging.String(logging.FieldImpact, "run is not recorded in contentgen history"),
		)
		return nil
	}
	return store
}

func saveDefaults(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, input, output, template, sheet string) error {
	path := ctx.configPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "config", "save", "", err)
		}
		path = defaultPath
	}
	updated := *cfg
	updated.Defaults.Input = input
	updated.Defaults.Template = template
	updated.Defaults.Sheet = sheet
	updated.Paths.OutputDir = output
	if err := config.Save(path, &updated); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved defaults to %s\n", path)
	return nil
}

func printRun(w io.Writer, result *workflow.Result, verbose bool) {
	colorize := shouldColorize(w)
	for i, outcome := range result.Outcomes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := "Course"
		if outcome.Sheet != "" {
			title = "Sheet " + outcome.Sheet
		}
		for _, line := range renderSectionHeader(title, colorize) {
			fmt.Fprintln(w, line)
		}

		if outcome.Err != nil {
			fmt.Fprintln(w, renderStatusLine("Result", statusError, outcome.Err.Error(), colorize))
			continue
		}

		report := outcome.Report
		fmt.Fprintln(w, renderField("Course code", report.CourseCode))
		fmt.Fprintln(w, renderField("Subject", report.Subject))
		fmt.Fprintln(w, renderField("Lessons", strconv.Itoa(report.TotalLessons)))
		fmt.Fprintln(w, renderField("Chapters", strconv.Itoa(report.Chapters)))
		fmt.Fprintln(w, renderField("Template", string(report.Variant)))
		fmt.Fprintln(w, renderField("Output", report.OutputDir))
		for _, warning := range outcome.Warnings {
			fmt.Fprintln(w, renderStatusLine("Warning", statusWarn, warning.String(), colorize))
		}

		if verbose && outcome.Course != nil && len(outcome.Course.Chapters) > 0 {
			rows := make([][]string, 0, len(outcome.Course.Chapters))
			for _, chapter := range outcome.Course.Chapters {
				rows = append(rows, []string{
					strconv.Itoa(chapter.Number),
					chapter.Name,
					strconv.Itoa(chapter.LessonStart),
					strings.Join(chapter.Lessons, " "),
				})
			}
			fmt.Fprintln(w, renderTable([]string{"Chapter", "Name", "Starts", "Lessons"}, rows, []columnAlignment{alignRight, alignLeft, alignRight, alignLeft}))
		}

		if report.DryRun {
			fmt.Fprintln(w, "Dry run, nothing written:")
			writeTree(w, buildTree(report.CourseCode, report.Entries))
			continue
		}
		fmt.Fprintln(w, renderStatusLine("Result", statusOK, fmt.Sprintf("%s generated", report.CourseCode), colorize))
		if outcome.HistoryFile != "" {
			fmt.Fprintln(w, renderField("History", outcome.HistoryFile))
		}
	}

	if len(result.Outcomes) > 1 {
		fmt.Fprintf(w, "\n%d succeeded, %d failed (run %s)\n", result.Succeeded(), result.Failed(), result.RunID)
	}
}

type runView struct {
	RunID     string        `json:"run_id"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Units     []outcomeView `json:"units"`
}

type outcomeView struct {
	Sheet       string            `json:"sheet,omitempty"`
	Status      string            `json:"status"`
	Error       string            `json:"error,omitempty"`
	ErrorKind   string            `json:"error_kind,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	Report      *generator.Report `json:"report,omitempty"`
	HistoryID   int64             `json:"history_id,omitempty"`
	HistoryFile string            `json:"history_file,omitempty"`
}

func newRunView(result *workflow.Result) runView {
	view := runView{
		RunID:     result.RunID,
		Succeeded: result.Succeeded(),
		Failed:    result.Failed(),
		Units:     make([]outcomeView, 0, len(result.Outcomes)),
	}
	for _, outcome := range result.Outcomes {
		unit := outcomeView{
			Sheet:       outcome.Sheet,
			Status:      "succeeded",
			Report:      outcome.Report,
			HistoryID:   outcome.HistoryID,
			HistoryFile: outcome.HistoryFile,
		}
		if outcome.Report != nil && outcome.Report.DryRun {
			unit.Status = "dry_run"
		}
		if outcome.Err != nil {
			unit.Status = "failed"
			unit.Error = outcome.Err.Error()
			unit.ErrorKind = services.Kind(outcome.Err)
		}
		for _, w := range outcome.Warnings {
			unit.Warnings = append(unit.Warnings, w.String())
		}
		view.Units = append(view.Units, unit)
	}
	return view
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
