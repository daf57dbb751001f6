package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"contentgen/internal/preflight"
	"contentgen/internal/services"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check directories, history database and input before a run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			results := preflight.RunAll(cmd.Context(), cfg, firstNonEmpty(input, cfg.Defaults.Input))
			failed := 0
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if failed > 0 {
				return services.Wrap(services.ErrConfiguration, "doctor", "", fmt.Sprintf("%d of %d checks failed", failed, len(results)), nil)
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Also check this sheet path or URL")
	return cmd
}
