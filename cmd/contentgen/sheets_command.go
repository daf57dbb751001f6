package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"contentgen/internal/services"
	"contentgen/internal/source"
)

func newSheetsCommand(ctx *commandContext) *cobra.Command {
	var input string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List the sheets of a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			location := firstNonEmpty(input, cfg.Defaults.Input)
			if location == "" {
				return services.Wrap(services.ErrConfiguration, "sheets", "", "no input given (use -i)", nil)
			}
			names, err := source.ListSheets(location)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, names)
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Workbook has no sheets")
				return nil
			}
			rows := make([][]string, 0, len(names))
			for i, name := range names {
				rows = append(rows, []string{strconv.Itoa(i), name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Index", "Sheet"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Workbook path (.xlsx)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sheet names as JSON")
	return cmd
}
