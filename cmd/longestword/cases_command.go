package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCasesCommand(ctx *commandContext) *cobra.Command {
	var casesPath string
	var skipBuiltin bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List the cases bench would run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := ctx.suiteCases(casesPath, skipBuiltin)
			if err != nil {
				return err
			}
			if ctx.useJSON(jsonOut) {
				return writeJSON(cmd, cases)
			}
			rows := make([][]string, 0, len(cases))
			for i, c := range cases {
				rows = append(rows, []string{strconv.Itoa(i), c.Name, strconv.Quote(c.Input), c.ExpectedLabel()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Case", "Input", "Expected"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&casesPath, "cases", "", "TOML file with extra [[case]] tables")
	cmd.Flags().BoolVar(&skipBuiltin, "no-builtin", false, "Skip the built-in cases")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
