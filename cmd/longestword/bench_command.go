package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"longestword/internal/suite"
)

func newBenchCommand(ctx *commandContext) *cobra.Command {
	var casesPath string
	var repeat int
	var skipBuiltin bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the case suite and report correctness and timing",
		Long: "Run every suite case through the selector, timing each call.\n" +
			"Wrong answers are reported but do not fail the command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cases, err := ctx.suiteCases(casesPath, skipBuiltin)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("repeat") {
				repeat = cfg.Suite.Repeat
			}
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1, got %d", repeat)
			}

			report, err := suite.NewRunner(logger, repeat).Run(cmd.Context(), cases)
			if err != nil {
				return err
			}

			if ctx.useJSON(jsonOut) {
				return writeJSON(cmd, report)
			}
			renderBenchReport(cmd, report, ctx.colorize(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.Flags().StringVar(&casesPath, "cases", "", "TOML file with extra [[case]] tables")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "Calls per case; reported time is the mean")
	cmd.Flags().BoolVar(&skipBuiltin, "no-builtin", false, "Skip the built-in cases")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func renderBenchReport(cmd *cobra.Command, report suite.Report, colorize bool) {
	out := cmd.OutOrStdout()
	for i, result := range report.Results {
		fmt.Fprintln(out, renderCaseLine(i, result.Correct, result.Elapsed, colorize))
	}

	rows := make([][]string, 0, len(report.Results))
	for i, result := range report.Results {
		rows = append(rows, []string{
			strconv.Itoa(i),
			result.Case.Name,
			result.Case.ExpectedLabel(),
			result.GotLabel(),
			verdictLabel(result.Correct),
			formatElapsed(result.Elapsed),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Case", "Expected", "Got", "Result", "Time"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))

	fmt.Fprintf(out, "Run %s took %s\n", report.RunID, formatElapsed(report.Elapsed))
	fmt.Fprintf(out, "Correct/Wrong answer count: %d/%d\n", report.Correct, report.Wrong)
}
