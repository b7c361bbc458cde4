package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"longestword/internal/logging"
	"longestword/internal/suite"
	"longestword/internal/wordselect"
)

type pickOutput struct {
	Input  string `json:"input"`
	Word   string `json:"word"`
	Found  bool   `json:"found"`
	Vowels int    `json:"vowels"`
}

func newPickCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "pick [text...]",
		Short: "Print the longest word of the given text (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := pickInput(cmd, args)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			word, found := wordselect.LongestWord(text)
			logging.NewComponentLogger(logger, "pick").Debug("word selected",
				logging.Int("input_bytes", len(text)),
				logging.String("word", word),
				logging.Bool("found", found),
			)

			if ctx.useJSON(jsonOut) {
				return writeJSON(cmd, pickOutput{
					Input:  text,
					Word:   word,
					Found:  found,
					Vowels: wordselect.VowelCount(word),
				})
			}
			if !found {
				word = suite.NoneLabel
			}
			fmt.Fprintln(cmd.OutOrStdout(), word)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func pickInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
