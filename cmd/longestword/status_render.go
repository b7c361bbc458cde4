package main

import (
	"fmt"
	"strconv"
	"time"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func verdictLabel(correct bool) string {
	if correct {
		return "Correct"
	}
	return "Wrong"
}

func renderVerdict(correct bool, colorize bool) string {
	label := verdictLabel(correct)
	if !colorize {
		return label
	}
	if correct {
		return ansiGreen + label + ansiReset
	}
	return ansiRed + label + ansiReset
}

func renderCaseLine(index int, correct bool, elapsed time.Duration, colorize bool) string {
	return fmt.Sprintf("Test %d - %s, took: %s", index, renderVerdict(correct, colorize), formatElapsed(elapsed))
}

// formatElapsed prints milliseconds with microsecond precision so sub-ms calls stay readable.
func formatElapsed(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 4, 64) + "ms"
}
