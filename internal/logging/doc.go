// Package logging assembles structured slog loggers for the longestword CLI
// and suite runner.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so suite runs tag every line
// with their run ID. A no-op logger is provided for tests and library callers
// that do not care about log output.
package logging
