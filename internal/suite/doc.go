// Package suite runs word-selection cases and reports correctness and timing.
//
// A suite is a list of Case values, either the built-in scenarios or cases
// decoded from a TOML file of [[case]] tables. Runner calls the selector for
// every case, records the mean wall-clock time per call, and produces a
// Report. Wrong answers are counted in the report, never returned as errors.
package suite
