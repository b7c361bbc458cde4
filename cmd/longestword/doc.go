// Package main hosts the longestword CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the word selector (pick), the case
// suite with its timing report (bench, cases), and configuration
// scaffolding (config init, config validate). Configuration resolution and
// logger construction live in commandContext so subcommands only deal with
// presentation.
package main
