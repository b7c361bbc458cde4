// Package config loads, normalizes, and validates longestword configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LONGESTWORD_LOG_LEVEL environment fallback. The
// selection rules themselves are fixed; configuration only shapes logging,
// report output, and which suite cases the bench command runs.
package config
