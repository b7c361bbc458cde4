package config

const (
	// LogFormatConsole renders human-readable log lines.
	LogFormatConsole = "console"
	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON = "json"

	// OutputTable renders reports as tables.
	OutputTable = "table"
	// OutputJSON renders reports as indented JSON.
	OutputJSON = "json"

	// ColorAuto enables color only when stdout is a terminal.
	ColorAuto = "auto"
	// ColorAlways forces ANSI color.
	ColorAlways = "always"
	// ColorNever disables ANSI color.
	ColorNever = "never"
)

const (
	defaultConfigPath     = "~/.config/longestword/config.toml"
	projectConfigName     = "longestword.toml"
	defaultLogFormat      = LogFormatConsole
	defaultLogLevel       = "info"
	defaultOutputFormat   = OutputTable
	defaultColor          = ColorAuto
	defaultSuiteRepeat    = 1
	defaultIncludeBuiltin = true
	logLevelEnv           = "LONGESTWORD_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultColor,
		},
		Suite: Suite{
			IncludeBuiltin: defaultIncludeBuiltin,
			Repeat:         defaultSuiteRepeat,
		},
	}
}
