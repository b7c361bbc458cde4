package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateSuite()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("output.format: unsupported value %q (want table or json)", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always, or never)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateSuite() error {
	if c.Suite.Repeat < 1 {
		return errors.New("suite.repeat must be at least 1")
	}
	if !c.Suite.IncludeBuiltin && c.Suite.CasesPath == "" {
		return errors.New("suite.cases_path is required when suite.include_builtin is false")
	}
	return nil
}
