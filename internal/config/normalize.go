package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	c.normalizeOutput()
	return c.normalizeSuite()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv(logLevelEnv); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
}

func (c *Config) normalizeSuite() error {
	c.Suite.CasesPath = strings.TrimSpace(c.Suite.CasesPath)
	if c.Suite.CasesPath != "" {
		expanded, err := expandPath(c.Suite.CasesPath)
		if err != nil {
			return fmt.Errorf("suite.cases_path: %w", err)
		}
		c.Suite.CasesPath = expanded
	}
	if c.Suite.Repeat == 0 {
		c.Suite.Repeat = defaultSuiteRepeat
	}
	return nil
}
