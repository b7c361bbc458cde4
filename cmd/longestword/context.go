package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"longestword/internal/config"
	"longestword/internal/logging"
	"longestword/internal/suite"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// suiteCases assembles the builtin cases and any extra file cases. A
// non-empty override replaces the configured cases_path.
func (c *commandContext) suiteCases(override string, skipBuiltin bool) ([]suite.Case, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	path := cfg.Suite.CasesPath
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		if path, err = config.ExpandPath(trimmed); err != nil {
			return nil, fmt.Errorf("resolve cases path: %w", err)
		}
	}

	var cases []suite.Case
	if cfg.Suite.IncludeBuiltin && !skipBuiltin {
		cases = append(cases, suite.Builtin()...)
	}
	if path != "" {
		extra, err := suite.LoadCases(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, extra...)
	}
	if len(cases) == 0 {
		return nil, errors.New("no cases to run; pass --cases or set suite.cases_path")
	}
	return cases, nil
}

func (c *commandContext) useJSON(flag bool) bool {
	if flag {
		return true
	}
	cfg, err := c.ensureConfig()
	return err == nil && cfg.Output.Format == config.OutputJSON
}

func (c *commandContext) colorize(writer io.Writer) bool {
	cfg, err := c.ensureConfig()
	if err != nil {
		return false
	}
	switch cfg.Output.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
