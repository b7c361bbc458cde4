package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"longestword/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "longestword", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Output.Format != config.OutputTable || cfg.Output.Color != config.ColorAuto {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if !cfg.Suite.IncludeBuiltin || cfg.Suite.Repeat != 1 || cfg.Suite.CasesPath != "" {
		t.Fatalf("unexpected suite defaults: %+v", cfg.Suite)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "longestword.toml")

	type payload struct {
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Suite struct {
			CasesPath      string `toml:"cases_path"`
			IncludeBuiltin bool   `toml:"include_builtin"`
			Repeat         int    `toml:"repeat"`
		} `toml:"suite"`
	}
	custom := payload{}
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Debug"
	custom.Suite.CasesPath = filepath.Join(tempDir, "cases.toml")
	custom.Suite.Repeat = 25

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Logging.Format != config.LogFormatJSON {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized debug level, got %q", cfg.Logging.Level)
	}
	if cfg.Suite.IncludeBuiltin {
		t.Fatal("expected include_builtin=false from file")
	}
	if cfg.Suite.Repeat != 25 {
		t.Fatalf("unexpected repeat: %d", cfg.Suite.Repeat)
	}
	if cfg.Suite.CasesPath != custom.Suite.CasesPath {
		t.Fatalf("unexpected cases path: %q", cfg.Suite.CasesPath)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Output.Format != config.OutputTable {
		t.Fatalf("expected defaults, got %+v", cfg.Output)
	}
}

func TestLoadLogLevelFromEnv(t *testing.T) {
	t.Setenv("LONGESTWORD_LOG_LEVEL", "WARN")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[output]\ncolour = \"never\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "bad log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "bad log level", mutate: func(c *config.Config) { c.Logging.Level = "trace" }, wantErr: "logging.level"},
		{name: "bad output format", mutate: func(c *config.Config) { c.Output.Format = "csv" }, wantErr: "output.format"},
		{name: "bad color", mutate: func(c *config.Config) { c.Output.Color = "sometimes" }, wantErr: "output.color"},
		{name: "negative repeat", mutate: func(c *config.Config) { c.Suite.Repeat = -1 }, wantErr: "suite.repeat"},
		{name: "no cases", mutate: func(c *config.Config) { c.Suite.IncludeBuiltin = false }, wantErr: "suite.cases_path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Suite.Repeat != 1 || !cfg.Suite.IncludeBuiltin {
		t.Fatalf("unexpected sample suite settings: %+v", cfg.Suite)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/cases.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "cases.toml") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
