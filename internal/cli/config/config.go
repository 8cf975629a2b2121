package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/internal/infra/confloader"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

// CLIConfig is the configuration for ordmap-cli.
type CLIConfig struct {
	Output      string    `koanf:"output" yaml:"output"` // table, json, yaml
	Buckets     int       `koanf:"buckets" yaml:"buckets"`
	Log         LogConfig `koanf:"log" yaml:"log"`
	HistoryFile string    `koanf:"history_file" yaml:"history_file"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output:      "table",
		Buckets:     ordmap.DefaultBucketCount,
		Log:         LogConfig{Level: "warn", Format: "text"},
		HistoryFile: filepath.Join(homeDir(), ".ordmap", "history"),
	}
}

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ".ordmap", "cli.yaml")
}

// Load resolves the configuration. An empty path uses DefaultConfigPath and
// is skipped when that file does not exist; an explicit path must exist.
// Overrides use dotted keys, e.g. "log.level".
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithDefaults(Default().flatten()),
		confloader.WithOverrides(overrides),
	)

	cfg := &CLIConfig{}
	if err := loader.Load(cfg); err != nil {
		return nil, domain.ErrInvalidConfig.WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Settings returns the effective settings as dotted keys in a fixed order.
func (c *CLIConfig) Settings() *ordmap.Map[string, string] {
	m := ordmap.New[string, string]()
	m.Add("output", c.Output)
	m.Add("buckets", strconv.Itoa(c.Buckets))
	m.Add("log.level", c.Log.Level)
	m.Add("log.format", c.Log.Format)
	m.Add("history_file", c.HistoryFile)
	return m
}

// Save writes the configuration as YAML, creating the directory if needed.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks that all settings are usable.
func (c *CLIConfig) Validate() error {
	if !slices.Contains([]string{"table", "json", "yaml"}, c.Output) {
		return domain.ErrInvalidConfig.WithDetailsf("output must be table, json or yaml, got %q", c.Output)
	}
	if c.Buckets < 1 {
		return domain.ErrInvalidConfig.WithDetailsf("buckets must be positive, got %d", c.Buckets)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return domain.ErrInvalidConfig.WithDetailsf("unknown log level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return domain.ErrInvalidConfig.WithDetailsf("unknown log format %q", c.Log.Format)
	}
	return nil
}

func (c *CLIConfig) flatten() map[string]any {
	return map[string]any{
		"output":       c.Output,
		"buckets":      c.Buckets,
		"log.level":    c.Log.Level,
		"log.format":   c.Log.Format,
		"history_file": c.HistoryFile,
	}
}

func homeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return dir
}
