package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "table" {
		t.Errorf("Output = %q, want %q", cfg.Output, "table")
	}
	if cfg.Buckets != 10 {
		t.Errorf("Buckets = %d, want 10", cfg.Buckets)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if !strings.HasSuffix(cfg.HistoryFile, filepath.Join(".ordmap", "history")) {
		t.Errorf("HistoryFile = %q, want suffix .ordmap/history", cfg.HistoryFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !filepath.IsAbs(path) {
		t.Errorf("DefaultConfigPath() = %q, should be absolute", path)
	}
	if !strings.HasSuffix(path, filepath.Join(".ordmap", "cli.yaml")) {
		t.Errorf("DefaultConfigPath() = %q, should end with .ordmap/cli.yaml", path)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "output: json\nbuckets: 4\nlog:\n  level: debug\n")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Output = "json"
	want.Buckets = 4
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Priority(t *testing.T) {
	path := writeFile(t, "output: json\nbuckets: 4\n")
	t.Setenv("ORDMAP_BUCKETS", "7")
	t.Setenv("ORDMAP_OUTPUT", "yaml")

	cfg, err := Load(path, map[string]any{"output": "table"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Buckets != 7 {
		t.Errorf("Buckets = %d, want 7 (env over file)", cfg.Buckets)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want table (flag over env)", cfg.Output)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"output", map[string]any{"output": "xml"}},
		{"buckets", map[string]any{"buckets": 0}},
		{"log level", map[string]any{"log.level": "trace"}},
		{"log format", map[string]any{"log.format": "logfmt"}},
	}

	path := writeFile(t, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(path, tt.overrides)
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "cli.yaml")

	cfg := Default()
	cfg.Output = "yaml"
	cfg.Buckets = 3
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.HistoryFile = "/tmp/history"

	want := []ordmap.Pair[string, string]{
		{Key: "output", Value: "table"},
		{Key: "buckets", Value: "10"},
		{Key: "log.level", Value: "warn"},
		{Key: "log.format", Value: "text"},
		{Key: "history_file", Value: "/tmp/history"},
	}
	if diff := cmp.Diff(want, cfg.Settings().ToList()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
}
