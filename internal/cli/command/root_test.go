package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/cli/config"
	"github.com/yndnr/ordmap-go/internal/core/domain"
)

// run executes the app with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"ordmap-cli"}, args...))
	return out.String(), err
}

// writeFile creates a file in a per-test directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestApp(t *testing.T) {
	app := App()

	if app.Name != "ordmap-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "ordmap-cli")
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"show", "get", "merge", "filter", "map", "reduce", "stats", "repl", "config"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range globalFlags() {
		flagNames[flag.Names()[0]] = true
	}

	for _, name := range []string{"config", "output", "buckets", "wide", "no-headers", "log-level", "verbose"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestApp_InvalidConfig(t *testing.T) {
	path := writeFile(t, "pairs.yaml", "a: 1\n")

	tests := []struct {
		name string
		args []string
	}{
		{"output", []string{"-o", "xml", "show", path}},
		{"buckets", []string{"-b", "0", "show", path}},
		{"log level", []string{"--log-level", "trace", "show", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Run() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApp_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "cli.yaml", "output: yaml\n")
	path := writeFile(t, "pairs.yaml", "b: 1\na: 2\n")

	out, err := run(t, "", "--config", cfg, "show", path)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "b: \"1\"\na: \"2\"\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestApp_Usage(t *testing.T) {
	tests := [][]string{
		{"show"},
		{"get", "only-file"},
		{"filter"},
		{"map", "--fn", "upper"},
		{"reduce", "--op", "sum"},
		{"stats"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, "", args...)
			if !errors.Is(err, domain.ErrMissingArgument) {
				t.Errorf("Run(%v) error = %v, want ErrMissingArgument", args, err)
			}
		})
	}
}

func TestGetEnv_Default(t *testing.T) {
	env := GetEnv(cli.NewContext(App(), nil, nil))
	if env.Config == nil || env.Formatter == nil || env.Metrics == nil || env.Logger == nil {
		t.Errorf("GetEnv() = %+v, want every field set", env)
	}
}

func TestSetup_LogsTaggedWithCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFile(t, "pairs.yaml", "a: 1\n")

	var out, errOut bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errOut

	if err := app.Run([]string{"ordmap-cli", "-V", "show", path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(errOut.String(), "op=show") {
		t.Errorf("debug log not tagged with the command:\n%s", errOut.String())
	}
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "", "-o", "json", "-b", "4", "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}

	for _, s := range []string{`"output"`, `"json"`, `"buckets"`, `"4"`, `"log.level"`} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %s:\n%s", s, out)
		}
	}
	if strings.Index(out, `"output"`) > strings.Index(out, `"history_file"`) {
		t.Errorf("settings out of order:\n%s", out)
	}
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	out, err := run(t, "", "-b", "7", "-o", "yaml", "config", "save", path)
	if err != nil {
		t.Fatalf("config save error = %v", err)
	}
	if out != "saved "+path+"\n" {
		t.Errorf("output = %q, want %q", out, "saved "+path+"\n")
	}

	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.Buckets != 7 || cfg.Output != "yaml" {
		t.Errorf("saved config = %+v, want buckets 7 and output yaml", cfg)
	}
}

func TestConfigSave_TooManyArgs(t *testing.T) {
	_, err := run(t, "", "config", "save", "a", "b")
	if !errors.Is(err, domain.ErrMissingArgument) {
		t.Errorf("error = %v, want ErrMissingArgument", err)
	}
}
