package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/cli/config"
	"github.com/yndnr/ordmap-go/internal/cli/output"
	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/internal/infra/buildinfo"
	"github.com/yndnr/ordmap-go/internal/pairfile"
	"github.com/yndnr/ordmap-go/internal/telemetry/logger"
	"github.com/yndnr/ordmap-go/internal/telemetry/metric"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

const envKey = "env"

// Env is the state shared by all commands of one invocation.
type Env struct {
	Config    *config.CLIConfig
	Logger    logger.Logger
	Metrics   *metric.Registry
	Formatter output.Formatter
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "ordmap-cli",
		Usage:   "Inspect, merge and fold insertion-ordered key/value files",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ShowCommand(),
			GetCommand(),
			MergeCommand(),
			FilterCommand(),
			MapCommand(),
			ReduceCommand(),
			StatsCommand(),
			REPLCommand(),
			ConfigCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.ordmap/cli.yaml)",
			EnvVars: []string{"ORDMAP_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.IntFlag{
			Name:    "buckets",
			Aliases: []string{"b"},
			Usage:   "Bucket count of loaded maps",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (insertion positions)",
		},
		&cli.BoolFlag{
			Name:  "no-headers",
			Usage: "Omit table headers",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output (same as --log-level debug)",
		},
	}
}

// setup resolves configuration and stores the Env for the commands.
func setup(c *cli.Context) error {
	overrides := map[string]any{}
	if c.IsSet("output") {
		overrides["output"] = c.String("output")
	}
	if c.IsSet("buckets") {
		overrides["buckets"] = c.Int("buckets")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.Bool("verbose") {
		overrides["log.level"] = "debug"
	}

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	// Commands log through the context, tagged with the command name.
	c.Context = logger.WithOperation(logger.WithLogger(c.Context, log), c.Args().First())

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format, c.Bool("wide"))
	if tf, ok := formatter.(*output.TableFormatter); ok {
		tf.NoHeaders = c.Bool("no-headers")
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[envKey] = &Env{
		Config:    cfg,
		Logger:    logger.L(c.Context),
		Metrics:   metric.NewRegistry(),
		Formatter: formatter,
	}
	log.Debug("configuration resolved", "output", cfg.Output, "buckets", cfg.Buckets)
	return nil
}

// GetEnv retrieves the invocation state from context.
func GetEnv(c *cli.Context) *Env {
	if env, ok := c.App.Metadata[envKey].(*Env); ok {
		return env
	}
	return &Env{
		Config:    config.Default(),
		Logger:    logger.Default(),
		Metrics:   metric.NewRegistry(),
		Formatter: output.NewFormatter(output.FormatTable, false),
	}
}

// loadFile reads one pair file; "-" reads standard input.
func loadFile(c *cli.Context, path string) (*ordmap.Map[string, string], error) {
	env := GetEnv(c)

	var (
		m   *ordmap.Map[string, string]
		err error
	)
	if path == "-" {
		m, err = pairfile.Read(stdin(c), env.Config.Buckets)
	} else {
		m, err = pairfile.Load(path, env.Config.Buckets)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	env.Logger.Debug("pair file loaded", "path", path, "entries", m.Len())
	env.Metrics.Observe("load")
	return m, nil
}

// render prints data with the selected formatter.
func render(c *cli.Context, data any) error {
	return GetEnv(c).Formatter.Format(c.App.Writer, data)
}

func stdin(c *cli.Context) io.Reader {
	if c.App.Reader != nil {
		return c.App.Reader
	}
	return os.Stdin
}

// usageError reports a missing or extra positional argument.
func usageError(c *cli.Context, want string) error {
	return domain.ErrMissingArgument.WithDetailsf("usage: %s %s %s", c.App.Name, c.Command.Name, strings.TrimSpace(want))
}
