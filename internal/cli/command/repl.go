package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/cli/repl"
	"github.com/yndnr/ordmap-go/internal/infra/shutdown"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

const (
	shutdownTimeout = 2 * time.Second
	interruptedCode = 130
)

// REPLCommand starts an interactive session over one map.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:      "repl",
		Aliases:   []string{"shell"},
		Usage:     "Start an interactive session; FILE is loaded first if given",
		ArgsUsage: "[FILE]",
		Action:    runREPL,
	}
}

func runREPL(c *cli.Context) error {
	if c.NArg() > 1 {
		return usageError(c, "[FILE]")
	}

	env := GetEnv(c)
	m := ordmap.NewWithBuckets[string, string](env.Config.Buckets)
	if c.NArg() == 1 {
		loaded, err := loadFile(c, c.Args().First())
		if err != nil {
			return err
		}
		m = loaded
	}

	r := repl.New(
		repl.WithIO(stdin(c), c.App.Writer),
		repl.WithMap(m),
		repl.WithBuckets(env.Config.Buckets),
		repl.WithFormatter(env.Formatter),
		repl.WithHistory(repl.NewHistory(env.Config.HistoryFile)),
		repl.WithMetrics(env.Metrics),
		repl.WithLogger(env.Logger),
	)

	// An interrupt leaves Run blocked on input, so history is saved by the
	// hook and the process exits from the signal goroutine.
	h := shutdown.NewHandler(shutdownTimeout)
	h.OnShutdown(func(context.Context) error { return r.Close() })

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	go func() {
		sig, err := h.Wait(ctx)
		if sig == nil {
			return
		}
		env.Logger.Info("interrupted", "signal", sig.String())
		if err != nil {
			env.Logger.Warn("shutdown hooks failed", "error", err)
		}
		cli.OsExiter(interruptedCode)
	}()

	return r.Run()
}
