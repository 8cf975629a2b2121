package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/cli/config"
	"github.com/yndnr/ordmap-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:      "save",
				Usage:     "Write the effective configuration; PATH defaults to --config or ~/.ordmap/cli.yaml",
				ArgsUsage: "[PATH]",
				Action:    configSave,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	return render(c, output.PairsOf(GetEnv(c).Config.Settings()))
}

func configSave(c *cli.Context) error {
	if c.NArg() > 1 {
		return usageError(c, "[PATH]")
	}

	path := c.Args().First()
	if path == "" {
		path = c.String("config")
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}

	env := GetEnv(c)
	if err := config.Save(env.Config, path); err != nil {
		return err
	}
	env.Logger.Debug("configuration saved", "path", path)
	_, err := fmt.Fprintf(c.App.Writer, "saved %s\n", path)
	return err
}
