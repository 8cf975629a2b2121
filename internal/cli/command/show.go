package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/cli/output"
	"github.com/yndnr/ordmap-go/internal/core/domain"
)

// ShowCommand prints a pair file in insertion order.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"ls"},
		Usage:     "Print the pairs of a file in insertion order",
		ArgsUsage: "FILE",
		Action:    runShow,
	}
}

func runShow(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "FILE")
	}
	m, err := loadFile(c, c.Args().First())
	if err != nil {
		return err
	}
	GetEnv(c).Metrics.Observe("show")
	return render(c, output.PairsOf(m))
}

// GetCommand prints the value stored under a key.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the value of KEY",
		ArgsUsage: "FILE KEY",
		Action:    runGet,
	}
}

func runGet(c *cli.Context) error {
	if c.NArg() != 2 {
		return usageError(c, "FILE KEY")
	}
	m, err := loadFile(c, c.Args().Get(0))
	if err != nil {
		return err
	}

	key := c.Args().Get(1)
	GetEnv(c).Metrics.Observe("get")
	value, ok := m.Get(key)
	if !ok {
		return domain.ErrKeyNotFound.WithDetailsf("%q", key)
	}
	return render(c, value)
}
