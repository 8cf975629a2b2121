package command

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/cli/output"
	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/internal/pairfile"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

// MergeCommand concatenates pair files, later files winning.
func MergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "Concatenate files; a key from a later file replaces the value and moves to the end",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the result to a pair file instead of printing it",
			},
		},
		Action: runMerge,
	}
}

func runMerge(c *cli.Context) error {
	maps := make([]*ordmap.Map[string, string], 0, c.NArg())
	for _, path := range c.Args().Slice() {
		m, err := loadFile(c, path)
		if err != nil {
			return err
		}
		maps = append(maps, m)
	}

	merged := ordmap.Merge(maps...)
	env := GetEnv(c)
	env.Metrics.Observe("merge")
	env.Logger.Debug("files merged", "files", len(maps), "entries", merged.Len())

	if out := c.String("out"); out != "" {
		return pairfile.Save(out, merged)
	}
	return render(c, output.PairsOf(merged))
}

// FilterCommand keeps the pairs matching prefix predicates.
func FilterCommand() *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "Keep pairs whose key and value match the given prefixes",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key-prefix", Usage: "Keep keys starting with this prefix"},
			&cli.StringFlag{Name: "value-prefix", Usage: "Keep values starting with this prefix"},
			&cli.BoolFlag{Name: "invert", Usage: "Keep the pairs that do not match"},
		},
		Action: runFilter,
	}
}

func runFilter(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "FILE")
	}
	m, err := loadFile(c, c.Args().First())
	if err != nil {
		return err
	}

	keyPrefix, valuePrefix, invert := c.String("key-prefix"), c.String("value-prefix"), c.Bool("invert")
	filtered := m.Filter(func(k, v string) bool {
		match := strings.HasPrefix(k, keyPrefix) && strings.HasPrefix(v, valuePrefix)
		return match != invert
	})

	GetEnv(c).Metrics.Observe("filter")
	return render(c, output.PairsOf(filtered))
}

// MapCommand applies a function to every value.
func MapCommand() *cli.Command {
	return &cli.Command{
		Name:      "map",
		Usage:     "Apply a function to every value, keeping keys and order",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "fn",
				Usage:    "Function: upper, lower, trim, len",
				Required: true,
			},
		},
		Action: runMap,
	}
}

var transforms = map[string]func(string) string{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
	"len": func(s string) string {
		return strconv.Itoa(utf8.RuneCountInString(s))
	},
}

func runMap(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "FILE")
	}
	fn, ok := transforms[c.String("fn")]
	if !ok {
		return domain.ErrUnknownTransform.WithDetailsf("%q (want upper, lower, trim or len)", c.String("fn"))
	}

	m, err := loadFile(c, c.Args().First())
	if err != nil {
		return err
	}

	GetEnv(c).Metrics.Observe("map")
	return render(c, output.PairsOf(ordmap.Transform(m, fn)))
}
