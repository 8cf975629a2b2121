package command

import (
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/pkg/monoid"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

// ReduceCommand folds all values into one.
func ReduceCommand() *cli.Command {
	return &cli.Command{
		Name:      "reduce",
		Usage:     "Fold all values into a single result",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "Operation: sum, product, min, max, join",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "sep",
				Usage: "Separator for join",
				Value: ",",
			},
		},
		Action: runReduce,
	}
}

func runReduce(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "FILE")
	}
	m, err := loadFile(c, c.Args().First())
	if err != nil {
		return err
	}

	result, err := reduce(m, c.String("op"), c.String("sep"))
	if err != nil {
		return err
	}
	GetEnv(c).Metrics.Observe("reduce")
	return render(c, result)
}

// reduce applies op to the values of m. sum, product and join have an
// identity and accept an empty map; min and max do not.
func reduce(m *ordmap.Map[string, string], op, sep string) (any, error) {
	if op == "join" {
		j := monoid.Join(sep)
		return ordmap.Fold(m, j.Append, j.Empty()), nil
	}

	var combine func(a, b float64) float64
	switch op {
	case "sum", "product":
	case "min":
		combine = math.Min
	case "max":
		combine = math.Max
	default:
		return nil, domain.ErrUnknownReducer.WithDetailsf("%q (want sum, product, min, max or join)", op)
	}

	nums, err := parseNumbers(m)
	if err != nil {
		return nil, err
	}

	switch op {
	case "sum":
		s := monoid.Sum[float64]()
		return ordmap.Fold(nums, s.Append, s.Empty()), nil
	case "product":
		p := monoid.Product[float64]()
		return ordmap.Fold(nums, p.Append, p.Empty()), nil
	}

	v, ok := ordmap.Reduce(nums, combine)
	if !ok {
		return nil, domain.ErrEmptyReduce.WithDetailsf("%s of no values", op)
	}
	return v, nil
}

// parseNumbers converts every value of m to float64.
func parseNumbers(m *ordmap.Map[string, string]) (*ordmap.Map[string, float64], error) {
	var bad error
	nums := ordmap.Transform(m, func(v string) float64 {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil && bad == nil {
			bad = domain.ErrInvalidNumber.WithDetailsf("%q", v).WithCause(err)
		}
		return f
	})
	if bad != nil {
		return nil, bad
	}
	return nums, nil
}
