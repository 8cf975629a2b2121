package command

import (
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/ordmap-go/internal/telemetry/metric"
)

// Summary describes the bucket layout of a map.
type Summary struct {
	Entries      int   `json:"entries" yaml:"entries"`
	Buckets      int   `json:"buckets" yaml:"buckets"`
	LongestChain int   `json:"longest_chain" yaml:"longest_chain"`
	Chains       []int `json:"chains" yaml:"chains" table:"wide"`
}

// StatsCommand reports how a file's keys spread over the buckets.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Print bucket metrics for a file in Prometheus text format",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Print a summary with the selected output format instead",
			},
		},
		Action: runStats,
	}
}

func runStats(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "FILE")
	}
	path := c.Args().First()
	m, err := loadFile(c, path)
	if err != nil {
		return err
	}

	env := GetEnv(c)
	env.Metrics.Observe("stats")

	if c.Bool("summary") {
		s := Summary{Entries: m.Len(), Buckets: m.BucketCount()}
		for _, b := range m.Stats() {
			s.Chains = append(s.Chains, b.Count)
		}
		if len(s.Chains) > 0 {
			s.LongestChain = slices.Max(s.Chains)
		}
		return render(c, s)
	}

	collector := metric.NewMapCollector(path, metric.StatsOf(m))
	if err := env.Metrics.Register(collector); err != nil {
		return err
	}
	defer env.Metrics.Unregister(collector)
	return env.Metrics.WriteText(c.App.Writer)
}
