package repl

import (
	"slices"
	"strconv"
	"strings"

	"github.com/yndnr/ordmap-go/internal/cli/output"
	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/internal/pairfile"
	"github.com/yndnr/ordmap-go/internal/telemetry/logger"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type command struct {
	name  string
	usage string
	help  string
	run   func(r *REPL, args string) error
}

func commandTable() []command {
	return []command{
		{"add", "add KEY VALUE", "insert or update a pair", (*REPL).cmdAdd},
		{"set", "set KEY VALUE", "alias for add", (*REPL).cmdAdd},
		{"get", "get KEY", "print the value for KEY", (*REPL).cmdGet},
		{"remove", "remove KEY", "delete KEY", (*REPL).cmdRemove},
		{"has", "has KEY", "report whether KEY is present", (*REPL).cmdHas},
		{"size", "size", "print the number of pairs", (*REPL).cmdSize},
		{"list", "list", "print all pairs in insertion order", (*REPL).cmdList},
		{"clear", "clear", "remove all pairs", (*REPL).cmdClear},
		{"load", "load FILE", "replace the map with the pairs in FILE", (*REPL).cmdLoad},
		{"merge", "merge FILE", "concat the pairs in FILE onto the map", (*REPL).cmdMerge},
		{"save", "save FILE", "write the map to FILE", (*REPL).cmdSave},
		{"watch", "watch FILE", "load FILE and reload it on every write", (*REPL).cmdWatch},
		{"stats", "stats", "print metrics in Prometheus text format", (*REPL).cmdStats},
		{"history", "history", "print command history", (*REPL).cmdHistory},
		{"loglevel", "loglevel [LEVEL]", "print or change the log level", (*REPL).cmdLogLevel},
		{"help", "help", "show this help", (*REPL).cmdHelp},
	}
}

func requireArg(args, name string) (string, error) {
	if args == "" {
		return "", domain.ErrMissingArgument.WithDetails(name)
	}
	return args, nil
}

func (r *REPL) cmdAdd(args string) error {
	key, value := cut(args)
	if _, err := requireArg(key, "KEY"); err != nil {
		return err
	}
	r.withMap(func(m *ordmap.Map[string, string]) {
		m.Add(key, value)
	})
	return nil
}

func (r *REPL) cmdGet(args string) error {
	key, err := requireArg(args, "KEY")
	if err != nil {
		return err
	}

	var value string
	var ok bool
	r.withMap(func(m *ordmap.Map[string, string]) {
		value, ok = m.Get(key)
	})
	if !ok {
		return domain.ErrKeyNotFound.WithDetailsf("%q", key)
	}
	return r.format(value)
}

// cmdRemove deletes a key. An absent key is a no-op, as in Map.Remove.
func (r *REPL) cmdRemove(args string) error {
	key, err := requireArg(args, "KEY")
	if err != nil {
		return err
	}
	r.withMap(func(m *ordmap.Map[string, string]) {
		if !m.Remove(key) {
			r.logger.Debug("remove of absent key", "key", key)
		}
	})
	return nil
}

func (r *REPL) cmdHas(args string) error {
	key, err := requireArg(args, "KEY")
	if err != nil {
		return err
	}
	var ok bool
	r.withMap(func(m *ordmap.Map[string, string]) {
		ok = m.Has(key)
	})
	return r.format(ok)
}

func (r *REPL) cmdSize(string) error {
	n, _ := r.stats()
	return r.format(n)
}

func (r *REPL) cmdList(string) error {
	var pairs output.Pairs
	r.withMap(func(m *ordmap.Map[string, string]) {
		pairs = output.PairsOf(m)
	})
	return r.format(pairs)
}

func (r *REPL) cmdClear(string) error {
	r.withMap(func(m *ordmap.Map[string, string]) {
		m.Clear()
	})
	return nil
}

func (r *REPL) cmdLoad(args string) error {
	path, err := requireArg(args, "FILE")
	if err != nil {
		return err
	}
	m, err := pairfile.Load(path, r.buckets)
	if err != nil {
		return err
	}
	r.replace(m)
	r.logger.Debug("map loaded", "path", path, "entries", m.Len())
	return nil
}

func (r *REPL) cmdMerge(args string) error {
	path, err := requireArg(args, "FILE")
	if err != nil {
		return err
	}
	other, err := pairfile.Load(path, r.buckets)
	if err != nil {
		return err
	}
	r.withMap(func(m *ordmap.Map[string, string]) {
		m.Concat(other)
	})
	return nil
}

func (r *REPL) cmdSave(args string) error {
	path, err := requireArg(args, "FILE")
	if err != nil {
		return err
	}
	r.withMap(func(m *ordmap.Map[string, string]) {
		err = pairfile.Save(path, m)
	})
	return err
}

func (r *REPL) cmdWatch(args string) error {
	if err := r.cmdLoad(args); err != nil {
		return err
	}
	if err := r.watch(args); err != nil {
		return domain.ErrPairFileIO.WithCause(err)
	}
	r.printf("watching %s\n", args)
	return nil
}

func (r *REPL) cmdStats(string) error {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	return r.metrics.WriteText(r.output)
}

func (r *REPL) cmdHistory(string) error {
	table := &output.Table{Headers: []string{"#", "COMMAND"}}
	for i, entry := range r.history.Entries() {
		table.AddRow(strconv.Itoa(i+1), entry)
	}
	r.outMu.Lock()
	defer r.outMu.Unlock()
	return table.Render(r.output)
}

func (r *REPL) cmdLogLevel(args string) error {
	if args == "" {
		return r.format(logger.GetLevel())
	}
	level := strings.ToLower(args)
	if !slices.Contains(logLevels, level) {
		return domain.ErrInvalidArgument.WithDetailsf("unknown log level %q (want %s)", args, strings.Join(logLevels, ", "))
	}
	logger.SetLevel(level)
	r.logger.Info("log level changed", "level", level)
	return nil
}

func (r *REPL) cmdHelp(string) error {
	table := &output.Table{}
	for _, c := range r.commands {
		table.AddRow(c.usage, c.help)
	}
	table.AddRow("exit", "leave the session")
	r.outMu.Lock()
	defer r.outMu.Unlock()
	return table.RenderWithOptions(r.output, true)
}
