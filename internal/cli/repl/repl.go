package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/yndnr/ordmap-go/internal/cli/output"
	"github.com/yndnr/ordmap-go/internal/core/domain"
	"github.com/yndnr/ordmap-go/internal/infra/confloader"
	"github.com/yndnr/ordmap-go/internal/pairfile"
	"github.com/yndnr/ordmap-go/internal/telemetry/logger"
	"github.com/yndnr/ordmap-go/internal/telemetry/metric"
	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

const prompt = "ordmap> "

// REPL is a Read-Eval-Print Loop over a single ordered map.
//
// The map is not safe for concurrent use, so every access goes through mu;
// file watch callbacks run on the watcher goroutine.
type REPL struct {
	input     io.Reader
	output    io.Writer
	formatter output.Formatter
	completer *Completer
	history   *History
	metrics   *metric.Registry
	collector *metric.MapCollector
	logger    logger.Logger
	buckets   int
	commands  []command

	mu sync.Mutex
	m  *ordmap.Map[string, string]

	outMu     sync.Mutex
	watcher   *confloader.Watcher
	closeOnce sync.Once
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithFormatter sets the formatter used by list and get.
func WithFormatter(f output.Formatter) Option {
	return func(r *REPL) {
		r.formatter = f
	}
}

// WithHistory sets the command history.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(reg *metric.Registry) Option {
	return func(r *REPL) {
		r.metrics = reg
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(r *REPL) {
		r.logger = l
	}
}

// WithBuckets sets the bucket count of maps created by the session.
func WithBuckets(n int) Option {
	return func(r *REPL) {
		r.buckets = n
	}
}

// WithMap starts the session with m instead of an empty map.
func WithMap(m *ordmap.Map[string, string]) Option {
	return func(r *REPL) {
		r.m = m
	}
}

// New creates a new REPL instance.
func New(opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		formatter: output.NewFormatter(output.FormatTable, false),
		history:   NewHistory(""),
		logger:    logger.Default(),
		buckets:   ordmap.DefaultBucketCount,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.m == nil {
		r.m = ordmap.NewWithBuckets[string, string](r.buckets)
	}
	if r.metrics == nil {
		r.metrics = metric.NewRegistry()
	}
	collector := metric.NewMapCollector("repl", r.stats)
	if err := r.metrics.Register(collector); err != nil {
		r.logger.Warn("map collector not registered", "error", err)
	} else {
		r.collector = collector
	}

	r.commands = commandTable()
	names := make([]string, 0, len(r.commands)+2)
	for _, c := range r.commands {
		names = append(names, c.name)
	}
	r.completer = NewCompleter(append(names, "exit", "quit")...)

	return r
}

// Run starts the REPL loop. It returns when input ends or on exit.
func (r *REPL) Run() error {
	if err := r.history.Load(); err != nil {
		r.logger.Warn("failed to load history", "error", err)
	}
	defer r.Close()

	reader := bufio.NewReader(r.input)
	for {
		r.print(prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimSpace(line)
		if line == "" {
			if eof {
				r.println()
				return nil
			}
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.execute(line); err != nil {
			r.printf("Error: %v\n", err)
		}
		if eof {
			r.println()
			return nil
		}
	}
}

// Map returns the session map. Callers must not use it while Run is active.
func (r *REPL) Map() *ordmap.Map[string, string] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m
}

func (r *REPL) execute(line string) error {
	name, rest := cut(line)

	for _, c := range r.commands {
		if c.name != name {
			continue
		}
		if err := c.run(r, rest); err != nil {
			return err
		}
		r.metrics.Observe(name)
		return nil
	}

	err := domain.ErrInvalidArgument.WithDetailsf("unknown command %q", name)
	if hints := r.completer.Complete(name); len(hints) > 0 {
		err = err.WithDetailsf("unknown command %q, did you mean: %s", name, strings.Join(hints, ", "))
	}
	return err
}

// withMap runs fn with exclusive access to the session map.
func (r *REPL) withMap(fn func(m *ordmap.Map[string, string])) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.m)
}

func (r *REPL) replace(m *ordmap.Map[string, string]) {
	r.mu.Lock()
	r.m = m
	r.mu.Unlock()
}

func (r *REPL) stats() (int, []ordmap.BucketStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m.Len(), r.m.Stats()
}

// watch reloads path into the session map whenever it is written.
func (r *REPL) watch(path string) error {
	r.mu.Lock()
	w := r.watcher
	r.mu.Unlock()

	if w == nil {
		var err error
		w, err = confloader.NewWatcher(confloader.WithWatcherLogger(r.logger))
		if err != nil {
			return err
		}
		w.OnChange(r.reload)
		w.StartAsync()
		r.mu.Lock()
		r.watcher = w
		r.mu.Unlock()
	}
	return w.Watch(path)
}

func (r *REPL) reload(path string) {
	m, err := pairfile.Load(path, r.buckets)
	if err != nil {
		r.logger.Warn("reload failed", "path", path, "error", err)
		r.printf("Error: reload %s: %v\n", path, err)
		return
	}
	r.replace(m)
	r.metrics.Observe("reload")
	r.logger.Info("map reloaded", "path", path, "entries", m.Len())
	r.printf("reloaded %s (%d entries)\n", path, m.Len())
}

// Close stops the file watcher, unregisters the map collector and saves
// history. Run calls it on return;
// calls after the first do nothing.
func (r *REPL) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.mu.Lock()
		w := r.watcher
		r.mu.Unlock()
		if w != nil {
			if stopErr := w.Stop(); stopErr != nil {
				r.logger.Warn("failed to stop watcher", "error", stopErr)
			}
		}
		if r.collector != nil {
			r.metrics.Unregister(r.collector)
		}
		if err = r.history.Save(); err != nil {
			r.logger.Warn("failed to save history", "error", err)
		}
	})
	return err
}

func (r *REPL) print(s string) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	io.WriteString(r.output, s)
}

func (r *REPL) println() {
	r.print("\n")
}

func (r *REPL) printf(format string, args ...any) {
	r.print(fmt.Sprintf(format, args...))
}

func (r *REPL) format(data any) error {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	return r.formatter.Format(r.output, data)
}

// cut splits off the first whitespace-separated word of s.
func cut(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
