package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler runs registered hooks once, on the first signal or Shutdown call.
type Handler struct {
	timeout time.Duration
	signals []os.Signal
	hooks   []func(context.Context) error
	mu      sync.Mutex
	once    sync.Once
	err     error
}

// NewHandler creates a handler for the given signals, SIGINT and SIGTERM
// when none are given. Hooks share a context that expires after timeout.
func NewHandler(timeout time.Duration, signals ...os.Signal) *Handler {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return &Handler{
		timeout: timeout,
		signals: signals,
		hooks:   make([]func(context.Context) error, 0),
	}
}

// OnShutdown registers a shutdown hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Wait blocks until a signal arrives, then runs the hooks and returns the
// signal with the joined hook errors. If ctx ends first no hooks run and
// Wait returns a nil signal.
func (h *Handler) Wait(ctx context.Context) (os.Signal, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, h.signals...)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		return sig, h.Shutdown()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Shutdown runs the hooks. Calls after the first return the same result.
func (h *Handler) Shutdown() error {
	h.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		h.mu.Lock()
		hooks := make([]func(context.Context) error, len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		h.err = errors.Join(errs...)
	})
	return h.err
}
