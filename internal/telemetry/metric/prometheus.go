package metric

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "ordmap"

// Registry owns a Prometheus registry and the operation counters.
type Registry struct {
	reg *prometheus.Registry
	ops *prometheus.CounterVec
}

// NewRegistry creates a registry with the operation counter registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of map operations executed, by operation.",
		}, []string{"op"}),
	}
	r.reg.MustRegister(r.ops)
	return r
}

// Observe counts one execution of op.
func (r *Registry) Observe(op string) {
	if r == nil {
		return
	}
	r.ops.WithLabelValues(op).Inc()
}

// Register adds a collector to the registry.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.reg.Register(c)
}

// Unregister removes a collector from the registry. It reports whether the
// collector was registered.
func (r *Registry) Unregister(c prometheus.Collector) bool {
	return r.reg.Unregister(c)
}

// WriteText writes all gathered metrics in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}
