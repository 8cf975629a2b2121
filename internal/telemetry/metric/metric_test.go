package metric

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

func TestRegistry_Observe(t *testing.T) {
	r := NewRegistry()

	r.Observe("add")
	r.Observe("add")
	r.Observe("remove")

	if got := testutil.ToFloat64(r.ops.WithLabelValues("add")); got != 2 {
		t.Errorf("operations{op=add} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.ops.WithLabelValues("remove")); got != 1 {
		t.Errorf("operations{op=remove} = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.ops); got != 2 {
		t.Errorf("series = %d, want 2", got)
	}
}

func TestRegistry_Nil(t *testing.T) {
	var r *Registry

	// Should not panic
	r.Observe("add")
}

func TestRegistry_WriteText(t *testing.T) {
	r := NewRegistry()
	r.Observe("concat")

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# TYPE ordmap_operations_total counter",
		`ordmap_operations_total{op="concat"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText() output missing %q\n%s", want, out)
		}
	}
}

func TestMapCollector(t *testing.T) {
	m := ordmap.NewWithBuckets[string, int](3)
	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("c", 3)
	m.Add("d", 4)

	r := NewRegistry()
	if err := r.Register(NewMapCollector("main", StatsOf(m))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`ordmap_entries{map="main"} 4`,
		`ordmap_buckets{map="main"} 3`,
		`ordmap_bucket_entries{bucket="0",map="main"}`,
		`ordmap_bucket_entries{bucket="2",map="main"}`,
		`ordmap_longest_chain{map="main"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestMapCollector_Live(t *testing.T) {
	m := ordmap.New[string, int]()
	r := NewRegistry()
	c := NewMapCollector("live", StatsOf(m))
	if err := r.Register(c); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	m.Add("x", 1)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.Contains(buf.String(), `ordmap_entries{map="live"} 1`) {
		t.Errorf("collector did not observe later insert\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `ordmap_longest_chain{map="live"} 1`) {
		t.Errorf("longest chain not reported\n%s", buf.String())
	}

	if !r.Unregister(c) {
		t.Error("Unregister() = false, want true")
	}
	if r.Unregister(c) {
		t.Error("second Unregister() = true, want false")
	}
}
