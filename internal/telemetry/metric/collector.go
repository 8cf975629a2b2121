package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/ordmap-go/pkg/ordmap"
)

// StatsSource reports the entry count and per-bucket chain lengths of a map.
type StatsSource func() (entries int, buckets []ordmap.BucketStats)

// MapCollector reports the layout of a map at scrape time.
type MapCollector struct {
	source StatsSource

	entries      *prometheus.Desc
	buckets      *prometheus.Desc
	bucketLen    *prometheus.Desc
	longestChain *prometheus.Desc
}

// NewMapCollector creates a collector over source. The name is attached
// as the "map" const label.
func NewMapCollector(name string, source StatsSource) *MapCollector {
	labels := prometheus.Labels{"map": name}
	return &MapCollector{
		source: source,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entries"),
			"Number of entries in the map.", nil, labels),
		buckets: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "buckets"),
			"Number of buckets in the map.", nil, labels),
		bucketLen: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "bucket_entries"),
			"Number of entries chained in a bucket.", []string{"bucket"}, labels),
		longestChain: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "longest_chain"),
			"Length of the longest bucket chain.", nil, labels),
	}
}

// StatsOf adapts a map to a StatsSource.
func StatsOf[K comparable, V any](m *ordmap.Map[K, V]) StatsSource {
	return func() (int, []ordmap.BucketStats) {
		return m.Len(), m.Stats()
	}
}

// Describe implements prometheus.Collector.
func (c *MapCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.buckets
	ch <- c.bucketLen
	ch <- c.longestChain
}

// Collect implements prometheus.Collector.
func (c *MapCollector) Collect(ch chan<- prometheus.Metric) {
	entries, stats := c.source()

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(entries))
	ch <- prometheus.MustNewConstMetric(c.buckets, prometheus.GaugeValue, float64(len(stats)))

	longest := 0
	for _, s := range stats {
		longest = max(longest, s.Count)
		ch <- prometheus.MustNewConstMetric(c.bucketLen, prometheus.GaugeValue,
			float64(s.Count), strconv.Itoa(s.Index))
	}
	ch <- prometheus.MustNewConstMetric(c.longestChain, prometheus.GaugeValue, float64(longest))
}
