// Package metric provides Prometheus metrics for ordmap.
//
//   - prometheus.go: registry, operation counters and text exposition
//   - collector.go: a collector reporting the bucket layout of a map
//
// There is no HTTP endpoint; metrics are written in the Prometheus text
// format by the CLI "stats" command and the REPL.
package metric
