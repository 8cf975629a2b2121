// Package main provides the entry point for ordmap-cli.
//
// The CLI works on ordered pair files (YAML mappings or JSON objects):
//
//   - show, get: inspect a file in insertion order
//   - merge, filter, map: build a new ordered map
//   - reduce: fold all values with sum, product, min, max or join
//   - stats: bucket layout as Prometheus metrics
//   - repl: interactive session over one map
//
// Usage:
//
//	ordmap-cli [global flags] command [flags] [args]
//	ordmap-cli -o json merge base.yaml override.yaml
//	ordmap-cli reduce --op sum prices.yaml
package main
