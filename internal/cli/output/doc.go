// Package output provides output formatting for ordmap-cli.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: table rendering with wide mode support
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//   - pairs.go: ordered key/value pairs that keep their order in every format
package output
