// Package config provides CLI configuration for ordmap-cli.
//
// Settings are resolved through confloader in this order (highest first):
// command-line flags, ORDMAP_* environment variables, the YAML config file
// (default ~/.ordmap/cli.yaml), built-in defaults.
package config
