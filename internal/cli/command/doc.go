// Package command provides CLI command definitions for ordmap-cli.
//
// It uses urfave/cli/v2 for command parsing. Every command reads ordered
// pair files (see package pairfile), applies one map operation and prints
// the result with the formatter selected by --output.
package command
