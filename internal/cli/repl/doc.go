// Package repl provides interactive mode for ordmap-cli.
//
// A session holds one ordered map and executes one command per line:
//
//   - repl.go: main loop, options, file watching
//   - commands.go: command table and handlers
//   - completer.go: prefix completion, used for "did you mean" hints
//   - history.go: command history persistence
package repl
