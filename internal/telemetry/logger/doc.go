// Package logger provides structured logging for the ordmap tools.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler selection (text or JSON), dynamic level, default logger
//   - context.go: logger and operation-name propagation through context
//
// Library packages under pkg/ never log; only the CLI does.
package logger
