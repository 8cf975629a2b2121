package logger

import "context"

type contextKey string

const (
	loggerKey    contextKey = "ordmap.logger"
	operationKey contextKey = "ordmap.operation"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithOperation records the name of the operation being run.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromContext extracts the operation name from context.
func OperationFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// L is a shorthand for FromContext that binds the logger to ctx and tags it
// with the operation name from the context.
func L(ctx context.Context) Logger {
	l := FromContext(ctx).WithContext(ctx)
	if op := OperationFromContext(ctx); op != "" {
		l = l.With("op", op)
	}
	return l
}
