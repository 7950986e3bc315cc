package context

import "context"

// TraceContext carries the identifiers that correlate log lines for a
// single request: the trace ID propagated between services and the
// request ID echoed back to the caller. Span handling lives in the
// otel layer, not here.
type TraceContext struct {
	TraceID   string
	RequestID string
}

type traceContextKey struct{}

// WithTrace stores the trace identifiers in the context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns the stored TraceContext, or nil when the context
// carries none.
func GetTrace(ctx context.Context) *TraceContext {
	trace, _ := ctx.Value(traceContextKey{}).(*TraceContext)
	return trace
}
