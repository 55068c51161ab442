package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run holds observability context for one CLI invocation.
type Run struct {
	ID        string
	Command   string
	StartTime time.Time
	Metrics   *Metrics
}

// NewRun creates a run. If metrics is nil, metric recording is skipped.
func NewRun(id, command string, metrics *Metrics) *Run {
	return &Run{
		ID:        id,
		Command:   command,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type runContextKey struct{}

// WithRun stores a Run in the context.
func WithRun(ctx context.Context, r *Run) context.Context {
	return context.WithValue(ctx, runContextKey{}, r)
}

// RunFromContext retrieves the Run from context, or nil.
func RunFromContext(ctx context.Context) *Run {
	if r, ok := ctx.Value(runContextKey{}).(*Run); ok {
		return r
	}
	return nil
}

// Start opens the run span and returns a context carrying both the span
// and the run.
func (r *Run) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(WithRun(ctx, r), SpanRun)
	span.SetAttributes(
		attribute.String(AttrRunID, r.ID),
		attribute.String(AttrCommand, r.Command),
	)
	return ctx, span
}

// End closes the run span and records the run as an operation.
func (r *Run) End(ctx context.Context, span trace.Span, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}
	duration := r.Duration()
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if r.Metrics != nil {
		r.Metrics.RecordOperation(ctx, r.Command, status, duration)
		if err != nil {
			r.Metrics.RecordError(ctx, r.Command, err)
		}
	}
}

// Duration returns the elapsed time since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartTime)
}
