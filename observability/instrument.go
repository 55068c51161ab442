package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/stream"
)

// Instrument returns an identity stage that counts every element pulled
// through it and records when it is exhausted. Endless classification and
// clonability are forwarded from the upstream; clones share m. A nil m
// makes the stage a plain pass-through.
func Instrument[T any](ctx context.Context, m *Metrics, name string) stream.Builder[T, stream.Stream[T]] {
	return stream.BuilderFunc[T, stream.Stream[T]](func(s stream.Stream[T]) (stream.Stream[T], error) {
		return &instrumented[T]{up: s, ctx: ctx, m: m, name: name}, nil
	})
}

type instrumented[T any] struct {
	up        stream.Stream[T]
	ctx       context.Context
	m         *Metrics
	name      string
	exhausted bool
}

func (i *instrumented[T]) Front() T { return i.up.Front() }

func (i *instrumented[T]) Next() bool {
	if i.up.Next() {
		i.exhausted = false
		if i.m != nil {
			i.m.RecordElement(i.ctx, i.name)
		}
		return true
	}
	if !i.exhausted {
		i.exhausted = true
		if i.m != nil {
			i.m.RecordExhausted(i.ctx, i.name)
		}
	}
	return false
}

func (i *instrumented[T]) Endless() bool { return i.up.Endless() }

func (i *instrumented[T]) Clone() stream.Stream[T] {
	up, ok := stream.Clone(i.up)
	if !ok {
		return nil
	}
	cp := *i
	cp.up = up
	return &cp
}

// Traced wraps b so that each application runs inside a span named after
// op. The span carries the run id found in ctx, and failures are recorded
// on the span with their error code. When m is non-nil the outcome is also
// counted.
func Traced[T, R any](ctx context.Context, m *Metrics, op string, b stream.Builder[T, R]) stream.Builder[T, R] {
	return stream.BuilderFunc[T, R](func(s stream.Stream[T]) (R, error) {
		spanCtx, span := StartSpan(ctx, fmt.Sprintf(SpanOperationFmt, op),
			trace.WithAttributes(
				attribute.String(AttrOperationName, op),
				attribute.Bool("stream.endless", s.Endless()),
			))
		defer span.End()
		if run := RunFromContext(ctx); run != nil {
			span.SetAttributes(attribute.String(AttrRunID, run.ID))
		}

		start := time.Now()
		r, err := b.Build(s)
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if appErr, ok := errors.AsAppError(err); ok {
				span.SetAttributes(attribute.String(AttrErrorCode, string(appErr.Code)))
			}
		}
		span.SetAttributes(attribute.String(AttrStatus, status))

		if m != nil {
			m.RecordOperation(spanCtx, op, status, time.Since(start))
			if err != nil {
				m.RecordError(spanCtx, op, err)
			}
		}
		return r, err
	})
}
