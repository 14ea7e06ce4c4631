package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

// Tracing marks the span found in the context as failed. Contexts without a
// recording span are ignored.
func Tracing() core.Observer {
	return core.ObserverFunc(func(ctx context.Context, op string, err rop.Error) {
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		span.RecordError(err, trace.WithAttributes(
			attribute.String("rop.op", op),
			attribute.String("rop.kind", err.Kind().String()),
			attribute.String("rop.code", Code(err)),
			attribute.Int("rop.leaves", len(rop.Leaves(err))),
		))
		span.SetStatus(codes.Error, err.Error())
	})
}

// Code returns the classification code of err; aggregates report the code
// of their first entry.
func Code(err rop.Error) string {
	switch e := err.(type) {
	case *rop.Simple:
		return e.Code()
	case *rop.Validation:
		return e.Code()
	case *rop.Aggregate:
		entries := e.Entries()
		if len(entries) == 0 {
			return ""
		}
		return Code(entries[0])
	default:
		return ""
	}
}
