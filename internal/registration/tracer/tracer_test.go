package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"regsuite/internal/registration/tracer"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanSubmit, tracer.String("key", "value"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int(tracer.AttrStatusCode, 201))
	span.AddEvent(tracer.EventUnsafeRemoveRefused)
	span.End(errors.New("boom"))
}

func TestOTelTracer_WithNoopProvider(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanLookup,
		tracer.String(tracer.AttrCitizenID, "3f6a1c0d9e2b4a71"),
		tracer.Bool("flag", true),
		tracer.Duration(tracer.AttrLatency, 150*time.Millisecond),
	)
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int(tracer.AttrStatusCode, 404), tracer.Attribute{Key: "ratio", Value: 0.5})
	span.AddEvent("checkpoint", tracer.String("k", "v"))
	span.End(errors.New("not found"))
}

func TestNewOTel_DefaultsToGlobalProvider(t *testing.T) {
	tr := tracer.NewOTel()
	_, span := tr.Start(context.Background(), tracer.SpanHealth)
	span.End(nil)
}

func TestDurationAttribute(t *testing.T) {
	attr := tracer.Duration("latency", 150*time.Millisecond)
	assert.Equal(t, int64(150), attr.Value)
}
