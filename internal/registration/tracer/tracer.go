// Package tracer provides a lightweight tracing abstraction for the registration client.
//
// The client records one span per HTTP round trip without depending on
// OpenTelemetry APIs directly.
//
// Implementations:
//   - NoopTracer: for tests
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks it failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := tr.Start(ctx, tracer.SpanSubmit,
	//       tracer.String(tracer.AttrCitizenID, privacy.HashCitizenID(id)),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an int attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanSubmit = "registration.submit"
	SpanLookup = "registration.lookup"
	SpanRemove = "registration.remove"
	SpanHealth = "registration.health"
)

// Attribute keys.
const (
	AttrCitizenID  = "citizen_id_hash"
	AttrStatusCode = "http.status_code"
	AttrRequestID  = "request_id"
	AttrLatency    = "latency_ms"
)

// Event names.
const (
	EventUnsafeRemoveRefused = "remove.refused"
)
