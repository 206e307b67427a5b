package telemetry_test

import (
	"context"
	"testing"

	"github.com/iocgo/eventproxy/telemetry"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	tracer, shutdown, err := telemetry.Setup(context.Background(), "", "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, span := tracer.Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Fatalf("expected a no-op span")
	}
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address, nothing is exported.
	tracer, shutdown, err := telemetry.Setup(context.Background(), "http://192.0.2.1:4318", "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, span := tracer.Start(context.Background(), "recorded")
	if !span.SpanContext().IsValid() {
		t.Fatalf("expected a recording span")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The cancelled context stops the flush right away.
	_ = shutdown(ctx)
}
