package proxy

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Traced opens one span per call, named "<contract>/<Method>". A panicking
// delegate leaves an errored span and the panic continues unchanged.
func Traced[T any](tracer trace.Tracer, contract string) InvocationHandler[T] {
	if contract == "" {
		contract = NameOf[T]()
	}

	return func(ctx *Context[T]) {
		_, span := tracer.Start(context.Background(), contract+"/"+ctx.Name,
			trace.WithAttributes(
				attribute.String("proxy.method", ctx.Name),
				attribute.Int("proxy.args", len(ctx.In)),
			))

		done := false
		defer func() {
			if !done {
				span.SetStatus(codes.Error, "delegate panicked")
			}
			span.End()
		}()

		ctx.Do()
		done = true
		span.SetAttributes(attribute.String("proxy.result", fmt.Sprint(ctx.Out...)))
	}
}
