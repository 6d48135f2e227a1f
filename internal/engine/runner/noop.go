package runner

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

func (nopLogger) Info(string, ...any) {}

func (nopLogger) Warn(string, ...any) {}

func (nopLogger) Error(error) {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

func (nopTracer) EmitPlan(context.Context, []string) {}

type nopSpan struct{}

func (nopSpan) End() {}

func (nopSpan) RecordError(error) {}

func (nopSpan) SetAttribute(string, any) {}

func (nopSpan) Write(p []byte) (int, error) {
	return len(p), nil
}

type nopTelemetry struct{}

func (nopTelemetry) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, nopVertex{}
}

func (nopTelemetry) Close() error {
	return nil
}

type nopVertex struct{}

func (nopVertex) Stdout() io.Writer {
	return io.Discard
}

func (nopVertex) Stderr() io.Writer {
	return io.Discard
}

func (nopVertex) Log(domain.LogLevel, string) {}

func (nopVertex) Complete(error) {}

func (nopVertex) Cached() {}
