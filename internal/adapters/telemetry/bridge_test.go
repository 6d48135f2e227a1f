package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tp := telemetry.NewProvider(mockLogger)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	gomock.InOrder(
		mockLogger.EXPECT().Debug("span finished", "span", "scaled", "status", "ok", "elapsed", gomock.Any()),
		mockLogger.EXPECT().Debug("span finished", "span", "ridge", "status", "error", "elapsed", gomock.Any()),
	)

	_, span := tracer.Start(context.Background(), "scaled")
	span.End()

	_, span = tracer.Start(context.Background(), "ridge")
	span.RecordError(errors.New("boom"))
	span.End()
}

func TestBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))

	tp := telemetry.NewProvider(nil)
	_, span := telemetry.NewOTelTracerWithProvider(tp, "test").Start(context.Background(), "span")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))
}
