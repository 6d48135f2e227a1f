package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/ports"
	_ "go.trai.ch/kiln/internal/wiring"
)

func resolve[T any](t *testing.T) {
	t.Helper()
	v, _, err := graft.ExecuteFor[T](context.Background())
	require.NoError(t, err)
	require.NotNil(t, v)
}

// TestGraftNodes resolves every port the wiring package registers a provider for.
func TestGraftNodes(t *testing.T) {
	t.Run("logger", resolve[ports.Logger])
	t.Run("config loader", resolve[ports.ConfigLoader])
	t.Run("dataset io", resolve[ports.DatasetIO])
	t.Run("hasher", resolve[ports.Hasher])
	t.Run("backend factory", resolve[ports.BackendFactory])
	t.Run("block factory", resolve[ports.BlockFactory])
	t.Run("tracer", resolve[ports.Tracer])
	t.Run("telemetry", resolve[ports.Telemetry])
}
