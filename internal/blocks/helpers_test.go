package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/backend"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

func newEnv(t *testing.T, namespace string) ports.Environment {
	t.Helper()
	b, err := backend.NewLocal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	env, err := b.AsEnvironment(namespace)
	require.NoError(t, err)
	return env
}

func frame(t *testing.T, cols ...domain.Column) *domain.Frame {
	t.Helper()
	f, err := domain.NewFrame(cols...)
	require.NoError(t, err)
	return f
}

func column(t *testing.T, f *domain.Frame, name string) []float64 {
	t.Helper()
	c, ok := f.Column(name)
	require.True(t, ok, "column %q missing", name)
	return c.Values
}
