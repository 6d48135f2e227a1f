package backend_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/backend"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestFactory_Open(t *testing.T) {
	root := t.TempDir()
	f := backend.NewFactory()

	t.Run("empty driver defaults to local", func(t *testing.T) {
		b, err := f.Open(domain.BackendConfig{}, root)
		require.NoError(t, err)
		defer b.Close()

		local, ok := b.(*backend.Local)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, ".kiln", "experiments"), local.Root())
		assert.True(t, b.CanSave())
	})

	t.Run("relative path is joined to root", func(t *testing.T) {
		b, err := f.Open(domain.BackendConfig{Driver: "LOCAL", Path: "runs"}, root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "runs"), b.(*backend.Local).Root())
	})

	t.Run("absolute path is kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "abs")
		b, err := f.Open(domain.BackendConfig{Driver: domain.DriverLocal, Path: abs}, root)
		require.NoError(t, err)
		assert.Equal(t, abs, b.(*backend.Local).Root())
	})

	t.Run("sqlite", func(t *testing.T) {
		b, err := f.Open(domain.BackendConfig{Driver: domain.DriverSQLite}, root)
		require.NoError(t, err)
		defer b.Close()

		_, ok := b.(*backend.SQLite)
		assert.True(t, ok)
		assert.FileExists(t, filepath.Join(root, ".kiln", "experiments.db"))
	})

	t.Run("none", func(t *testing.T) {
		b, err := f.Open(domain.BackendConfig{Driver: domain.DriverNone}, root)
		require.NoError(t, err)
		assert.False(t, b.CanSave())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := f.Open(domain.BackendConfig{Driver: "redis"}, root)
		assert.ErrorIs(t, err, domain.ErrUnknownBackendDriver)
	})
}
