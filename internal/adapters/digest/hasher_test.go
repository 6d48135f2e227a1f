package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/digest"
	"go.trai.ch/kiln/internal/core/domain"
)

func frame(t *testing.T, cols ...domain.Column) *domain.Frame {
	t.Helper()
	f, err := domain.NewFrame(cols...)
	require.NoError(t, err)
	return f
}

func TestHasher_Fingerprint(t *testing.T) {
	h := digest.NewHasher()
	base := frame(t, domain.Column{Name: "x", Values: []float64{1, 2}})

	t.Run("stable", func(t *testing.T) {
		again := frame(t, domain.Column{Name: "x", Values: []float64{1, 2}})
		assert.Equal(t, h.Fingerprint(base), h.Fingerprint(again))
		assert.Len(t, h.Fingerprint(base), 16)
	})

	t.Run("value change", func(t *testing.T) {
		other := frame(t, domain.Column{Name: "x", Values: []float64{1, 2.0000001}})
		assert.NotEqual(t, h.Fingerprint(base), h.Fingerprint(other))
	})

	t.Run("rename", func(t *testing.T) {
		other := frame(t, domain.Column{Name: "y", Values: []float64{1, 2}})
		assert.NotEqual(t, h.Fingerprint(base), h.Fingerprint(other))
	})

	t.Run("prefix", func(t *testing.T) {
		assert.NotEqual(t, h.Fingerprint(base), h.Fingerprint(base.WithPrefix("p")))
	})

	t.Run("empty frames differ by rows", func(t *testing.T) {
		assert.NotEqual(t, h.Fingerprint(domain.EmptyFrame(1)), h.Fingerprint(domain.EmptyFrame(2)))
	})
}

func TestHasher_HashStrings(t *testing.T) {
	h := digest.NewHasher()

	assert.Equal(t, h.HashStrings("ridge", "alpha=1"), h.HashStrings("ridge", "alpha=1"))
	assert.NotEqual(t, h.HashStrings("ab", "c"), h.HashStrings("a", "bc"))
	assert.NotEqual(t, h.HashStrings("a", "b"), h.HashStrings("b", "a"))
}
