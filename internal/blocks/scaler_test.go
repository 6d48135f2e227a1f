package blocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/blocks"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestStandardScaler_Fit(t *testing.T) {
	s := blocks.NewStandardScaler("scaled")
	input := frame(t,
		domain.Column{Name: "x", Values: []float64{1, 2, 3, 4}},
		domain.Column{Name: "c", Values: []float64{7, 7, 7, 7}},
	)

	out, err := s.Fit(context.Background(), input, nil, newEnv(t, "scaled"))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "c"}, out.Names())
	x := column(t, out, "x")
	assert.InDeltaSlice(t, []float64{-1.3416407865, -0.4472135955, 0.4472135955, 1.3416407865}, x, 1e-9)
	assert.Equal(t, []float64{0, 0, 0, 0}, column(t, out, "c"))
}

func TestStandardScaler_TransformUsesFittedStatistics(t *testing.T) {
	ctx := context.Background()
	s := blocks.NewStandardScaler("scaled")
	_, err := s.Fit(ctx, frame(t, domain.Column{Name: "x", Values: []float64{0, 2}}), nil, newEnv(t, "scaled"))
	require.NoError(t, err)

	// Extra columns are ignored and the fitted column order is kept.
	out, err := s.Transform(ctx, frame(t,
		domain.Column{Name: "extra", Values: []float64{9}},
		domain.Column{Name: "x", Values: []float64{3}},
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Names())
	assert.Equal(t, []float64{2}, column(t, out, "x"))
}

func TestStandardScaler_NotFitted(t *testing.T) {
	s := blocks.NewStandardScaler("scaled")
	_, err := s.Transform(context.Background(), frame(t, domain.Column{Name: "x", Values: []float64{1}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFitted))
}

func TestStandardScaler_MissingColumn(t *testing.T) {
	ctx := context.Background()
	s := blocks.NewStandardScaler("scaled")
	_, err := s.Fit(ctx, frame(t, domain.Column{Name: "x", Values: []float64{0, 2}}), nil, newEnv(t, "scaled"))
	require.NoError(t, err)

	_, err = s.Transform(ctx, frame(t, domain.Column{Name: "y", Values: []float64{1}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrColumnNotFound))
}

func TestStandardScaler_FrozenAndUnzip(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t, "scaled")

	s := blocks.NewStandardScaler("scaled")
	assert.False(t, s.CheckIsFitted(env))
	require.Error(t, s.Frozen(env))

	_, err := s.Fit(ctx, frame(t, domain.Column{Name: "x", Values: []float64{0, 2}}), nil, env)
	require.NoError(t, err)
	require.NoError(t, s.Frozen(env))
	s.ClearFitCache()

	// The persisted parameters still count as fitted state.
	assert.True(t, s.CheckIsFitted(env))
	_, err = s.Transform(ctx, frame(t, domain.Column{Name: "x", Values: []float64{3}}))
	require.ErrorIs(t, err, domain.ErrNotFitted)

	fresh := blocks.NewStandardScaler("scaled")
	require.NoError(t, fresh.Unzip(env))
	out, err := fresh.Transform(ctx, frame(t, domain.Column{Name: "x", Values: []float64{3}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, column(t, out, "x"))
}

func TestPassthrough(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t, "raw")
	p := blocks.NewPassthrough("raw")
	input := frame(t,
		domain.Column{Name: "a", Values: []float64{1, 2}},
		domain.Column{Name: "b", Values: []float64{3, 4}},
	)

	out, err := p.Fit(ctx, input, nil, env)
	require.NoError(t, err)
	assert.Same(t, input, out)
	assert.False(t, p.IsEstimator())
	require.NoError(t, p.Frozen(env))

	fresh := blocks.NewPassthrough("raw")
	require.NoError(t, fresh.Unzip(env))
	out, err = fresh.Transform(ctx, frame(t,
		domain.Column{Name: "b", Values: []float64{5}},
		domain.Column{Name: "a", Values: []float64{6}},
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Names())
	assert.Equal(t, []float64{6, 5}, out.Row(0))
}
