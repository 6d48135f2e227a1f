package blocks_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/digest"
	"go.trai.ch/kiln/internal/blocks"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func pipeline(specs ...domain.BlockSpec) *domain.Pipeline {
	return &domain.Pipeline{Version: "1", Blocks: specs}
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"logistic", "passthrough", "ridge", "standard_scaler"}, blocks.Kinds())
}

func TestFactory_Build(t *testing.T) {
	f := blocks.NewFactory(digest.NewHasher())
	built, err := f.Build(pipeline(
		domain.BlockSpec{Name: "ridge", Kind: blocks.KindRidge, Parents: []string{"scaled", "raw"}, Params: map[string]float64{"alpha": 2}},
		domain.BlockSpec{Name: "scaled", Kind: blocks.KindStandardScaler},
		domain.BlockSpec{Name: "raw", Kind: blocks.KindPassthrough},
		domain.BlockSpec{Name: "clf", Kind: blocks.KindLogistic, Parents: []string{"scaled"}, Params: map[string]float64{"patience": 0}},
	))
	require.NoError(t, err)
	require.Len(t, built, 4)

	names := make([]string, len(built))
	for i, b := range built {
		names[i] = b.Name()
		assert.True(t, strings.HasPrefix(b.RuntimeEnv(), b.Name()+"-"), b.RuntimeEnv())
		assert.Len(t, b.RuntimeEnv(), len(b.Name())+9)
	}
	assert.Equal(t, []string{"ridge", "scaled", "raw", "clf"}, names)

	ridge := built[0]
	assert.True(t, ridge.IsEstimator())
	require.Len(t, ridge.Parents(), 2)
	assert.Same(t, built[1], ridge.Parents()[0])
	assert.Same(t, built[2], ridge.Parents()[1])
	assert.False(t, built[1].IsEstimator())
	assert.True(t, built[3].IsEstimator())
}

func TestFactory_RuntimeEnvFollowsConfiguration(t *testing.T) {
	f := blocks.NewFactory(digest.NewHasher())
	env := func(spec domain.BlockSpec) string {
		t.Helper()
		built, err := f.Build(pipeline(
			domain.BlockSpec{Name: "scaled", Kind: blocks.KindStandardScaler},
			domain.BlockSpec{Name: "other", Kind: blocks.KindStandardScaler},
			spec,
		))
		require.NoError(t, err)
		return built[2].RuntimeEnv()
	}

	spec := domain.BlockSpec{Name: "ridge", Kind: blocks.KindRidge, Parents: []string{"scaled"}, Params: map[string]float64{"alpha": 1}}
	first := env(spec)
	assert.Equal(t, first, env(spec), "same configuration, same namespace")

	changedParam := spec
	changedParam.Params = map[string]float64{"alpha": 3}
	assert.NotEqual(t, first, env(changedParam))

	changedParents := spec
	changedParents.Parents = []string{"other"}
	assert.NotEqual(t, first, env(changedParents))
}

func TestFactory_RuntimeEnvFollowsParentConfiguration(t *testing.T) {
	f := blocks.NewFactory(digest.NewHasher())
	envs := func(alpha float64) (string, string) {
		t.Helper()
		built, err := f.Build(pipeline(
			domain.BlockSpec{Name: "est", Kind: blocks.KindRidge, Parents: []string{"child"}},
			domain.BlockSpec{Name: "child", Kind: blocks.KindPassthrough, Parents: []string{"base"}},
			domain.BlockSpec{Name: "base", Kind: blocks.KindRidge, Params: map[string]float64{"alpha": alpha}},
		))
		require.NoError(t, err)
		return built[1].RuntimeEnv(), built[0].RuntimeEnv()
	}

	child, est := envs(0)
	otherChild, otherEst := envs(100)
	assert.NotEqual(t, child, otherChild)
	assert.NotEqual(t, est, otherEst)

	sameChild, sameEst := envs(0)
	assert.Equal(t, child, sameChild)
	assert.Equal(t, est, sameEst)
}

func TestFactory_BuildCycle(t *testing.T) {
	_, err := blocks.NewFactory(digest.NewHasher()).Build(pipeline(
		domain.BlockSpec{Name: "a", Kind: blocks.KindPassthrough, Parents: []string{"b"}},
		domain.BlockSpec{Name: "b", Kind: blocks.KindPassthrough, Parents: []string{"a"}},
	))
	require.ErrorIs(t, err, domain.ErrGraphCycle)
}

func TestFactory_BuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.BlockSpec
		wantErr  error
		wantMeta map[string]any
	}{
		{
			name:     "unknown kind",
			spec:     domain.BlockSpec{Name: "b", Kind: "xgboost"},
			wantErr:  domain.ErrUnknownBlockKind,
			wantMeta: map[string]any{"block": "b", "kind": "xgboost"},
		},
		{
			name:     "unknown param",
			spec:     domain.BlockSpec{Name: "b", Kind: blocks.KindRidge, Params: map[string]float64{"depth": 3}},
			wantErr:  domain.ErrInvalidParam,
			wantMeta: map[string]any{"block": "b", "kind": "ridge", "param": "depth"},
		},
		{
			name:     "fractional folds",
			spec:     domain.BlockSpec{Name: "b", Kind: blocks.KindRidge, Params: map[string]float64{"folds": 2.5}},
			wantErr:  domain.ErrInvalidParam,
			wantMeta: map[string]any{"block": "b", "param": "folds", "value": 2.5},
		},
		{
			name:     "missing parent",
			spec:     domain.BlockSpec{Name: "b", Kind: blocks.KindPassthrough, Parents: []string{"ghost"}},
			wantErr:  domain.ErrMissingDependency,
			wantMeta: map[string]any{"block": "b", "missing_dependency": "ghost"},
		},
		{
			name:    "invalid learning rate",
			spec:    domain.BlockSpec{Name: "b", Kind: blocks.KindLogistic, Params: map[string]float64{"learning_rate": -1}},
			wantErr: domain.ErrInvalidParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := blocks.NewFactory(digest.NewHasher()).Build(pipeline(tt.spec))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			if tt.wantMeta != nil {
				var zErr *zerr.Error
				require.ErrorAs(t, err, &zErr)
				meta := zErr.Metadata()
				for k, v := range tt.wantMeta {
					assert.Equal(t, v, meta[k], k)
				}
			}
		})
	}
}

func TestFactory_DuplicateName(t *testing.T) {
	_, err := blocks.NewFactory(digest.NewHasher()).Build(pipeline(
		domain.BlockSpec{Name: "a", Kind: blocks.KindPassthrough},
		domain.BlockSpec{Name: "a", Kind: blocks.KindStandardScaler},
	))
	require.ErrorIs(t, err, domain.ErrBlockAlreadyExists)
}
