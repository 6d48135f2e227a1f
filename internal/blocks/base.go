// Package blocks provides the built-in pipeline blocks.
//
// Blocks compose optional capabilities instead of sharing behavior through a type
// hierarchy: a TrainingStrategy runs before and after every fit, and a Stopper can
// end an iterative fit early.
package blocks

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ModelKey is the storage key of a block's fitted parameters.
	ModelKey = "model"
	// FeatureImportanceKey is the storage key of the importance frame saved after a fit.
	FeatureImportanceKey = "feature_importance"
	// EarlyStoppingKey is the storage key of the early stopping record saved after a fit.
	EarlyStoppingKey = "early_stopping"
)

// base carries the identity and graph position shared by every built-in block.
type base struct {
	name       string
	kind       string
	runtimeEnv string
	estimator  bool
	parents    []ports.Block
	strategies []TrainingStrategy

	// importance returns one weight per input column of the last fit, or nil.
	importance func() []float64
}

func (b *base) Name() string           { return b.name }
func (b *base) Kind() string           { return b.kind }
func (b *base) Key() domain.Key        { return domain.NewKey(b.name) }
func (b *base) IsEstimator() bool      { return b.estimator }
func (b *base) Parents() []ports.Block { return b.parents }

// RuntimeEnv returns the namespace of the block. Blocks built outside a Factory
// have no configuration hash and use their name.
func (b *base) RuntimeEnv() string {
	if b.runtimeEnv == "" {
		return b.name
	}
	return b.runtimeEnv
}

func (b *base) setParents(parents []ports.Block) {
	b.parents = parents
}

func (b *base) setRuntimeEnv(env string) {
	b.runtimeEnv = env
}

// Use appends training strategies run around every fit of the block.
func (b *base) Use(strategies ...TrainingStrategy) {
	b.strategies = append(b.strategies, strategies...)
}

func (b *base) beforeFit(ctx context.Context, input *domain.Frame, labels domain.Labels) error {
	for _, s := range b.strategies {
		if err := s.BeforeFit(ctx, input, labels); err != nil {
			return zerr.With(zerr.Wrap(err, "training strategy rejected the fit"), "block", b.name)
		}
	}
	return nil
}

// Report runs the AfterFit hook of every training strategy.
func (b *base) Report(
	ctx context.Context,
	input *domain.Frame,
	labels domain.Labels,
	output *domain.Frame,
	env ports.Environment,
) error {
	info := FitInfo{Input: input, Labels: labels, Output: output}
	if b.importance != nil {
		info.Importance = b.importance()
	}
	for _, s := range b.strategies {
		if err := s.AfterFit(ctx, info, env); err != nil {
			return zerr.With(err, "block", b.name)
		}
	}
	return nil
}

// LoadOutput reads a persisted output of the block.
func (b *base) LoadOutput(storageKey string, env ports.Environment, _ bool) (*domain.Frame, error) {
	out, err := env.LoadFrame(storageKey)
	if err != nil {
		return nil, zerr.With(err, "block", b.name)
	}
	return out, nil
}

// state holds a block's fitted parameters. The parameters stay in memory after a
// fit until ClearFitCache and are read back from the namespace by Unzip.
type state[T any] struct {
	fitted *T
}

// CheckIsFitted reports whether parameters are in memory or persisted in env.
func (s *state[T]) CheckIsFitted(env ports.Environment) bool {
	if s.fitted != nil {
		return true
	}
	ok, err := env.Has(ModelKey)
	return err == nil && ok
}

// Frozen persists the fitted parameters into env.
func (s *state[T]) Frozen(env ports.Environment) error {
	if s.fitted == nil {
		return zerr.Wrap(domain.ErrNotFitted, "nothing to persist")
	}
	return env.SaveObject(ModelKey, s.fitted)
}

// Unzip loads persisted parameters from env. A namespace without parameters is not an error.
func (s *state[T]) Unzip(env ports.Environment) error {
	ok, err := env.Has(ModelKey)
	if err != nil || !ok {
		return err
	}
	var m T
	if err := env.LoadObject(ModelKey, &m); err != nil {
		return err
	}
	s.fitted = &m
	return nil
}

// ClearFitCache drops the in-memory parameters.
func (s *state[T]) ClearFitCache() {
	s.fitted = nil
}

func (s *state[T]) model(block string) (*T, error) {
	if s.fitted == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFitted, "transform called before fit"), "block", block)
	}
	return s.fitted, nil
}

// selectColumns returns the named columns of input, in the given order.
func selectColumns(block string, input *domain.Frame, names []string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, name := range names {
		col, ok := input.Column(name)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrColumnNotFound, "input lacks a fitted column"), "block", block)
			return nil, zerr.With(err, "column", name)
		}
		out[i] = col.Values
	}
	return out, nil
}

func checkLabels(block string, input *domain.Frame, labels domain.Labels) error {
	if len(labels) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrLabelsRequired, "cannot fit without labels"), "block", block)
	}
	if len(labels) != input.Rows() {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidLabels, "one label per row is required"), "block", block)
		err = zerr.With(err, "labels", len(labels))
		return zerr.With(err, "rows", input.Rows())
	}
	return nil
}
