// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Block is a named unit of computation in the pipeline DAG.
//
// The scheduler calls the training hooks in this order for a recomputed block:
// Fit, Report, then Frozen and ClearFitCache when the backend can save.
// For inference it calls Unzip and CheckIsFitted before Transform.
//
//go:generate go run go.uber.org/mock/mockgen -source=block.go -destination=mocks/mock_block.go -package=mocks
type Block interface {
	// Name is the display name, also used to prefix the block's columns in its children's input.
	Name() string
	// Key is the identity of the block inside a dependency graph.
	Key() domain.Key
	// Parents returns the parent blocks in declared order.
	Parents() []Block
	// RuntimeEnv is the namespace key of the block's persisted state, stable across runs.
	RuntimeEnv() string
	// IsEstimator marks a terminal block whose output is collected as a prediction.
	IsEstimator() bool

	// Fit trains the block on input and returns its training output.
	Fit(ctx context.Context, input *domain.Frame, labels domain.Labels, env Environment) (*domain.Frame, error)
	// Transform applies fitted state to input.
	Transform(ctx context.Context, input *domain.Frame) (*domain.Frame, error)
	// CheckIsFitted reports whether the block holds fitted state for env.
	CheckIsFitted(env Environment) bool
	// Report runs side-effecting hooks after a successful fit.
	Report(ctx context.Context, input *domain.Frame, labels domain.Labels, output *domain.Frame, env Environment) error
	// Frozen persists the fitted state into env.
	Frozen(env Environment) error
	// ClearFitCache releases in-memory training state that was persisted by Frozen.
	ClearFitCache()
	// Unzip loads fitted state from env.
	Unzip(env Environment) error
	// LoadOutput reads a previously persisted output of the block.
	LoadOutput(storageKey string, env Environment, isFit bool) (*domain.Frame, error)
}

// BlockFactory builds the blocks declared by a pipeline.
type BlockFactory interface {
	// Build returns the pipeline's blocks in declaration order.
	Build(p *domain.Pipeline) ([]Block, error)
}
