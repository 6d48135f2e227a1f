// Package app implements the application layer for kiln.
package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	blocks       ports.BlockFactory
	backends     ports.BackendFactory
	datasets     ports.DatasetIO
	logger       ports.Logger
	tracer       ports.Tracer
	telemetry    ports.Telemetry
	hasher       ports.Hasher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	blocks ports.BlockFactory,
	backends ports.BackendFactory,
	datasets ports.DatasetIO,
	log ports.Logger,
	tracer ports.Tracer,
	telemetry ports.Telemetry,
	hasher ports.Hasher,
) *App {
	return &App{
		configLoader: loader,
		blocks:       blocks,
		backends:     backends,
		datasets:     datasets,
		logger:       log,
		tracer:       tracer,
		telemetry:    telemetry,
		hasher:       hasher,
	}
}

// FitOptions configures the Fit method.
type FitOptions struct {
	ConfigPath string
	DataPath   string
	// Blocks restricts the run to the named blocks and their ancestors. Empty means all blocks.
	Blocks  []string
	NoCache bool
	// Force retrains every block even when a persisted output exists.
	Force bool
}

// PredictOptions configures the Predict method.
type PredictOptions struct {
	ConfigPath string
	DataPath   string
	// OutPath receives the estimator outputs as CSV when set.
	OutPath string
	Blocks  []string
	NoCache bool
}

// PlanOptions configures the Plan method.
type PlanOptions struct {
	ConfigPath string
	Blocks     []string
}

// CleanOptions configures the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Fit trains the selected blocks on the dataset at opts.DataPath.
func (a *App) Fit(ctx context.Context, opts FitOptions) ([]domain.EstimatorResult, error) {
	pipeline, selected, err := a.load(opts.ConfigPath, opts.Blocks)
	if err != nil {
		return nil, err
	}

	data, labels, err := a.datasets.Read(opts.DataPath, pipeline.Dataset.Label)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load training data")
	}
	if labels == nil && pipeline.Dataset.Label != "" {
		a.logger.Warn("label column not found, fitting without labels", "label", pipeline.Dataset.Label)
	}

	backend, err := a.backends.Open(pipeline.Backend, configRoot(opts.ConfigPath))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open experiment backend")
	}
	defer a.closeBackend(backend)

	var runOpts []runner.RunOption
	if opts.NoCache {
		runOpts = append(runOpts, runner.WithoutRunCache())
	}
	if opts.Force {
		runOpts = append(runOpts, runner.IgnorePastResults())
	}

	results, err := a.newRunner(backend).Fit(ctx, selected, data, labels, runOpts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "fit failed"), "config", opts.ConfigPath)
	}
	a.logger.Info("fit finished", "estimators", len(results), "rows", data.Rows())
	return results, nil
}

// Predict applies the fitted blocks to the dataset at opts.DataPath.
func (a *App) Predict(ctx context.Context, opts PredictOptions) ([]domain.EstimatorResult, error) {
	pipeline, selected, err := a.load(opts.ConfigPath, opts.Blocks)
	if err != nil {
		return nil, err
	}

	// Labels are not needed for inference; a label column present in the file is dropped.
	data, _, err := a.datasets.Read(opts.DataPath, pipeline.Dataset.Label)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load inference data")
	}

	backend, err := a.backends.Open(pipeline.Backend, configRoot(opts.ConfigPath))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open experiment backend")
	}
	defer a.closeBackend(backend)

	var runOpts []runner.RunOption
	if opts.NoCache {
		runOpts = append(runOpts, runner.WithoutRunCache())
	}

	results, err := a.newRunner(backend).Predict(ctx, selected, data, runOpts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "predict failed"), "config", opts.ConfigPath)
	}

	if opts.OutPath != "" {
		if err := a.writePredictions(opts.OutPath, results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Plan returns the tasks a run over the selected blocks would execute, in order.
func (a *App) Plan(opts PlanOptions) ([]*domain.Task, error) {
	_, selected, err := a.load(opts.ConfigPath, opts.Blocks)
	if err != nil {
		return nil, err
	}
	return a.newRunner(nil).Plan(selected)
}

// Clean removes the persisted state of the configured backend.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	pipeline, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	path := pipeline.Backend.Location(configRoot(opts.ConfigPath))
	if path == "" {
		a.logger.Info("backend keeps no state, nothing to clean", "driver", pipeline.Backend.Driver)
		return nil
	}

	a.logger.Info("removing experiment backend", "path", path)
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove experiment backend"), "path", path)
	}
	return nil
}

func (a *App) load(configPath string, names []string) (*domain.Pipeline, []ports.Block, error) {
	pipeline, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	built, err := a.blocks.Build(pipeline)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to build blocks"), "config", configPath)
	}

	selected, err := selectBlocks(built, names)
	if err != nil {
		return nil, nil, err
	}
	return pipeline, selected, nil
}

func (a *App) newRunner(backend ports.ExperimentBackend) *runner.Runner {
	return runner.New(backend,
		runner.WithLogger(a.logger),
		runner.WithTracer(a.tracer),
		runner.WithTelemetry(a.telemetry),
		runner.WithHasher(a.hasher),
	)
}

func (a *App) writePredictions(path string, results []domain.EstimatorResult) error {
	if len(results) == 0 {
		a.logger.Warn("no estimator blocks, nothing to write")
		return nil
	}
	frame, err := domain.OutOfFoldFrame(results)
	if err != nil {
		return err
	}
	if err := a.datasets.Write(path, frame); err != nil {
		return zerr.Wrap(err, "failed to write predictions")
	}
	a.logger.Info("predictions written", "path", path, "columns", frame.Names())
	return nil
}

func (a *App) closeBackend(b ports.ExperimentBackend) {
	if err := b.Close(); err != nil {
		a.logger.Warn("failed to close experiment backend", "error", err.Error())
	}
}

// selectBlocks returns the named blocks, or every block when names is empty.
func selectBlocks(built []ports.Block, names []string) ([]ports.Block, error) {
	if len(names) == 0 || slices.Contains(names, "all") {
		return built, nil
	}

	byName := make(map[string]ports.Block, len(built))
	for _, b := range built {
		byName[b.Name()] = b
	}

	selected := make([]ports.Block, 0, len(names))
	for _, name := range names {
		b, ok := byName[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBlock, "cannot select block"), "block", name)
		}
		selected = append(selected, b)
	}
	return selected, nil
}

// configRoot returns the directory relative backend paths are resolved against.
func configRoot(configPath string) string {
	return filepath.Dir(configPath)
}
