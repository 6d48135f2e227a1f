// Package runner executes a block DAG in a training or inference context.
//
// Tasks run one at a time in topological order. In the training context a task
// serves its persisted output when the block is already fitted, unless the caller
// asked to ignore past results or one of its parents was retrained in the same run.
package runner

import (
	"context"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner orchestrates Fit and Predict runs against an experiment backend.
type Runner struct {
	backend         ports.ExperimentBackend
	logger          ports.Logger
	tracer          ports.Tracer
	telemetry       ports.Telemetry
	hasher          ports.Hasher
	now             func() time.Time
	loadConcurrency int
}

// New creates a Runner persisting to backend.
func New(backend ports.ExperimentBackend, opts ...Option) *Runner {
	r := &Runner{
		backend:         backend,
		logger:          nopLogger{},
		tracer:          nopTracer{},
		telemetry:       nopTelemetry{},
		now:             time.Now,
		loadConcurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit trains blocks and all of their ancestors on data and returns the outputs of
// the estimator blocks. The estimator outputs are also saved side by side as the
// out-of-folds artifact.
func (r *Runner) Fit(
	ctx context.Context,
	blocks []ports.Block,
	data *domain.Frame,
	labels domain.Labels,
	opts ...RunOption,
) ([]domain.EstimatorResult, error) {
	ctx, span := r.tracer.Start(ctx, "kiln.fit")
	defer span.End()

	results, err := r.run(ctx, domain.PhaseTrain, blocks, data, labels, newRunConfig(opts))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := r.saveOutOfFolds(results); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}

// Predict applies previously fitted blocks and all of their ancestors to data and
// returns the outputs of the estimator blocks.
// Every block must be fitted in its namespace; otherwise nothing is written.
func (r *Runner) Predict(
	ctx context.Context,
	blocks []ports.Block,
	data *domain.Frame,
	opts ...RunOption,
) ([]domain.EstimatorResult, error) {
	ctx, span := r.tracer.Start(ctx, "kiln.predict")
	defer span.End()

	results, err := r.run(ctx, domain.PhasePredict, blocks, data, nil, newRunConfig(opts))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}

// Plan returns the tasks a run over blocks would execute, in order, without running them.
func (r *Runner) Plan(blocks []ports.Block) ([]*domain.Task, error) {
	p, err := buildPlan(blocks)
	if err != nil {
		return nil, err
	}
	return p.tasks, nil
}

func (r *Runner) run(
	ctx context.Context,
	phase domain.Phase,
	blocks []ports.Block,
	data *domain.Frame,
	labels domain.Labels,
	cfg runConfig,
) ([]domain.EstimatorResult, error) {
	p, err := buildPlan(blocks)
	if err != nil {
		return nil, err
	}

	r.tracer.EmitPlan(ctx, domain.TaskNames(p.tasks))
	r.showTasks(p.tasks)

	if !phase.IsFit() {
		if err := r.preflight(p); err != nil {
			return nil, err
		}
	}

	s := &runState{
		r:      r,
		phase:  phase,
		cfg:    cfg,
		labels: labels,
		plan:   p,
		source: newSourceAssembler(r.backend, phase, data, p.blocks, r.loadConcurrency),
	}
	defer s.source.reset()

	var results []domain.EstimatorResult
	for i, t := range p.tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b := p.blocks[i]
		out, err := s.executeTask(ctx, i)
		if err != nil {
			return nil, r.taskFailed(p.tasks, t, err)
		}

		s.source.release(b)
		if cfg.runCache {
			s.source.store(b, out)
		}

		if b.IsEstimator() {
			results = append(results, domain.EstimatorResult{
				Key:        b.Key(),
				Name:       b.Name(),
				RuntimeEnv: b.RuntimeEnv(),
				Output:     out,
			})
		}
	}

	r.showTasks(p.tasks)
	return results, nil
}

// preflight loads the fitted state of every block and checks it before any
// transform runs, so an unfitted block aborts the run without writes.
func (r *Runner) preflight(p *plan) error {
	for _, b := range p.blocks {
		env, err := r.backend.AsEnvironment(b.RuntimeEnv())
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to open block namespace"), "block", b.Name())
		}
		if err := b.Unzip(env); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load fitted state"), "block", b.Name())
		}
		if !b.CheckIsFitted(env) {
			err := zerr.With(zerr.Wrap(domain.ErrNotFitted, "fit the block before running inference"), "block", b.Name())
			return zerr.With(err, "namespace", env.Location())
		}
	}
	return nil
}

func (r *Runner) saveOutOfFolds(results []domain.EstimatorResult) error {
	if len(results) == 0 {
		r.logger.Debug("no estimator blocks, skipping out-of-folds artifact")
		return nil
	}

	oof, err := domain.OutOfFoldFrame(results)
	if err != nil {
		return err
	}
	if !r.backend.CanSave() {
		return nil
	}
	if err := r.backend.SaveDataframe(domain.OutOfFoldsArtifact, oof); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save artifact"), "artifact", domain.OutOfFoldsArtifact)
	}
	return nil
}

func (r *Runner) taskFailed(tasks []*domain.Task, t *domain.Task, err error) error {
	r.showTasks(tasks)
	status := strings.TrimRight(domain.StatusTable(tasks), "\n")
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrTaskExecutionFailed.Error()), "block", t.Name)
	return zerr.With(wrapped, "status", status)
}

func (r *Runner) showTasks(tasks []*domain.Task) {
	r.logger.Info(strings.Repeat("=", 40))
	r.logger.Info("> task status")
	for _, t := range tasks {
		r.logger.Info(t.String())
	}
}
