package runner

import (
	"context"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// runState is the scheduler state of one Fit or Predict call.
type runState struct {
	r      *Runner
	phase  domain.Phase
	cfg    runConfig
	labels domain.Labels
	plan   *plan
	source *sourceAssembler
}

// executeTask runs the i-th task of the plan and returns the block's output.
func (s *runState) executeTask(ctx context.Context, i int) (*domain.Frame, error) {
	t := s.plan.tasks[i]
	b := s.plan.blocks[i]

	ctx, span := s.r.tracer.Start(ctx, t.Name,
		ports.WithAttribute("kiln.block", t.Name),
		ports.WithAttribute("kiln.namespace", b.RuntimeEnv()),
	)
	defer span.End()

	ctx, vertex := s.r.telemetry.Record(ctx, t.Name, ports.WithInputs(t.ParentNames...))

	start := s.r.now()
	out, err := s.runTask(ctx, t, b, s.plan.tasks[:i], vertex)
	if err != nil {
		span.RecordError(err)
		span.SetAttribute("kiln.status", string(domain.VertexStatusFailed))
		vertex.Complete(err)
		return nil, err
	}

	status := t.Status()
	if !s.phase.IsFit() {
		status = domain.VertexStatusCompleted
	}
	span.SetAttribute("kiln.status", string(status))
	span.SetAttribute("kiln.run_fit", t.RunFit)
	span.SetAttribute("kiln.cached", !t.RunFit && s.phase.IsFit())
	span.SetAttribute("kiln.rows", out.Rows())
	vertex.Complete(nil)

	s.r.logger.Info("block finished",
		"block", t.Name,
		"elapsed", s.r.now().Sub(start).Round(time.Millisecond).String(),
	)
	return out, nil
}

func (s *runState) runTask(
	ctx context.Context,
	t *domain.Task,
	b ports.Block,
	earlier []*domain.Task,
	vertex ports.Vertex,
) (*domain.Frame, error) {
	env, err := s.r.backend.AsEnvironment(b.RuntimeEnv())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open block namespace")
	}

	if !s.phase.IsFit() {
		return s.infer(ctx, t, b, env, vertex)
	}

	changed := t.ChangedParents(earlier)
	if len(changed) > 0 {
		s.r.logger.Info("related blocks changed, ignoring cache",
			"block", t.Name,
			"changed", domain.TaskNames(changed),
		)
	}

	state := domain.CacheState{
		IgnoreCache:        s.cfg.ignorePastResults,
		AncestorsRetrained: len(changed) > 0,
	}
	// The backend is only probed when its answer can still change the decision.
	if !state.IgnoreCache && !state.AncestorsRetrained {
		state.Fitted = b.CheckIsFitted(env)
		if state.Fitted {
			state.HasOutput, err = env.Has(domain.TrainOutputKey)
			if err != nil {
				return nil, zerr.Wrap(err, "failed to look up persisted output")
			}
		}
	} else if s.cfg.ignorePastResults {
		s.r.logger.Debug("ignoring past results, retraining", "block", t.Name)
	}

	if domain.Decide(s.phase, state) == domain.DecisionServe {
		return s.serve(t, b, env, vertex)
	}
	return s.train(ctx, t, b, env, vertex)
}

// serve returns the persisted training output without recomputation.
func (s *runState) serve(t *domain.Task, b ports.Block, env ports.Environment, vertex ports.Vertex) (*domain.Frame, error) {
	s.r.logger.Info("already fitted, using cached output",
		"block", t.Name,
		"namespace", env.Location(),
	)

	out, err := b.LoadOutput(domain.TrainOutputKey, env, true)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load cached output")
	}
	if err := s.validate(t, out); err != nil {
		return nil, err
	}

	vertex.Cached()
	t.RunFit = false
	t.Completed = true
	return out, nil
}

// train assembles the input, fits the block, runs its hooks and persists the output.
func (s *runState) train(
	ctx context.Context,
	t *domain.Task,
	b ports.Block,
	env ports.Environment,
	vertex ports.Vertex,
) (*domain.Frame, error) {
	input, err := s.source.assemble(ctx, b)
	if err != nil {
		return nil, err
	}
	vertex.Log(domain.LogLevelDebug, "input assembled")

	stop := env.MarkTime("fit")
	out, err := b.Fit(ctx, input, s.labels, env)
	stop()
	if err != nil {
		return nil, err
	}
	if err := s.validate(t, out); err != nil {
		return nil, err
	}

	if err := b.Report(ctx, input, s.labels, out, env); err != nil {
		return nil, zerr.Wrap(err, "block report failed")
	}

	if s.r.backend.CanSave() {
		if err := b.Frozen(env); err != nil {
			return nil, zerr.Wrap(err, "failed to persist fitted state")
		}
		b.ClearFitCache()
	}

	if err := s.persist(t, env, out); err != nil {
		return nil, err
	}

	t.RunFit = true
	t.Completed = true
	return out, nil
}

// infer applies the fitted block to its assembled input.
// Fitted state was loaded and checked for every block before the first task ran.
func (s *runState) infer(
	ctx context.Context,
	t *domain.Task,
	b ports.Block,
	env ports.Environment,
	vertex ports.Vertex,
) (*domain.Frame, error) {
	input, err := s.source.assemble(ctx, b)
	if err != nil {
		return nil, err
	}
	vertex.Log(domain.LogLevelDebug, "input assembled")

	stop := env.MarkTime("transform")
	out, err := b.Transform(ctx, input)
	stop()
	if err != nil {
		return nil, err
	}
	if err := s.validate(t, out); err != nil {
		return nil, err
	}

	if err := s.persist(t, env, out); err != nil {
		return nil, err
	}

	t.Completed = true
	return out, nil
}

// validate checks that a block produced a table with one row per dataset row.
func (s *runState) validate(t *domain.Task, out *domain.Frame) error {
	if out == nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidBlockOutput, "block returned no table"), "block", t.Name)
	}
	if out.Rows() != s.source.root.Rows() {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidBlockOutput, "block changed the row count"), "block", t.Name)
		err = zerr.With(err, "rows", out.Rows())
		return zerr.With(err, "expected_rows", s.source.root.Rows())
	}
	return nil
}

// persist stores the output and its metadata under the phase's storage key.
func (s *runState) persist(t *domain.Task, env ports.Environment, out *domain.Frame) error {
	if !s.r.backend.CanSave() {
		return nil
	}

	key := s.phase.StorageKey()
	s.r.logger.Debug("saving output", "block", t.Name, "storage_key", key)

	if err := env.SaveFrame(key, out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save block output"), "storage_key", key)
	}

	info := domain.OutputInfo{
		Namespace:  env.Namespace(),
		StorageKey: key,
		Rows:       out.Rows(),
		Columns:    out.Names(),
		Timestamp:  s.r.now(),
	}
	if s.r.hasher != nil {
		info.Fingerprint = s.r.hasher.Fingerprint(out)
	}
	if err := env.SaveObject(key+domain.OutputInfoSuffix, info); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save output metadata"), "storage_key", key)
	}
	return nil
}
