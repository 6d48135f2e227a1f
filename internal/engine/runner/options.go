package runner

import (
	"time"

	"go.trai.ch/kiln/internal/core/ports"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for task status and cache notices.
func WithLogger(l ports.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithTracer sets the tracer that receives one span per run and per task.
func WithTracer(t ports.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

// WithTelemetry sets the progress recorder that receives one vertex per task.
func WithTelemetry(t ports.Telemetry) Option {
	return func(r *Runner) {
		r.telemetry = t
	}
}

// WithHasher enables output fingerprints in the persisted output metadata.
func WithHasher(h ports.Hasher) Option {
	return func(r *Runner) {
		r.hasher = h
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithLoadConcurrency bounds how many parent outputs are loaded from the backend at once.
func WithLoadConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.loadConcurrency = n
		}
	}
}

// RunOption configures a single Fit or Predict call.
type RunOption func(*runConfig)

type runConfig struct {
	runCache          bool
	ignorePastResults bool
}

func newRunConfig(opts []RunOption) runConfig {
	cfg := runConfig{runCache: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithoutRunCache disables the run-scoped output cache. Every parent output is
// then read back from the backend.
func WithoutRunCache() RunOption {
	return func(c *runConfig) {
		c.runCache = false
	}
}

// IgnorePastResults forces every block to retrain, even when a persisted output exists.
// It has no effect on Predict.
func IgnorePastResults() RunOption {
	return func(c *runConfig) {
		c.ignorePastResults = true
	}
}
