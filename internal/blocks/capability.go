package blocks

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// FitInfo describes a finished fit to the AfterFit hooks.
type FitInfo struct {
	Input  *domain.Frame
	Labels domain.Labels
	Output *domain.Frame
	// Importance holds one weight per input column, or nil when the block has none.
	Importance []float64
}

// TrainingStrategy is a capability run around a block's fit.
type TrainingStrategy interface {
	// BeforeFit runs before training starts. An error aborts the fit.
	BeforeFit(ctx context.Context, input *domain.Frame, labels domain.Labels) error
	// AfterFit runs once the fit produced a valid output.
	AfterFit(ctx context.Context, info FitInfo, env ports.Environment) error
}

// Stopper decides when an iterative fit should stop.
type Stopper interface {
	// Reset starts a new training run, such as the next fold.
	Reset()
	// Stop is called after every epoch with the training loss.
	Stop(epoch int, loss float64) bool
}

// ImportanceReporter saves the per-column importance of a fit as a one-row frame
// whose columns are named after the input columns.
type ImportanceReporter struct{}

// BeforeFit does nothing.
func (ImportanceReporter) BeforeFit(context.Context, *domain.Frame, domain.Labels) error {
	return nil
}

// AfterFit saves the importance frame under FeatureImportanceKey.
func (ImportanceReporter) AfterFit(_ context.Context, info FitInfo, env ports.Environment) error {
	if info.Importance == nil {
		return nil
	}
	names := info.Input.Names()
	if len(names) != len(info.Importance) {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidBlockOutput, "importance does not match the input columns"), "columns", len(names))
		return zerr.With(err, "weights", len(info.Importance))
	}

	cols := make([]domain.Column, len(names))
	for i, name := range names {
		cols[i] = domain.Column{Name: name, Values: []float64{info.Importance[i]}}
	}
	frame, err := domain.NewFrame(cols...)
	if err != nil {
		return err
	}
	if err := env.SaveFrame(FeatureImportanceKey, frame); err != nil {
		return zerr.Wrap(err, "failed to save feature importance")
	}
	return nil
}

// EarlyStopping stops a fit once the loss has not improved by at least MinDelta
// for Patience consecutive epochs.
type EarlyStopping struct {
	Patience int
	MinDelta float64

	best  float64
	stale int
	// epochs holds the number of epochs run per training run since the last BeforeFit.
	epochs []int
}

// EarlyStoppingRecord is the persisted summary of the last fit.
type EarlyStoppingRecord struct {
	Patience int     `json:"patience"`
	MinDelta float64 `json:"min_delta"`
	Epochs   []int   `json:"epochs"`
}

// NewEarlyStopping creates an EarlyStopping strategy.
func NewEarlyStopping(patience int, minDelta float64) *EarlyStopping {
	return &EarlyStopping{Patience: patience, MinDelta: minDelta}
}

// Reset starts tracking a new training run.
func (e *EarlyStopping) Reset() {
	e.best = 0
	e.stale = -1
	e.epochs = append(e.epochs, 0)
}

// Stop records the epoch and reports whether patience ran out.
func (e *EarlyStopping) Stop(epoch int, loss float64) bool {
	if len(e.epochs) == 0 {
		e.Reset()
	}
	e.epochs[len(e.epochs)-1] = epoch + 1

	if e.stale < 0 || loss < e.best-e.MinDelta {
		e.best = loss
		e.stale = 0
		return false
	}
	e.stale++
	return e.stale >= e.Patience
}

// Epochs returns the number of epochs run per training run since the last fit started.
func (e *EarlyStopping) Epochs() []int {
	return append([]int(nil), e.epochs...)
}

// BeforeFit validates the configuration and forgets previous runs.
func (e *EarlyStopping) BeforeFit(context.Context, *domain.Frame, domain.Labels) error {
	if e.Patience < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidParam, "patience must be at least 1"), "patience", e.Patience)
	}
	if e.MinDelta < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidParam, "min_delta must not be negative"), "min_delta", e.MinDelta)
	}
	e.epochs = nil
	return nil
}

// AfterFit saves the epochs run per training run under EarlyStoppingKey.
func (e *EarlyStopping) AfterFit(_ context.Context, _ FitInfo, env ports.Environment) error {
	rec := EarlyStoppingRecord{Patience: e.Patience, MinDelta: e.MinDelta, Epochs: e.Epochs()}
	if err := env.SaveObject(EarlyStoppingKey, rec); err != nil {
		return zerr.Wrap(err, "failed to save early stopping record")
	}
	return nil
}
