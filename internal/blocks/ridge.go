package blocks

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// PredictionColumn names the output column of the regression estimator.
const PredictionColumn = "prediction"

type ridgeModel struct {
	Columns []string      `json:"columns"`
	Folds   []linearModel `json:"folds"`
}

// Ridge is an L2-regularized linear regression estimator.
//
// Fit trains one model per fold and returns out-of-fold predictions, so that every
// row is predicted by a model that never saw it. Transform averages the fold models.
type Ridge struct {
	base
	state[ridgeModel]

	alpha float64
	folds int
}

// NewRidge creates a Ridge estimator.
func NewRidge(name string, alpha float64, folds int) (*Ridge, error) {
	if alpha < 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidParam, "alpha must not be negative"), "block", name), "alpha", alpha)
	}
	r := &Ridge{
		base:  base{name: name, kind: KindRidge, estimator: true},
		alpha: alpha,
		folds: folds,
	}
	r.importance = r.weights
	return r, nil
}

// Fit trains the fold models and returns the out-of-fold predictions.
func (r *Ridge) Fit(ctx context.Context, input *domain.Frame, labels domain.Labels, _ ports.Environment) (*domain.Frame, error) {
	if err := r.beforeFit(ctx, input, labels); err != nil {
		return nil, err
	}
	if err := checkLabels(r.name, input, labels); err != nil {
		return nil, err
	}
	if err := checkFolds(r.name, r.folds, input.Rows()); err != nil {
		return nil, err
	}

	features := columnValues(input)
	oof := make([]float64, input.Rows())
	m := &ridgeModel{Columns: input.Names(), Folds: make([]linearModel, r.folds)}

	for k := range r.folds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		train, test := fold(input.Rows(), r.folds, k)
		lm, err := fitRidge(features, labels, train, r.alpha)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "block", r.name), "fold", k)
		}
		for _, row := range test {
			oof[row] = lm.predict(features, row)
		}
		m.Folds[k] = lm
	}

	r.fitted = m
	return domain.NewFrame(domain.Column{Name: PredictionColumn, Values: oof})
}

// Transform returns the mean prediction of the fold models.
func (r *Ridge) Transform(_ context.Context, input *domain.Frame) (*domain.Frame, error) {
	m, err := r.model(r.name)
	if err != nil {
		return nil, err
	}
	features, err := selectColumns(r.name, input, m.Columns)
	if err != nil {
		return nil, err
	}

	out := make([]float64, input.Rows())
	for row := range out {
		for _, lm := range m.Folds {
			out[row] += lm.predict(features, row)
		}
		out[row] /= float64(len(m.Folds))
	}
	return domain.NewFrame(domain.Column{Name: PredictionColumn, Values: out})
}

func (r *Ridge) weights() []float64 {
	if r.fitted == nil {
		return nil
	}
	return meanAbs(r.fitted.Folds)
}

func columnValues(f *domain.Frame) [][]float64 {
	out := make([][]float64, f.Width())
	for i, c := range f.Columns() {
		out[i] = c.Values
	}
	return out
}
