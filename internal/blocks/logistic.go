package blocks

import (
	"context"
	"math"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProbabilityColumn names the output column of the classification estimator.
const ProbabilityColumn = "probability"

// LogisticParams configures a Logistic estimator.
type LogisticParams struct {
	Folds        int
	LearningRate float64
	Epochs       int
	L2           float64
}

type logisticFold struct {
	linearModel
	// Means and Stds standardize the features before the linear model is applied.
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

type logisticModel struct {
	Columns []string       `json:"columns"`
	Folds   []logisticFold `json:"folds"`
}

// Logistic is a binary logistic regression estimator trained by gradient descent
// with class weights balanced on every training fold.
//
// Labels must be 0 or 1. Fit returns out-of-fold probabilities of class 1 and
// Transform averages the fold models.
type Logistic struct {
	base
	state[logisticModel]

	params  LogisticParams
	stopper Stopper
}

// NewLogistic creates a Logistic estimator. A nil stopper trains for all epochs.
func NewLogistic(name string, params LogisticParams, stopper Stopper) (*Logistic, error) {
	if params.LearningRate <= 0 {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidParam, "learning_rate must be positive"), "block", name)
		return nil, zerr.With(err, "learning_rate", params.LearningRate)
	}
	if params.Epochs < 1 {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidParam, "epochs must be at least 1"), "block", name)
		return nil, zerr.With(err, "epochs", params.Epochs)
	}
	if params.L2 < 0 {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidParam, "l2 must not be negative"), "block", name)
		return nil, zerr.With(err, "l2", params.L2)
	}
	l := &Logistic{
		base:    base{name: name, kind: KindLogistic, estimator: true},
		params:  params,
		stopper: stopper,
	}
	l.importance = l.weights
	return l, nil
}

// Fit trains the fold models and returns the out-of-fold probabilities.
func (l *Logistic) Fit(ctx context.Context, input *domain.Frame, labels domain.Labels, _ ports.Environment) (*domain.Frame, error) {
	if err := l.beforeFit(ctx, input, labels); err != nil {
		return nil, err
	}
	if err := checkLabels(l.name, input, labels); err != nil {
		return nil, err
	}
	if err := checkFolds(l.name, l.params.Folds, input.Rows()); err != nil {
		return nil, err
	}
	classes, err := binaryClasses(l.name, labels)
	if err != nil {
		return nil, err
	}

	features := columnValues(input)
	oof := make([]float64, input.Rows())
	m := &logisticModel{Columns: input.Names(), Folds: make([]logisticFold, l.params.Folds)}

	for k := range l.params.Folds {
		train, test := fold(input.Rows(), l.params.Folds, k)
		if err := checkFoldClasses(labels, train, classes); err != nil {
			return nil, zerr.With(zerr.With(err, "block", l.name), "fold", k)
		}

		lf, err := l.fitFold(ctx, features, labels, train)
		if err != nil {
			return nil, err
		}
		for _, row := range test {
			oof[row] = lf.probability(features, row)
		}
		m.Folds[k] = lf
	}

	l.fitted = m
	return domain.NewFrame(domain.Column{Name: ProbabilityColumn, Values: oof})
}

// Transform returns the mean probability of the fold models.
func (l *Logistic) Transform(_ context.Context, input *domain.Frame) (*domain.Frame, error) {
	m, err := l.model(l.name)
	if err != nil {
		return nil, err
	}
	features, err := selectColumns(l.name, input, m.Columns)
	if err != nil {
		return nil, err
	}

	out := make([]float64, input.Rows())
	for row := range out {
		for _, lf := range m.Folds {
			out[row] += lf.probability(features, row)
		}
		out[row] /= float64(len(m.Folds))
	}
	return domain.NewFrame(domain.Column{Name: ProbabilityColumn, Values: out})
}

func (l *Logistic) fitFold(ctx context.Context, features [][]float64, labels domain.Labels, rows []int) (logisticFold, error) {
	p := len(features)
	lf := logisticFold{
		linearModel: linearModel{Weights: make([]float64, p)},
		Means:       make([]float64, p),
		Stds:        make([]float64, p),
	}

	x := make([][]float64, p)
	for j, col := range features {
		sub := make([]float64, len(rows))
		for i, r := range rows {
			sub[i] = col[r]
		}
		lf.Means[j], lf.Stds[j] = meanStd(sub)
		for i := range sub {
			sub[i] = (sub[i] - lf.Means[j]) / lf.Stds[j]
		}
		x[j] = sub
	}

	y := make([]float64, len(rows))
	for i, r := range rows {
		y[i] = labels[r]
	}
	weights := balancedWeights(y)

	if l.stopper != nil {
		l.stopper.Reset()
	}

	grad := make([]float64, p)
	for epoch := range l.params.Epochs {
		if err := ctx.Err(); err != nil {
			return logisticFold{}, err
		}

		clear(grad)
		var gradIntercept, loss, total float64
		for i := range y {
			z := lf.Intercept
			for j := range p {
				z += lf.Weights[j] * x[j][i]
			}
			prob := sigmoid(z)
			w := weights[i]
			diff := w * (prob - y[i])
			for j := range p {
				grad[j] += diff * x[j][i]
			}
			gradIntercept += diff
			loss -= w * (y[i]*math.Log(clamp(prob)) + (1-y[i])*math.Log(clamp(1-prob)))
			total += w
		}

		for j := range p {
			lf.Weights[j] -= l.params.LearningRate * (grad[j]/total + l.params.L2*lf.Weights[j])
		}
		lf.Intercept -= l.params.LearningRate * gradIntercept / total

		if l.stopper != nil && l.stopper.Stop(epoch, loss/total) {
			break
		}
	}
	return lf, nil
}

func (l *Logistic) weights() []float64 {
	if l.fitted == nil {
		return nil
	}
	models := make([]linearModel, len(l.fitted.Folds))
	for i, f := range l.fitted.Folds {
		models[i] = f.linearModel
	}
	return meanAbs(models)
}

func (f logisticFold) probability(features [][]float64, row int) float64 {
	z := f.Intercept
	for j, col := range features {
		z += f.Weights[j] * (col[row] - f.Means[j]) / f.Stds[j]
	}
	return sigmoid(z)
}

// binaryClasses returns the classes present in labels, which must all be 0 or 1.
func binaryClasses(block string, labels domain.Labels) ([]float64, error) {
	var seen [2]bool
	for i, y := range labels {
		if y != 0 && y != 1 {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidLabels, "labels must be 0 or 1"), "block", block)
			err = zerr.With(err, "row", i)
			return nil, zerr.With(err, "label", y)
		}
		seen[int(y)] = true
	}
	var classes []float64
	for c, ok := range seen {
		if ok {
			classes = append(classes, float64(c))
		}
	}
	return classes, nil
}

// checkFoldClasses fails when the training rows lack one of the classes.
func checkFoldClasses(labels domain.Labels, rows []int, classes []float64) error {
	for _, c := range classes {
		found := false
		for _, r := range rows {
			if labels[r] == c {
				found = true
				break
			}
		}
		if !found {
			return zerr.With(zerr.Wrap(domain.ErrUnseenClass, "training fold lacks a class"), "class", c)
		}
	}
	return nil
}

// balancedWeights weights every row by n / (classes * count(class)).
func balancedWeights(y []float64) []float64 {
	var counts [2]float64
	for _, v := range y {
		counts[int(v)]++
	}
	present := 0.0
	for _, c := range counts {
		if c > 0 {
			present++
		}
	}

	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = float64(len(y)) / (present * counts[int(v)])
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp(p float64) float64 {
	const eps = 1e-12
	return math.Min(math.Max(p, eps), 1-eps)
}
