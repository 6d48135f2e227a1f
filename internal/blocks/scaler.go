package blocks

import (
	"context"
	"math"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

type scalerModel struct {
	Columns []string  `json:"columns"`
	Means   []float64 `json:"means"`
	Stds    []float64 `json:"stds"`
}

// StandardScaler centers every column on its mean and divides it by its standard
// deviation. Constant columns are only centered.
type StandardScaler struct {
	base
	state[scalerModel]
}

// NewStandardScaler creates a StandardScaler block.
func NewStandardScaler(name string) *StandardScaler {
	return &StandardScaler{base: base{name: name, kind: KindStandardScaler}}
}

// Fit learns the column statistics and returns the scaled input.
func (s *StandardScaler) Fit(ctx context.Context, input *domain.Frame, labels domain.Labels, _ ports.Environment) (*domain.Frame, error) {
	if err := s.beforeFit(ctx, input, labels); err != nil {
		return nil, err
	}

	m := &scalerModel{
		Columns: input.Names(),
		Means:   make([]float64, input.Width()),
		Stds:    make([]float64, input.Width()),
	}
	for i, col := range input.Columns() {
		m.Means[i], m.Stds[i] = meanStd(col.Values)
	}
	s.fitted = m
	return s.apply(input, m)
}

// Transform scales input with the fitted statistics.
func (s *StandardScaler) Transform(_ context.Context, input *domain.Frame) (*domain.Frame, error) {
	m, err := s.model(s.name)
	if err != nil {
		return nil, err
	}
	return s.apply(input, m)
}

func (s *StandardScaler) apply(input *domain.Frame, m *scalerModel) (*domain.Frame, error) {
	values, err := selectColumns(s.name, input, m.Columns)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return domain.EmptyFrame(input.Rows()), nil
	}

	cols := make([]domain.Column, len(values))
	for i, v := range values {
		scaled := make([]float64, len(v))
		for r, x := range v {
			scaled[r] = (x - m.Means[i]) / m.Stds[i]
		}
		cols[i] = domain.Column{Name: m.Columns[i], Values: scaled}
	}
	return domain.NewFrame(cols...)
}

// meanStd returns the mean and population standard deviation of values.
// A zero deviation is reported as 1.
func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / float64(len(values)))
	if std == 0 {
		std = 1
	}
	return mean, std
}
