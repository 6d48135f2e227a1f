package blocks

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

type passthroughModel struct {
	Columns []string `json:"columns"`
}

// Passthrough returns its input unchanged. Fitting records the input columns so
// that inference can check them.
type Passthrough struct {
	base
	state[passthroughModel]
}

// NewPassthrough creates a Passthrough block.
func NewPassthrough(name string) *Passthrough {
	return &Passthrough{base: base{name: name, kind: KindPassthrough}}
}

// Fit records the input columns and returns the input.
func (p *Passthrough) Fit(ctx context.Context, input *domain.Frame, labels domain.Labels, _ ports.Environment) (*domain.Frame, error) {
	if err := p.beforeFit(ctx, input, labels); err != nil {
		return nil, err
	}
	p.fitted = &passthroughModel{Columns: input.Names()}
	return input, nil
}

// Transform returns the fitted columns of input.
func (p *Passthrough) Transform(_ context.Context, input *domain.Frame) (*domain.Frame, error) {
	m, err := p.model(p.name)
	if err != nil {
		return nil, err
	}
	values, err := selectColumns(p.name, input, m.Columns)
	if err != nil {
		return nil, err
	}
	cols := make([]domain.Column, len(values))
	for i, v := range values {
		cols[i] = domain.Column{Name: m.Columns[i], Values: v}
	}
	if len(cols) == 0 {
		return domain.EmptyFrame(input.Rows()), nil
	}
	return domain.NewFrame(cols...)
}
