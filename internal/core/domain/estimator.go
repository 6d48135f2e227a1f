package domain

import "go.trai.ch/zerr"

// EstimatorResult pairs an estimator block with the output it produced in a run.
type EstimatorResult struct {
	Key        Key
	Name       string
	RuntimeEnv string
	Output     *Frame
}

// OutOfFoldFrame lays estimator outputs side by side: one column per estimator,
// named by its runtime env and holding the first column of its output.
func OutOfFoldFrame(results []EstimatorResult) (*Frame, error) {
	cols := make([]Column, 0, len(results))
	for _, r := range results {
		if r.Output == nil || r.Output.Width() == 0 {
			err := zerr.With(zerr.Wrap(ErrInvalidBlockOutput, "estimator output has no columns"), "block", r.Name)
			return nil, zerr.With(err, "namespace", r.RuntimeEnv)
		}
		cols = append(cols, Column{Name: r.RuntimeEnv, Values: r.Output.At(0).Values})
	}
	return NewFrame(cols...)
}
