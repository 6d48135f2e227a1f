package blocks

import (
	"math"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// linearModel is a weight per feature plus an intercept.
type linearModel struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (m linearModel) predict(features [][]float64, row int) float64 {
	y := m.Intercept
	for j, col := range features {
		y += m.Weights[j] * col[row]
	}
	return y
}

// fold returns the training and held-out row indices of fold k out of n.
// Row i is held out by fold i mod n.
func fold(rows, n, k int) (train, test []int) {
	for i := range rows {
		if i%n == k {
			test = append(test, i)
		} else {
			train = append(train, i)
		}
	}
	return train, test
}

// fitRidge solves the ridge normal equations on the given rows.
// Features and target are centered so that the intercept is not penalized.
func fitRidge(features [][]float64, target []float64, rows []int, alpha float64) (linearModel, error) {
	p := len(features)
	n := float64(len(rows))

	means := make([]float64, p)
	for j, col := range features {
		for _, r := range rows {
			means[j] += col[r]
		}
		means[j] /= n
	}
	var yMean float64
	for _, r := range rows {
		yMean += target[r]
	}
	yMean /= n

	a := make([][]float64, p)
	b := make([]float64, p)
	for i := range p {
		a[i] = make([]float64, p)
		for j := range p {
			var sum float64
			for _, r := range rows {
				sum += (features[i][r] - means[i]) * (features[j][r] - means[j])
			}
			a[i][j] = sum
		}
		a[i][i] += alpha
		for _, r := range rows {
			b[i] += (features[i][r] - means[i]) * (target[r] - yMean)
		}
	}

	w, err := solve(a, b)
	if err != nil {
		return linearModel{}, err
	}

	intercept := yMean
	for j := range p {
		intercept -= w[j] * means[j]
	}
	return linearModel{Weights: w, Intercept: intercept}, nil
}

// solve solves a·x = b by Gaussian elimination with partial pivoting.
// a and b are overwritten.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := range n {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidParam, "linear system is singular, increase alpha"), "feature", col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, nil
}

// meanAbs returns, per feature, the mean absolute weight across models.
func meanAbs(models []linearModel) []float64 {
	if len(models) == 0 {
		return nil
	}
	out := make([]float64, len(models[0].Weights))
	for _, m := range models {
		for j, w := range m.Weights {
			out[j] += math.Abs(w)
		}
	}
	for j := range out {
		out[j] /= float64(len(models))
	}
	return out
}

func checkFolds(block string, folds, rows int) error {
	if folds < 2 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidParam, "at least two folds are required"), "block", block), "folds", folds)
	}
	if folds > rows {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidParam, "more folds than rows"), "block", block)
		err = zerr.With(err, "folds", folds)
		return zerr.With(err, "rows", rows)
	}
	return nil
}
