// SPDX-License-Identifier: MIT

package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcurve/piecewise"
	"github.com/katalvlaran/lvcurve/spline"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Shared data sets.
var (
	// irregular, strictly increasing, no two adjacent |slopes| equal
	xIrregular = []float64{0, 1, 2.2, 3, 4.1, 5.5, 7}
	yIrregular = []float64{1, 1.8, 2.1, 3.5, 3.6, 5, 5.2}

	// positive data whose plain cubic dips below zero
	xDip = []float64{0, 1, 2, 3, 4.5, 5, 6.5}
	yDip = []float64{5, 0.1, 0.05, 3, 0.02, 0.1, 4}
)

// numericSensitivity differentiates the coefficients of Fit(x, y, m) with
// respect to the ordinates by central differences. Clamped endpoint
// derivatives in y are held fixed.
func numericSensitivity(t *testing.T, x, y []float64, m spline.Method) [][][]float64 {
	t.Helper()
	base, err := spline.Fit(x, y, m, nil)
	require.NoError(t, err)

	n := len(x)
	off := (len(y) - n) / 2
	rows, order := len(base.Coefs), base.Order
	jac := mat.NewDense(rows*order, n, nil)
	work := make([]float64, len(y))
	var fitErr error
	fd.Jacobian(jac, func(dst, v []float64) {
		copy(work, y)
		copy(work[off:off+n], v)
		res, err := spline.Fit(x, work, m, nil)
		if err != nil {
			fitErr = err
			return
		}
		for i, row := range res.Coefs {
			copy(dst[i*order:(i+1)*order], row)
		}
	}, append([]float64(nil), y[off:off+n]...), &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    1e-6,
	})
	require.NoError(t, fitErr)

	out := make([][][]float64, rows)
	for i := range out {
		out[i] = make([][]float64, order)
		for j := range out[i] {
			out[i][j] = make([]float64, n)
			for k := 0; k < n; k++ {
				out[i][j][k] = jac.At(i*order+j, k)
			}
		}
	}

	return out
}

// requireJacobianClose compares two per-interval Jacobians with a relative
// tolerance (absolute below magnitude 1).
func requireJacobianClose(t *testing.T, want, got [][][]float64, rel float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]))
		for j := range want[i] {
			require.Len(t, got[i][j], len(want[i][j]))
			for k, w := range want[i][j] {
				tol := rel * math.Max(1, math.Abs(w))
				require.InDelta(t, w, got[i][j][k], tol, "interval %d coef %d ordinate %d", i, j, k)
			}
		}
	}
}

// sample evaluates res at per evenly spaced points in every interval,
// knots included.
func sample(t *testing.T, res *piecewise.Result, per int) []float64 {
	t.Helper()
	var out []float64
	for i := 0; i+1 < len(res.Knots); i++ {
		a, b := res.Knots[i], res.Knots[i+1]
		for k := 0; k < per; k++ {
			v, err := res.Evaluate(a + (b-a)*float64(k)/float64(per))
			require.NoError(t, err)
			out = append(out, v)
		}
	}
	v, err := res.Evaluate(res.Knots[len(res.Knots)-1])
	require.NoError(t, err)

	return append(out, v)
}
