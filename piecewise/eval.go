// SPDX-License-Identifier: MIT

package piecewise

import (
	"fmt"
	"sort"
)

// Locate returns the index of the interval containing x. The right end of
// the last interval belongs to that interval.
//
// Complexity: O(log n).
func (r *Result) Locate(x float64) (int, error) {
	n := len(r.Knots)
	if x < r.Knots[0] || x > r.Knots[n-1] {
		return 0, fmt.Errorf("Locate: x=%g not in [%g, %g]: %w", x, r.Knots[0], r.Knots[n-1], ErrOutOfRange)
	}
	// first knot strictly greater than x, minus one
	i := sort.Search(n, func(k int) bool { return r.Knots[k] > x }) - 1
	if i > n-2 {
		i = n - 2
	}

	return i, nil
}

// Evaluate returns the curve value at x.
func (r *Result) Evaluate(x float64) (float64, error) {
	return r.Derivative(x, 0)
}

// Derivative returns the order-th derivative of the curve at x
// (order 0 is the value itself).
func (r *Result) Derivative(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, ErrBadDerivativeOrder
	}
	i, err := r.Locate(x)
	if err != nil {
		return 0, err
	}
	w := powerWeights(r.Order, x-r.Knots[i], order)

	return dot(w, r.Coefs[i]), nil
}

// KnotDerivatives returns the order-th derivative at every knot. The last
// knot is taken from the right end of the last interval.
func (r *Result) KnotDerivatives(order int) []float64 {
	n := len(r.Knots)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		i, t := r.knotInterval(k)
		out[k] = dot(powerWeights(r.Order, t, order), r.Coefs[i])
	}

	return out
}

// KnotDerivativeSensitivities returns, for every knot k, the gradient of the
// order-th derivative at x[k] with respect to the ordinates.
func (r *SensitiveResult) KnotDerivativeSensitivities(order int) [][]float64 {
	n := len(r.Knots)
	out := make([][]float64, n)
	for k := 0; k < n; k++ {
		i, t := r.knotInterval(k)
		out[k] = combineRows(powerWeights(r.Order, t, order), r.Sensitivities[i])
	}

	return out
}

// ValueSensitivity returns ∂p(x)/∂y[m] for every ordinate m.
func (r *SensitiveResult) ValueSensitivity(x float64) ([]float64, error) {
	return r.DerivativeSensitivity(x, 0)
}

// DerivativeSensitivity returns the gradient of the order-th derivative at x
// with respect to the ordinates.
func (r *SensitiveResult) DerivativeSensitivity(x float64, order int) ([]float64, error) {
	if order < 0 {
		return nil, ErrBadDerivativeOrder
	}
	i, err := r.Locate(x)
	if err != nil {
		return nil, err
	}

	return combineRows(powerWeights(r.Order, x-r.Knots[i], order), r.Sensitivities[i]), nil
}

// knotInterval maps knot k to (interval, local coordinate).
func (r *Result) knotInterval(k int) (int, float64) {
	last := len(r.Knots) - 2
	if k <= last {
		return k, 0
	}

	return last, r.Knots[last+1] - r.Knots[last]
}

// powerWeights returns w with w[j] = d^deriv/dt^deriv of t^(order-1-j), so
// that the derivative of a row c equals Σ w[j]·c[j].
func powerWeights(order int, t float64, deriv int) []float64 {
	w := make([]float64, order)
	for j := 0; j < order; j++ {
		p := order - 1 - j
		if p < deriv {
			continue
		}
		f := 1.0
		for q := 0; q < deriv; q++ {
			f *= float64(p - q)
		}
		for q := 0; q < p-deriv; q++ {
			f *= t
		}
		w[j] = f
	}

	return w
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// combineRows returns Σ_j w[j]·rows[j].
func combineRows(w []float64, rows [][]float64) []float64 {
	out := make([]float64, len(rows[0]))
	for j, row := range rows {
		if w[j] == 0 {
			continue
		}
		for m, v := range row {
			out[m] += w[j] * v
		}
	}

	return out
}
