// SPDX-License-Identifier: MIT

package spline

import (
	"math"

	"golang.org/x/exp/constraints"
)

// candidate is a value together with its gradient with respect to the
// ordinates. The shape filters select among candidates with min, max and
// clamp; the gradient of the selection is the gradient of the selected
// candidate, and the average of both gradients when the two are tied.
// A nil grad means gradients are not tracked for this fit.
type candidate struct {
	value float64
	grad  []float64
}

// sign returns -1, 0 or +1 (NaN maps to 0).
func sign[T constraints.Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// tied reports whether a and b are within tol of each other. Exact equality
// is always a tie, so tol = 0 means "exactly equal".
func tied[T constraints.Float](a, b, tol T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d == 0 || d < tol
}

// scaled returns f·c.
func (c candidate) scaled(f float64) candidate {
	if c.grad == nil {
		return candidate{value: f * c.value}
	}
	g := make([]float64, len(c.grad))
	for k, v := range c.grad {
		g[k] = f * v
	}

	return candidate{value: f * c.value, grad: g}
}

// averageGrad returns ½(a+b), or nil when gradients are not tracked.
func averageGrad(a, b []float64) []float64 {
	if a == nil || b == nil {
		return nil
	}
	g := make([]float64, len(a))
	for k := range a {
		g[k] = 0.5 * (a[k] + b[k])
	}

	return g
}

// tieMin returns the smaller candidate; on a tie the smaller value is kept
// and the gradients are averaged.
func tieMin(a, b candidate, tol float64) candidate {
	if tied(a.value, b.value, tol) {
		return candidate{value: math.Min(a.value, b.value), grad: averageGrad(a.grad, b.grad)}
	}
	if a.value < b.value {
		return a
	}

	return b
}

// tieMax returns the larger candidate; on a tie the larger value is kept and
// the gradients are averaged.
func tieMax(a, b candidate, tol float64) candidate {
	if tied(a.value, b.value, tol) {
		return candidate{value: math.Max(a.value, b.value), grad: averageGrad(a.grad, b.grad)}
	}
	if a.value > b.value {
		return a
	}

	return b
}

// clampTied clamps ref into [lo, hi] checking the bounds in a fixed order:
// a tie with lo, then below lo, then a tie with hi, then above hi. A tie
// keeps ref's value when it is inside the range and averages the gradients.
func clampTied(ref, lo, hi candidate, tol float64) candidate {
	switch {
	case tied(ref.value, lo.value, tol):
		v := lo.value
		if ref.value >= lo.value {
			v = ref.value
		}
		return candidate{value: v, grad: averageGrad(ref.grad, lo.grad)}
	case ref.value < lo.value:
		return lo
	case tied(ref.value, hi.value, tol):
		v := hi.value
		if ref.value <= hi.value {
			v = ref.value
		}
		return candidate{value: v, grad: averageGrad(ref.grad, hi.grad)}
	case ref.value > hi.value:
		return hi
	default:
		return ref
	}
}

// unit returns a gradient that is v at column k and zero elsewhere; n = 0
// (gradients not tracked) gives nil.
func unit(n, k int, v float64) []float64 {
	if n == 0 {
		return nil
	}
	g := make([]float64, n)
	g[k] = v

	return g
}
