// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/lvcurve/hermite"
	"github.com/katalvlaran/lvcurve/piecewise"
)

// Non-negativity filter.
//
// With τ = sign(y[i]) the knot derivative is clamped so that the cubic
// keeps the sign of its end values:
//
//	-3τy[i]/h[i] ≤ τd[i] ≤ 3τy[i]/h[i-1]
//
// The end knots use their only interval for both bounds. A zero ordinate
// leaves the derivative untouched.

// signBounds clamps d at knot i into [-f·τy/hR, f·τy/hL] in τ-space and
// maps the result back. Gradients are tracked when width > 0.
func signBounds(y, d candidate, i int, hL, hR, f, tol float64, width int) candidate {
	tau := sign(y.value)
	if tau == 0 {
		return d
	}
	lo := candidate{value: -f * tau * y.value / hR, grad: unit(width, i, -f*tau/hR)}
	hi := candidate{value: f * tau * y.value / hL, grad: unit(width, i, f*tau/hL)}

	return clampTied(d.scaled(tau), lo, hi, tol).scaled(tau)
}

// nonnegativeDerivatives clamps init (and its Jacobian, when initSens is
// not nil) with factor f.
func nonnegativeDerivatives(y, h, init []float64, initSens [][]float64, f, tol float64) ([]float64, [][]float64) {
	n := len(y)
	width := 0
	var dSens [][]float64
	if initSens != nil {
		width = n
		dSens = make([][]float64, n)
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		hL, hR := neighbours(h, i)
		c := signBounds(candidate{value: y[i]}, knotCandidate(init, initSens, i), i, hL, hR, f, tol, width)
		d[i] = c.value
		if dSens != nil {
			dSens[i] = c.grad
		}
	}

	return d, dSens
}

// neighbours returns the intervals left and right of knot i; an end knot
// reuses its only interval on both sides.
func neighbours(h []float64, i int) (hL, hR float64) {
	switch {
	case i == 0:
		return h[0], h[0]
	case i == len(h):
		return h[i-1], h[i-1]
	default:
		return h[i-1], h[i]
	}
}

func knotCandidate(v []float64, grad [][]float64, i int) candidate {
	c := candidate{value: v[i]}
	if grad != nil {
		c.grad = grad[i]
	}

	return c
}

// fitNonnegative runs primary and clamps its knot derivatives.
func fitNonnegative(in *input, primary Method, o Options, withSens bool) (*piecewise.SensitiveResult, error) {
	base, err := cubicPrimary(in, primary, o, withSens)
	if err != nil {
		return nil, err
	}
	var initSens [][]float64
	if withSens {
		initSens = base.KnotDerivativeSensitivities(1)
	}
	d, dSens := nonnegativeDerivatives(in.y, in.h, base.KnotDerivatives(1), initSens, 3, o.TieTolerance)

	coefs := hermite.CubicCoefs(in.y, in.h, in.s, d)
	var sens [][][]float64
	if withSens {
		sens = hermite.CubicSensitivity(in.h, hermite.SlopeSensitivity(in.h), dSens)
	}

	return newResult(in, Nonnegative, coefs, sens)
}
