// SPDX-License-Identifier: MIT

package spline

import (
	"github.com/katalvlaran/lvcurve/hermite"
	"github.com/katalvlaran/lvcurve/piecewise"
)

// Quintic non-negativity filter.
//
// On an interval of width h the quintic Hermite piece has Bernstein
// coefficients
//
//	b0 = y0,  b1 = y0 + hd0/5,  b2 = y0 + 2hd0/5 + h²c0/20
//
// and the mirrored b3, b4, b5 from the right end. Keeping every b of the
// same sign τ as the data keeps the piece there, so at each knot
//
//	-5τy/hR ≤ τd ≤ 5τy/hL
//	τc ≥ -20(τy + 2hR·τd/5)/hR²   (interval to the right)
//	τc ≥ -20(τy - 2hL·τd/5)/hL²   (interval to the left)
//
// d is clamped first and the bounds on c use the clamped d.

// curvatureFloor returns the lower bound on τc from one side of knot i.
// dir is +1 for the interval to the right and -1 for the left.
func curvatureFloor(tau, y float64, d candidate, i int, h, dir float64, width int) candidate {
	f := -20 / (h * h)
	w := dir * 2 * h / 5
	c := candidate{value: f * (tau*y + w*tau*d.value)}
	if width > 0 {
		g := make([]float64, width)
		for k := range g {
			g[k] = f * w * tau * d.grad[k]
		}
		g[i] += f * tau
		c.grad = g
	}

	return c
}

// quinticDerivatives returns the filtered first and second derivatives and,
// when the initial Jacobians are given, their Jacobians.
func quinticDerivatives(y, h, d0, c0 []float64, dSens0, cSens0 [][]float64, tol float64) (d, c []float64, dSens, cSens [][]float64) {
	n := len(y)
	d, dSens = nonnegativeDerivatives(y, h, d0, dSens0, 5, tol)
	width := 0
	if cSens0 != nil {
		width = n
		cSens = make([][]float64, n)
	}
	c = make([]float64, n)
	for i := 0; i < n; i++ {
		tau := sign(y[i])
		ci := knotCandidate(c0, cSens0, i)
		if tau != 0 {
			di := knotCandidate(d, dSens, i)
			var floor candidate
			switch {
			case i == 0:
				floor = curvatureFloor(tau, y[i], di, i, h[0], 1, width)
			case i == n-1:
				floor = curvatureFloor(tau, y[i], di, i, h[i-1], -1, width)
			default:
				floor = tieMax(
					curvatureFloor(tau, y[i], di, i, h[i], 1, width),
					curvatureFloor(tau, y[i], di, i, h[i-1], -1, width),
					tol)
			}
			ci = tieMax(ci.scaled(tau), floor, tol).scaled(tau)
		}
		c[i] = ci.value
		if cSens != nil {
			cSens[i] = ci.grad
		}
	}

	return d, c, dSens, cSens
}

// fitQuinticNonnegative runs the cubic primary and builds quintic pieces
// from its filtered first and second knot derivatives.
func fitQuinticNonnegative(in *input, primary Method, o Options, withSens bool) (*piecewise.SensitiveResult, error) {
	base, err := cubicPrimary(in, primary, o, withSens)
	if err != nil {
		return nil, err
	}
	var dSens0, cSens0 [][]float64
	if withSens {
		dSens0 = base.KnotDerivativeSensitivities(1)
		cSens0 = base.KnotDerivativeSensitivities(2)
	}
	d, c, dSens, cSens := quinticDerivatives(in.y, in.h, base.KnotDerivatives(1), base.KnotDerivatives(2), dSens0, cSens0, o.TieTolerance)

	coefs := hermite.QuinticCoefs(in.y, in.h, d, c)
	var sens [][][]float64
	if withSens {
		sens = hermite.QuinticSensitivity(in.h, dSens, cSens)
	}

	return newResult(in, QuinticNonnegative, coefs, sens)
}
