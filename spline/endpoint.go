// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/lvcurve/hermite"
	"github.com/katalvlaran/lvcurve/piecewise"
	"gonum.org/v1/gonum/mat"
)

// Endpoint solvers.
//
// Every solver finds the second derivatives m at the knots from
//
//	h[i-1]·m[i-1] + 2(h[i-1]+h[i])·m[i] + h[i]·m[i+1] = 6(s[i] - s[i-1]),  0 < i < n-1
//
// plus two boundary rows chosen by the Kind:
//
//	Natural:  m[0] = 0,                             m[n-1] = 0
//	NotAKnot: -h1·m0 + (h0+h1)·m1 - h0·m2 = 0,      mirrored at the right end
//	Clamped:  2h0·m0 + h0·m1 = 6(s0 - y'0),         h·m[n-2] + 2h·m[n-1] = 6(y'n - s[n-2])
//
// and converts m into pieces with hermite.CubicCoefsFromSecond. The right
// hand side is linear in y, so ∂m/∂y solves the same system against the
// Jacobian of the right hand side; both are solved with one LU factorisation.
//
// Closed forms replace the solve for n=2 (a straight line) and, for Natural
// and NotAKnot, n=3:
//
//	Natural,  n=3: m = (0, 3(s1-s0)/(h0+h1), 0)
//	NotAKnot, n=3: m = q·(1, 1, 1), q = 2(s1-s0)/(h0+h1)  (one parabola)

// fitEndpoint returns the cubic spline for kind and, when withSens is set,
// ∂coefficients/∂y.
func fitEndpoint(in *input, kind Kind, withSens bool) (*piecewise.SensitiveResult, error) {
	m, mSens, err := secondDerivatives(in, kind, withSens)
	if err != nil {
		return nil, err
	}
	coefs := hermite.CubicCoefsFromSecond(in.y, in.h, in.s, m)
	var sens [][][]float64
	if withSens {
		sens = hermite.CubicSensitivityFromSecond(in.h, hermite.SlopeSensitivity(in.h), mSens)
	}

	return newResult(in, kind, coefs, sens)
}

// secondDerivatives returns m and, when withSens is set, the n×n ∂m/∂y.
func secondDerivatives(in *input, kind Kind, withSens bool) ([]float64, [][]float64, error) {
	if kind != Clamped {
		if m, mSens, ok := closedForm(in, kind); ok {
			return m, mSens, nil
		}
	}

	return solveSystem(in, kind, withSens)
}

// solveSystem is the general path: assemble A·m = b and solve it with LU.
func solveSystem(in *input, kind Kind, withSens bool) ([]float64, [][]float64, error) {
	n := in.n()
	a, rhs, rhsJac := assemble(in, kind)

	// Stage 1: right hand sides, value column first
	cols := 1
	if withSens {
		cols += n
	}
	b := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		b.Set(i, 0, rhs[i])
		if withSens {
			for k := 0; k < n; k++ {
				b.Set(i, k+1, rhsJac[i][k])
			}
		}
	}

	// Stage 2: one factorisation for all columns
	var lu mat.LU
	lu.Factorize(a)
	var sol mat.Dense
	if err := lu.SolveTo(&sol, false, b); err != nil {
		return nil, nil, numericErr(fmt.Sprintf("%s: %d×%d system", kindName(kind), n, n), err)
	}

	// Stage 3: unpack
	m := make([]float64, n)
	var mSens [][]float64
	if withSens {
		mSens = make([][]float64, n)
	}
	for i := 0; i < n; i++ {
		m[i] = sol.At(i, 0)
		if withSens {
			mSens[i] = make([]float64, n)
			for k := 0; k < n; k++ {
				mSens[i][k] = sol.At(i, k+1)
			}
		}
	}

	return m, mSens, nil
}

// closedForm handles the small Natural and NotAKnot cases.
func closedForm(in *input, kind Kind) ([]float64, [][]float64, bool) {
	n := in.n()
	if n > 3 {
		return nil, nil, false
	}
	m := make([]float64, n)
	mSens := zeros(n, n)
	if n == 2 {
		return m, mSens, true
	}

	h, s := in.h, in.s
	sSens := hermite.SlopeSensitivity(h)
	switch kind {
	case Natural:
		f := 3 / (h[0] + h[1])
		m[1] = f * (s[1] - s[0])
		for k := 0; k < n; k++ {
			mSens[1][k] = f * (sSens[1][k] - sSens[0][k])
		}
	case NotAKnot:
		f := 2 / (h[0] + h[1])
		q := f * (s[1] - s[0])
		for i := range m {
			m[i] = q
			for k := 0; k < n; k++ {
				mSens[i][k] = f * (sSens[1][k] - sSens[0][k])
			}
		}
	default:
		return nil, nil, false
	}

	return m, mSens, true
}

// assemble builds A, b and ∂b/∂y for the general path.
func assemble(in *input, kind Kind) (*mat.Dense, []float64, [][]float64) {
	n := in.n()
	h, s := in.h, in.s
	sSens := hermite.SlopeSensitivity(h)
	a := mat.NewDense(n, n, nil)
	rhs := make([]float64, n)
	rhsJac := zeros(n, n)

	for i := 1; i < n-1; i++ {
		a.Set(i, i-1, h[i-1])
		a.Set(i, i, 2*(h[i-1]+h[i]))
		a.Set(i, i+1, h[i])
		rhs[i] = 6 * (s[i] - s[i-1])
		for k := 0; k < n; k++ {
			rhsJac[i][k] = 6 * (sSens[i][k] - sSens[i-1][k])
		}
	}

	switch kind {
	case Natural:
		a.Set(0, 0, 1)
		a.Set(n-1, n-1, 1)
	case NotAKnot:
		a.Set(0, 0, -h[1])
		a.Set(0, 1, h[0]+h[1])
		a.Set(0, 2, -h[0])
		a.Set(n-1, n-3, -h[n-2])
		a.Set(n-1, n-2, h[n-3]+h[n-2])
		a.Set(n-1, n-1, -h[n-3])
	case Clamped:
		left, right := in.raw[0], in.raw[n+1]
		a.Set(0, 0, 2*h[0])
		a.Set(0, 1, h[0])
		rhs[0] = 6 * (s[0] - left)
		a.Set(n-1, n-2, h[n-2])
		a.Set(n-1, n-1, 2*h[n-2])
		rhs[n-1] = 6 * (right - s[n-2])
		for k := 0; k < n; k++ {
			rhsJac[0][k] = 6 * sSens[0][k]
			rhsJac[n-1][k] = -6 * sSens[n-2][k]
		}
	}

	return a, rhs, rhsJac
}

func zeros(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}

	return out
}
