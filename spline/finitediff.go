// SPDX-License-Identifier: MIT

package spline

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// vectorFunc maps the supplied values (raw layout) to an output vector.
type vectorFunc func(raw []float64) ([]float64, error)

// centralJacobian estimates ∂f/∂y[k] for the n ordinates of in by centred
// differences:
//
//	J[:,k] = (f(y + δk·e_k) - f(y - δk·e_k)) / (2δk)
//	δk     = step·y[k], or step when |y[k]| < small
//
// fd.Jacobian runs on the unit-scaled displacement u (δk·u[k] added to
// y[k]) with Step 1, so the per-ordinate relative step is applied exactly.
// Clamped derivative entries of raw are never perturbed.
func centralJacobian(in *input, f vectorFunc, m int, step, small float64) ([][]float64, error) {
	n := in.n()
	off := 0
	if in.clamped {
		off = 1
	}
	delta := make([]float64, n)
	for k, v := range in.y {
		if math.Abs(v) < small {
			delta[k] = step
		} else {
			delta[k] = v * step
		}
	}

	var firstErr error
	work := make([]float64, len(in.raw))
	eval := func(dst, u []float64) {
		copy(work, in.raw)
		for k := range u {
			work[off+k] += u[k] * delta[k]
		}
		out, err := f(work)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			for i := range dst {
				dst[i] = math.NaN()
			}
			return
		}
		copy(dst, out)
	}

	jac := mat.NewDense(m, n, nil)
	fd.Jacobian(jac, eval, make([]float64, n), &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    1,
	})
	if firstErr != nil {
		return nil, firstErr
	}

	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, n)
		for k := 0; k < n; k++ {
			out[i][k] = jac.At(i, k) / delta[k]
		}
	}

	return out, nil
}
