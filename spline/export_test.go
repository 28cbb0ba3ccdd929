// SPDX-License-Identifier: MIT

package spline

// SecondDerivatives runs one endpoint solver path: the general LU solve
// when general is set, otherwise the small-n closed form.
func SecondDerivatives(x, y []float64, k Kind, general bool) ([]float64, [][]float64, error) {
	in, err := prepare(x, y, minPointsSolver, layoutAny)
	if err != nil {
		return nil, nil, err
	}
	if general {
		return solveSystem(in, k, true)
	}
	m, mSens, ok := closedForm(in, k)
	if !ok {
		return nil, nil, ErrUnknownMethod
	}

	return m, mSens, nil
}

// MonotoneJacobians returns the analytic and the finite-difference Jacobian
// of the monotone-filtered knot derivatives for the same input.
func MonotoneJacobians(x, y []float64, primary Method) (analytic, numeric [][]float64, err error) {
	in, err := prepare(x, y, minPointsMonotone, layoutAny)
	if err != nil {
		return nil, nil, err
	}
	o := DefaultOptions()
	base, err := cubicPrimary(in, primary, o, true)
	if err != nil {
		return nil, nil, err
	}
	_, analytic = monotoneDerivatives(in.h, in.s, base.KnotDerivatives(1), base.KnotDerivativeSensitivities(1), o.TieTolerance)
	numeric, err = monotoneFD(in, primary, o)

	return analytic, numeric, err
}

// SlopesTied exposes the finite-difference trigger.
var SlopesTied = slopesTiedWithinTolerance
