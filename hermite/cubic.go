// SPDX-License-Identifier: MIT

package hermite

// CubicCoefs turns values y and first derivatives d at the knots into cubic
// coefficients, one row [a3, a2, a1, a0] per interval.
//
// Inputs: len(y) = len(d) = n, len(h) = len(s) = n-1.
func CubicCoefs(y, h, s, d []float64) [][]float64 {
	out := make([][]float64, len(h))
	for i, hi := range h {
		out[i] = []float64{
			(d[i] + d[i+1] - 2*s[i]) / (hi * hi),
			(3*s[i] - 2*d[i] - d[i+1]) / hi,
			d[i],
			y[i],
		}
	}

	return out
}

// CubicSensitivity applies the CubicCoefs map to Jacobians.
//
// sSens is the (n-1)×n slope Jacobian and dSens the n×n Jacobian of the
// first derivatives; the Jacobian of y is the identity. The result holds
// one 4×n matrix per interval.
func CubicSensitivity(h []float64, sSens, dSens [][]float64) [][][]float64 {
	nOrd := len(h) + 1
	out := make([][][]float64, len(h))
	for i, hi := range h {
		r3 := make([]float64, nOrd)
		r2 := make([]float64, nOrd)
		r1 := make([]float64, nOrd)
		r0 := make([]float64, nOrd)
		for k := 0; k < nOrd; k++ {
			r3[k] = (dSens[i][k] + dSens[i+1][k] - 2*sSens[i][k]) / (hi * hi)
			r2[k] = (3*sSens[i][k] - 2*dSens[i][k] - dSens[i+1][k]) / hi
			r1[k] = dSens[i][k]
		}
		r0[i] = 1
		out[i] = [][]float64{r3, r2, r1, r0}
	}

	return out
}
