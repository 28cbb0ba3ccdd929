// SPDX-License-Identifier: MIT

package hermite

// CubicCoefsFromSecond builds spline pieces from values y and second
// derivatives m at the knots:
//
//	a3 = (m[i+1] - m[i]) / (6h)
//	a2 = m[i] / 2
//	a1 = s[i] - h(2m[i] + m[i+1]) / 6
//	a0 = y[i]
func CubicCoefsFromSecond(y, h, s, m []float64) [][]float64 {
	out := make([][]float64, len(h))
	for i, hi := range h {
		out[i] = []float64{
			(m[i+1] - m[i]) / (6 * hi),
			m[i] / 2,
			s[i] - hi*(2*m[i]+m[i+1])/6,
			y[i],
		}
	}

	return out
}

// CubicSensitivityFromSecond applies the CubicCoefsFromSecond map to the
// slope Jacobian sSens and the n×n second-derivative Jacobian mSens.
func CubicSensitivityFromSecond(h []float64, sSens, mSens [][]float64) [][][]float64 {
	nOrd := len(h) + 1
	out := make([][][]float64, len(h))
	for i, hi := range h {
		r3 := make([]float64, nOrd)
		r2 := make([]float64, nOrd)
		r1 := make([]float64, nOrd)
		r0 := make([]float64, nOrd)
		for k := 0; k < nOrd; k++ {
			r3[k] = (mSens[i+1][k] - mSens[i][k]) / (6 * hi)
			r2[k] = mSens[i][k] / 2
			r1[k] = sSens[i][k] - hi*(2*mSens[i][k]+mSens[i+1][k])/6
		}
		r0[i] = 1
		out[i] = [][]float64{r3, r2, r1, r0}
	}

	return out
}
