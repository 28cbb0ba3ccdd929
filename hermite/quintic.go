// SPDX-License-Identifier: MIT

package hermite

// QuinticCoefs builds quintic Hermite coefficients from values y, first
// derivatives d and second derivatives c at the knots. Each row is
// [a5, a4, a3, a2, a1, a0] in powers of t = x - x[i].
//
// With the residuals left after the quadratic Taylor part at x[i],
//
//	Δ0 = y[i+1] - y[i] - d[i]h - c[i]h²/2
//	Δ1 = d[i+1] - d[i] - c[i]h
//	Δ2 = c[i+1] - c[i]
//
// the upper coefficients are
//
//	a3 = (20Δ0 - 8hΔ1 + h²Δ2) / (2h³)
//	a4 = (-30Δ0 + 14hΔ1 - 2h²Δ2) / (2h⁴)
//	a5 = (12Δ0 - 6hΔ1 + h²Δ2) / (2h⁵)
func QuinticCoefs(y, h, d, c []float64) [][]float64 {
	out := make([][]float64, len(h))
	for i, hi := range h {
		d0 := y[i+1] - y[i] - d[i]*hi - c[i]*hi*hi/2
		d1 := d[i+1] - d[i] - c[i]*hi
		d2 := c[i+1] - c[i]
		a3, a4, a5 := quinticUpper(hi, d0, d1, d2)
		out[i] = []float64{a5, a4, a3, c[i] / 2, d[i], y[i]}
	}

	return out
}

// QuinticSensitivity applies the QuinticCoefs map to the n×n Jacobians of
// the first (dSens) and second (cSens) derivatives. The result holds one
// 6×n matrix per interval.
func QuinticSensitivity(h []float64, dSens, cSens [][]float64) [][][]float64 {
	nOrd := len(h) + 1
	out := make([][][]float64, len(h))
	for i, hi := range h {
		rows := make([][]float64, 6)
		for j := range rows {
			rows[j] = make([]float64, nOrd)
		}
		for k := 0; k < nOrd; k++ {
			dy := kronecker(i+1, k) - kronecker(i, k)
			d0 := dy - dSens[i][k]*hi - cSens[i][k]*hi*hi/2
			d1 := dSens[i+1][k] - dSens[i][k] - cSens[i][k]*hi
			d2 := cSens[i+1][k] - cSens[i][k]
			a3, a4, a5 := quinticUpper(hi, d0, d1, d2)
			rows[0][k] = a5
			rows[1][k] = a4
			rows[2][k] = a3
			rows[3][k] = cSens[i][k] / 2
			rows[4][k] = dSens[i][k]
		}
		rows[5][i] = 1
		out[i] = rows
	}

	return out
}

func quinticUpper(h, d0, d1, d2 float64) (a3, a4, a5 float64) {
	h2 := h * h
	h3 := h2 * h
	a3 = (20*d0 - 8*h*d1 + h2*d2) / (2 * h3)
	a4 = (-30*d0 + 14*h*d1 - 2*h2*d2) / (2 * h3 * h)
	a5 = (12*d0 - 6*h*d1 + h2*d2) / (2 * h3 * h2)

	return a3, a4, a5
}

func kronecker(i, k int) float64 {
	if i == k {
		return 1
	}

	return 0
}
