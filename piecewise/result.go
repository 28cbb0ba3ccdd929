// SPDX-License-Identifier: MIT

package piecewise

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadShape indicates that knots, coefficient rows and Jacobians disagree in size.
	ErrBadShape = errors.New("piecewise: inconsistent shape")

	// ErrOutOfRange is returned when a point lies outside [x[0], x[n-1]].
	ErrOutOfRange = errors.New("piecewise: point outside knot range")

	// ErrNonFinite signals a NaN or ±Inf coefficient or Jacobian entry.
	ErrNonFinite = errors.New("piecewise: NaN or Inf coefficient")

	// ErrBadDerivativeOrder is returned for a negative derivative order.
	ErrBadDerivativeOrder = errors.New("piecewise: negative derivative order")
)

// Result is a fitted piecewise polynomial.
//
// Fields:
//   - Knots: strictly increasing abscissas, len n ≥ 2.
//   - Coefs: (n-1) rows of Order coefficients, descending powers of x - Knots[i].
//   - Order: number of coefficients per row (4 for cubic, 6 for quintic).
type Result struct {
	Knots []float64
	Coefs [][]float64
	Order int
}

// SensitiveResult is a Result together with the Jacobian of every coefficient
// with respect to every input ordinate.
//
// Sensitivities[i] is an Order×n matrix for interval i; row j holds
// ∂Coefs[i][j]/∂y[0..n-1].
type SensitiveResult struct {
	Result
	Sensitivities [][][]float64
}

// New builds a Result after checking that coefs has len(knots)-1 rows of
// equal, positive length. The slices are retained, not copied.
func New(knots []float64, coefs [][]float64) (*Result, error) {
	if len(knots) < 2 || len(coefs) != len(knots)-1 {
		return nil, fmt.Errorf("New: %d knots, %d rows: %w", len(knots), len(coefs), ErrBadShape)
	}
	order := len(coefs[0])
	if order == 0 {
		return nil, fmt.Errorf("New: empty coefficient row: %w", ErrBadShape)
	}
	for i, row := range coefs {
		if len(row) != order {
			return nil, fmt.Errorf("New: row %d has %d coefficients, want %d: %w", i, len(row), order, ErrBadShape)
		}
	}

	return &Result{Knots: knots, Coefs: coefs, Order: order}, nil
}

// NewSensitive builds a SensitiveResult. Every Jacobian must be Order×nOrd,
// where nOrd is the number of ordinates the curve was fitted to.
func NewSensitive(knots []float64, coefs [][]float64, sens [][][]float64) (*SensitiveResult, error) {
	res, err := New(knots, coefs)
	if err != nil {
		return nil, err
	}
	if len(sens) != len(coefs) {
		return nil, fmt.Errorf("NewSensitive: %d Jacobians for %d intervals: %w", len(sens), len(coefs), ErrBadShape)
	}
	nOrd := len(knots)
	for i, jac := range sens {
		if len(jac) != res.Order {
			return nil, fmt.Errorf("NewSensitive: Jacobian %d has %d rows, want %d: %w", i, len(jac), res.Order, ErrBadShape)
		}
		for j, row := range jac {
			if len(row) != nOrd {
				return nil, fmt.Errorf("NewSensitive: Jacobian %d row %d has %d columns, want %d: %w", i, j, len(row), nOrd, ErrBadShape)
			}
		}
	}

	return &SensitiveResult{Result: *res, Sensitivities: sens}, nil
}

// Intervals returns the number of polynomial pieces.
func (r *Result) Intervals() int { return len(r.Coefs) }

// CheckFinite reports the first NaN or ±Inf coefficient.
func (r *Result) CheckFinite() error {
	for i, row := range r.Coefs {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("coefficient [%d][%d]=%g: %w", i, j, v, ErrNonFinite)
			}
		}
	}

	return nil
}

// CheckFinite reports the first NaN or ±Inf coefficient or Jacobian entry.
func (r *SensitiveResult) CheckFinite() error {
	if err := r.Result.CheckFinite(); err != nil {
		return err
	}
	for i, jac := range r.Sensitivities {
		for j, row := range jac {
			for k, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("sensitivity [%d][%d][%d]=%g: %w", i, j, k, v, ErrNonFinite)
				}
			}
		}
	}

	return nil
}
