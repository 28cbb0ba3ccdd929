// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/lvcurve/piecewise"
)

// Fit builds the piecewise polynomial through (x[i], y[i]) selected by m.
//
// y holds one value per knot, or n+2 values for clamped fits, where y[0]
// and y[n+1] are the first derivatives at x[0] and x[n-1]. A nil opts uses
// DefaultOptions. Inputs are copied and never modified.
//
// Errors: every validation failure matches ErrInvalidInput and one specific
// sentinel (see InputError); a non-finite coefficient produced from valid
// input matches ErrNumericalFailure.
func Fit(x, y []float64, m Method, opts *Options) (*piecewise.Result, error) {
	res, err := fit(x, y, m, opts, false)
	if err != nil {
		return nil, err
	}

	return &res.Result, nil
}

// FitWithSensitivity is Fit plus the Jacobian of every coefficient with
// respect to every ordinate y[0..n-1]. Clamped endpoint derivatives are
// inputs, not ordinates, and get no column.
func FitWithSensitivity(x, y []float64, m Method, opts *Options) (*piecewise.SensitiveResult, error) {
	return fit(x, y, m, opts, true)
}

func fit(x, y []float64, m Method, opts *Options, withSens bool) (*piecewise.SensitiveResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, inputErr("opts", -1, err)
	}
	req, err := m.requirements()
	if err != nil {
		return nil, err
	}
	in, err := prepare(x, y, req.minPoints, req.layout)
	if err != nil {
		return nil, err
	}

	return run(in, m, o, withSens)
}

// requirements is what a method chain needs from its input.
type requirements struct {
	minPoints int
	layout    layout
}

// requirements walks the chain from m to its endpoint solver. The strictest
// point count wins; the layout is fixed by an explicit endpoint solver and
// left open when the chain ends in a default primary.
func (m Method) requirements() (requirements, error) {
	var own int
	switch m.Kind {
	case Natural, NotAKnot:
		return requirements{minPoints: minPointsSolver, layout: layoutPlain}, nil
	case Clamped:
		return requirements{minPoints: minPointsSolver, layout: layoutClamped}, nil
	case Monotone:
		own = minPointsMonotone
	case Nonnegative, QuinticNonnegative:
		own = minPointsNonnegative
	default:
		return requirements{}, inputErr("method", -1, fmt.Errorf("kind %d: %w", int(m.Kind), ErrUnknownMethod))
	}
	if m.Primary == nil {
		return requirements{minPoints: own, layout: layoutAny}, nil
	}
	if m.Primary.Kind == QuinticNonnegative {
		return requirements{}, inputErr("method", -1, fmt.Errorf("%s wraps %s: %w", m, *m.Primary, ErrPrimaryNotCubic))
	}
	req, err := m.Primary.requirements()
	if err != nil {
		return requirements{}, err
	}
	req.minPoints = max(req.minPoints, own)

	return req, nil
}

// primary returns the method whose knot derivatives a filter adjusts.
func (m Method) primary(clamped bool) Method {
	switch {
	case m.Primary != nil:
		return *m.Primary
	case clamped:
		return Method{Kind: Clamped}
	case m.Kind == QuinticNonnegative:
		return Method{Kind: Natural}
	default:
		return Method{Kind: NotAKnot}
	}
}

// run dispatches one validated input to its algorithm. Without withSens the
// returned Sensitivities are nil.
func run(in *input, m Method, o Options, withSens bool) (*piecewise.SensitiveResult, error) {
	switch m.Kind {
	case Natural, NotAKnot, Clamped:
		return fitEndpoint(in, m.Kind, withSens)
	case Monotone:
		return fitMonotone(in, m.primary(in.clamped), o, withSens)
	case Nonnegative:
		return fitNonnegative(in, m.primary(in.clamped), o, withSens)
	case QuinticNonnegative:
		return fitQuinticNonnegative(in, m.primary(in.clamped), o, withSens)
	default:
		return nil, inputErr("method", -1, fmt.Errorf("kind %d: %w", int(m.Kind), ErrUnknownMethod))
	}
}

// cubicPrimary fits the primary of a filter and checks it is cubic.
func cubicPrimary(in *input, p Method, o Options, withSens bool) (*piecewise.SensitiveResult, error) {
	res, err := run(in, p, o, withSens)
	if err != nil {
		return nil, err
	}
	if res.Order != 4 {
		return nil, inputErr("method", -1, fmt.Errorf("%s has order %d: %w", p, res.Order, ErrPrimaryNotCubic))
	}

	return res, nil
}

// newResult wraps coefficients (and sensitivities, when sens != nil) and
// checks every entry is finite.
func newResult(in *input, kind Kind, coefs [][]float64, sens [][][]float64) (*piecewise.SensitiveResult, error) {
	var res *piecewise.SensitiveResult
	if sens == nil {
		r, err := piecewise.New(in.x, coefs)
		if err != nil {
			return nil, numericErr(kindName(kind), err)
		}
		res = &piecewise.SensitiveResult{Result: *r}
	} else {
		r, err := piecewise.NewSensitive(in.x, coefs, sens)
		if err != nil {
			return nil, numericErr(kindName(kind), err)
		}
		res = r
	}
	if err := res.CheckFinite(); err != nil {
		return nil, numericErr(kindName(kind), err)
	}

	return res, nil
}
