// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcurve/piecewise"
	"github.com/katalvlaran/lvcurve/spline"
)

// Request is the JSON input schema. Exactly one of Y and Rows is set.
type Request struct {
	TaskID      string        `json:"task_id,omitempty"`
	Method      string        `json:"method"`
	X           []float64     `json:"x"`
	Y           []float64     `json:"y,omitempty"`
	Rows        [][]float64   `json:"rows,omitempty"`
	Eval        []float64     `json:"eval,omitempty"`
	Sensitivity bool          `json:"sensitivity,omitempty"`
	Options     *OptionsInput `json:"options,omitempty"`
}

// OptionsInput mirrors spline.Options; omitted fields keep their defaults.
type OptionsInput struct {
	TieTolerance float64 `json:"tie_tolerance,omitempty"`
	FDStep       float64 `json:"fd_step,omitempty"`
	Workers      int     `json:"workers,omitempty"`
}

// Response is the JSON output schema.
type Response struct {
	TaskID string  `json:"task_id,omitempty"`
	Method string  `json:"method,omitempty"`
	Curves []Curve `json:"curves,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Curve is one fitted row.
type Curve struct {
	Order         int           `json:"order"`
	Knots         []float64     `json:"knots"`
	Coefs         [][]float64   `json:"coefs"`
	Sensitivities [][][]float64 `json:"sensitivities,omitempty"`
	Values        []float64     `json:"values,omitempty"`
	// ValueSensitivities[j] is ∂p(eval[j])/∂y.
	ValueSensitivities [][]float64 `json:"value_sensitivities,omitempty"`
}

func (r Request) label() string {
	if r.TaskID != "" {
		return r.TaskID
	}
	return "request"
}

func handle(req Request) (*Response, error) {
	m, err := spline.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	rows := req.Rows
	switch {
	case req.Y != nil && rows != nil:
		return nil, fmt.Errorf("set either y or rows, not both")
	case req.Y != nil:
		rows = [][]float64{req.Y}
	case len(rows) == 0:
		return nil, fmt.Errorf("y or rows is required")
	}

	var opts *spline.Options
	if req.Options != nil {
		opts = &spline.Options{
			TieTolerance: req.Options.TieTolerance,
			FDStep:       req.Options.FDStep,
			Workers:      req.Options.Workers,
		}
	}

	fitted, err := spline.FitRowsWithSensitivity(context.Background(), req.X, rows, m, opts)
	if err != nil {
		return nil, err
	}

	resp := &Response{TaskID: req.TaskID, Method: m.String(), Curves: make([]Curve, len(fitted))}
	for i, res := range fitted {
		c, err := curve(res, req.Eval, req.Sensitivity)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		resp.Curves[i] = *c
	}

	return resp, nil
}

func curve(res *piecewise.SensitiveResult, eval []float64, withSens bool) (*Curve, error) {
	c := &Curve{Order: res.Order, Knots: res.Knots, Coefs: res.Coefs}
	if withSens {
		c.Sensitivities = res.Sensitivities
	}
	for _, x := range eval {
		v, err := res.Evaluate(x)
		if err != nil {
			return nil, err
		}
		c.Values = append(c.Values, v)
		if withSens {
			g, err := res.ValueSensitivity(x)
			if err != nil {
				return nil, err
			}
			c.ValueSensitivities = append(c.ValueSensitivities, g)
		}
	}

	return c, nil
}
