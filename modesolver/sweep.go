// SPDX-License-Identifier: MIT

package modesolver

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slabguide/slab"
)

// Sample is one point of a residual profile.
type Sample struct {
	Angle    float64
	Residual float64
}

// SolveOrders solves req for every order in orders, in the given order.
// The first failure aborts the sweep.
func SolveOrders(g slab.Geometry, req Request, orders []int, opts ...Option) ([]Solution, error) {
	out := make([]Solution, 0, len(orders))
	for _, m := range orders {
		req.Order = m
		sol, err := Solve(g, req, opts...)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", m, err)
		}
		out = append(out, sol)
	}

	return out, nil
}

// Orders returns 0..n-1.
func Orders(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Profile samples the residual of req at points equally spaced angles
// covering the search interval, endpoints included. NaN residuals are kept.
func Profile(g slab.Geometry, req Request, points int, opts ...Option) ([]Sample, error) {
	if points < 2 {
		return nil, ErrTooFewPoints
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	residual, err := ResidualFor(req)
	if err != nil {
		return nil, err
	}
	b, err := interval(g, req.Theory, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	angles := floats.Span(make([]float64, points), b.Lower, b.Upper)
	out := make([]Sample, points)
	for i, a := range angles {
		out[i] = Sample{Angle: a, Residual: residual(a, g, req.Order)}
	}

	return out, nil
}
