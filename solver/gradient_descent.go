// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GradientDescentSolver is the reference solver: a fixed (optionally
// decaying) step size, with optional backtracking line search that
// halves alpha while the step fails to decrease the loss.
type GradientDescentSolver struct {
	MaxIterations int     // iteration cap
	MinLoss       float64 // terminate once loss <= MinLoss
	StepAlpha     float64 // initial/fixed step size
	StepDecay     float64 // multiplies StepAlpha after every iteration; 1 disables decay
	Backtracking  bool    // halve alpha while loss(x - alpha*g) > loss(x)
	Record        bool    // set true to populate the returned History
}

// NewGradientDescentSolver returns a solver configured with sensible
// defaults: no decay, backtracking enabled.
func NewGradientDescentSolver() *GradientDescentSolver {
	return &GradientDescentSolver{
		MaxIterations: 1000,
		MinLoss:       1e-16,
		StepAlpha:     1e-2,
		StepDecay:     1,
		Backtracking:  true,
	}
}

// Solve drives sk's loss toward MinLoss, writing the result back via
// sk.SetData. A non-finite gradient is fatal for the current call:
// Solve returns the best-effort state reached so far, per the failure
// semantics in spec §4.5 — it never panics on bad input data.
func (s *GradientDescentSolver) Solve(sk Sketch) (*History, error) {
	var hist *History
	if s.Record {
		hist = &History{}
	}

	alpha := s.StepAlpha
	loss := sk.Loss()

	for iter := 0; iter < s.MaxIterations && loss > s.MinLoss; iter++ {
		hist.append(loss)

		x := sk.Data()
		g := sk.Gradient()
		if !finiteVector(g) {
			return hist, chk.Err("gradient_descent: gradient contains non-finite values at iteration %d", iter)
		}

		a := alpha
		for {
			if err := sk.SetData(stepBy(x, g, -a)); err != nil {
				return hist, err
			}
			newLoss := sk.Loss()
			if !s.Backtracking || newLoss <= loss {
				loss = newLoss
				break
			}
			a *= 0.5
			if a < 1e-16 {
				loss = newLoss
				break
			}
		}

		alpha *= s.StepDecay
	}

	return hist, nil
}

// stepBy returns x + scale*g, element-wise.
func stepBy(x, g []float64, scale float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] + scale*g[i]
	}
	return out
}

// finiteVector reports whether every entry of v is finite (not NaN or
// +-Inf).
func finiteVector(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
