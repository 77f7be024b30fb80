// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the two black-box nonlinear optimizers
// that drive a sketch's loss to zero: GradientDescentSolver (fixed or
// backtracking step) and BFGSSolver (quasi-Newton, explicit
// inverse-Hessian, plain-scan line search). Neither solver knows
// anything about primitives or constraints — both consume a Sketch
// purely through its Loss/Gradient/Data/SetData oracle.
package solver

// Sketch is the black-box optimization problem both solvers drive.
// *sketch.Sketch satisfies it; solvers depend on this narrow interface
// rather than the concrete type so they can run against a
// sketch.Sketch.Clone()'d copy during speculative line search without
// an import cycle.
type Sketch interface {
	Data() []float64
	SetData(x []float64) error
	Loss() float64
	Gradient() []float64
}

// History records the loss at the start of every iteration, off by
// default (set Record=true before calling Solve). Grounded on the
// NumIter/Hist bookkeeping style of gosl's opt.ConjGrad, scaled down to
// what these two solvers actually need: a simple per-iteration trace
// for tests and diagnostics, not dense interpolated output.
type History struct {
	Loss []float64
}

func (h *History) append(loss float64) {
	if h == nil {
		return
	}
	h.Loss = append(h.Loss, loss)
}
