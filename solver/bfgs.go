// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// BFGSSolver is a quasi-Newton solver maintaining an explicit
// inverse-Hessian approximation H (rather than the two-loop recursion
// typical of large-scale BFGS — these sketches run to at most a few
// hundred parameters, so the dense n x n update is cheap). Line search
// is a plain scan over AlphaSearchSteps candidate step lengths, not
// Wolfe conditions.
type BFGSSolver struct {
	MaxIterations    int     // iteration cap
	MinLoss          float64 // terminate once loss <= MinLoss
	StepAlpha        float64 // initial step length fed into bracketing
	AlphaSearchSteps int     // number of candidate lengths scanned per iteration
	Record           bool    // set true to populate the returned History
}

// NewBFGSSolver returns a solver with the defaults named in spec §4.4.
func NewBFGSSolver() *BFGSSolver {
	return &BFGSSolver{
		MaxIterations:    1000,
		MinLoss:          1e-16,
		StepAlpha:        1e-2,
		AlphaSearchSteps: 400,
	}
}

// Solve runs the iteration described in spec §4.4: bracket a step
// length by doubling/halving, scan AlphaSearchSteps candidates within
// the bracket, take the best, then update H with the standard BFGS
// rank-2 formula. A non-finite gradient or search direction aborts the
// current iteration and returns the best-effort state reached so far,
// per the failure semantics in spec §4.5 — never a panic.
func (s *BFGSSolver) Solve(sk Sketch) (*History, error) {
	var hist *History
	if s.Record {
		hist = &History{}
	}

	x := sk.Data()
	n := len(x)
	h := identityMatrix(n)

	alpha := s.StepAlpha
	loss := math.Inf(1)

	for iter := 0; iter < s.MaxIterations && loss > s.MinLoss; iter++ {
		if alpha < 1e-16 {
			break
		}

		if err := sk.SetData(x); err != nil {
			return hist, err
		}
		g := sk.Gradient()
		if !finiteVector(g) {
			return hist, chk.Err("bfgs: gradient contains non-finite values at iteration %d", iter)
		}
		loss = sk.Loss()
		hist.append(loss)

		p := matVecNeg(h, g)
		if !finiteVector(p) {
			return hist, chk.Err("bfgs: search direction contains non-finite values at iteration %d", iter)
		}

		// bracketing: double alpha once, then halve it until a
		// 20*alpha step no longer raises the loss, or alpha collapses
		// below 1e-10 (treated as converged).
		alpha *= 2
		for {
			if err := sk.SetData(stepBy(x, p, 20*alpha)); err != nil {
				return hist, err
			}
			if sk.Loss() <= loss {
				break
			}
			alpha *= 0.5
			if alpha < 1e-10 {
				if err := sk.SetData(x); err != nil {
					return hist, err
				}
				return hist, nil
			}
		}

		// line search: plain scan over i*alpha within the bracket.
		bestAlpha := 0.0
		for i := 0; i < s.AlphaSearchSteps; i++ {
			if err := sk.SetData(stepBy(x, p, alpha*float64(i))); err != nil {
				return hist, err
			}
			newLoss := sk.Loss()
			if newLoss < loss {
				bestAlpha = alpha * float64(i)
				loss = newLoss
			}
		}

		step := make([]float64, n)
		for i := range step {
			step[i] = bestAlpha * p[i]
		}

		newX := stepBy(x, step, 1)
		if err := sk.SetData(newX); err != nil {
			return hist, err
		}
		x = newX

		newG := sk.Gradient()
		y := make([]float64, n)
		for i := range y {
			y[i] = newG[i] - g[i]
		}

		sDotY := dotProduct(step, y)
		if math.Abs(sDotY) < 1e-16 {
			sDotY += 1e-6
		}

		hy := matVec(h, y)
		factor := sDotY + dotProduct(y, hy)

		newH := la.NewMatrix(n, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				term1 := factor * step[i] * step[j] / (sDotY * sDotY)
				term2 := (hy[i]*step[j] + step[i]*hy[j]) / sDotY
				newH.Set(i, j, h.Get(i, j)+term1-term2)
			}
		}
		h = newH
	}

	return hist, nil
}

func identityMatrix(n int) *la.Matrix {
	m := la.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// matVecNeg returns -m*v.
func matVecNeg(m *la.Matrix, v []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += m.Get(i, j) * v[j]
		}
		out[i] = -sum
	}
	return out
}

// matVec returns m*v.
func matVec(m *la.Matrix, v []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += m.Get(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}

func dotProduct(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
