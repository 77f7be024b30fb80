// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sketch aggregates a set of primitives and the constraints
// pinning them into a single flat-vector optimization problem: a
// sketch's Data is the concatenation of every registered primitive's
// parameters, its Loss is the sum of every constraint's loss, and its
// Gradient is the matching concatenation of accumulated gradients.
package sketch

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
)

// Sketch owns the flat-vector bookkeeping described in the data model:
// every atomic primitive is registered exactly once, in the order
// AddPrimitive was called, and that order fixes the column layout of
// Data/SetData/Gradient.
type Sketch struct {
	primitives []primitive.Atomic
	offsets    []int
	primIndex  map[primitive.Atomic]int
	numParams  int

	constraints []constraint.Constraint
	consIndex   map[constraint.Constraint]struct{}
}

// New returns an empty sketch.
func New() *Sketch {
	return &Sketch{
		primIndex: make(map[primitive.Atomic]int),
		consIndex: make(map[constraint.Constraint]struct{}),
	}
}

// AddPrimitive registers an atomic primitive, appending its parameters
// to the flat vector. Registering the same primitive twice is an
// error: it would double-count its slots in Data/Gradient.
func (s *Sketch) AddPrimitive(p primitive.Atomic) error {
	if _, ok := s.primIndex[p]; ok {
		return chk.Err("sketch: primitive already registered")
	}
	s.primIndex[p] = len(s.primitives)
	s.offsets = append(s.offsets, s.numParams)
	s.primitives = append(s.primitives, p)
	s.numParams += p.NumParams()
	return nil
}

// AddConstraint registers a constraint. Registering the same
// constraint twice is an error, since it would double the loss/
// gradient contribution it's meant to apply once.
func (s *Sketch) AddConstraint(c constraint.Constraint) error {
	if _, ok := s.consIndex[c]; ok {
		return chk.Err("sketch: constraint already registered")
	}
	s.consIndex[c] = struct{}{}
	s.constraints = append(s.constraints, c)
	return nil
}

// NumParams returns the total length of the flat parameter vector.
func (s *Sketch) NumParams() int { return s.numParams }

// NumConstraints returns the number of registered constraints.
func (s *Sketch) NumConstraints() int { return len(s.constraints) }

// Primitives returns every registered atomic, in registration order —
// the same order that fixes the flat vector's column layout. Used by
// the persist package to assign stable integer primitive IDs.
func (s *Sketch) Primitives() []primitive.Atomic {
	out := make([]primitive.Atomic, len(s.primitives))
	copy(out, s.primitives)
	return out
}

// PrimitiveID returns p's registration index and true, or (0, false)
// if p was never registered with this sketch.
func (s *Sketch) PrimitiveID(p primitive.Atomic) (int, bool) {
	id, ok := s.primIndex[p]
	return id, ok
}

// Constraints returns every registered constraint, in registration
// order.
func (s *Sketch) Constraints() []constraint.Constraint {
	out := make([]constraint.Constraint, len(s.constraints))
	copy(out, s.constraints)
	return out
}

// Data concatenates every registered primitive's current parameters,
// in registration order.
func (s *Sketch) Data() []float64 {
	out := make([]float64, 0, s.numParams)
	for _, p := range s.primitives {
		out = append(out, p.Data()...)
	}
	return out
}

// SetData overwrites every registered primitive's parameters from a
// flat vector of length NumParams(), in registration order.
func (s *Sketch) SetData(x []float64) error {
	if len(x) != s.numParams {
		return chk.Err("sketch: SetData expected %d values, got %d", s.numParams, len(x))
	}
	for i, p := range s.primitives {
		off := s.offsets[i]
		if err := p.SetData(x[off : off+p.NumParams()]); err != nil {
			return err
		}
	}
	return nil
}

// Loss returns the sum of every registered constraint's current loss.
// Zero iff every constraint is exactly satisfied.
func (s *Sketch) Loss() float64 {
	total := 0.0
	for _, c := range s.constraints {
		total += c.LossValue()
	}
	return total
}

// Gradient zeroes every registered primitive's gradient accumulator,
// asks every constraint to add its contribution, then concatenates the
// resulting per-primitive gradients in the same order as Data. This is
// the f(x), grad f(x) oracle the solvers optimize against.
func (s *Sketch) Gradient() []float64 {
	for _, p := range s.primitives {
		p.ZeroGradient()
	}
	for _, c := range s.constraints {
		c.UpdateGradient()
	}
	out := make([]float64, 0, s.numParams)
	for _, p := range s.primitives {
		out = append(out, p.Gradient()...)
	}
	return out
}

// CheckGradients is the gradient self-check from the testable
// properties: it compares the analytic Gradient() against a
// central-difference approximation of Loss() at every parameter, step
// size h, and fails with the offending index if any entry differs by
// more than tol. The sketch's Data is restored to its original value
// before returning, success or failure.
func (s *Sketch) CheckGradients(h, tol float64) error {
	analytic := s.Gradient()
	x0 := s.Data()

	for i := range x0 {
		xp := append([]float64(nil), x0...)
		xp[i] += h
		if err := s.SetData(xp); err != nil {
			return err
		}
		plus := s.Loss()

		xm := append([]float64(nil), x0...)
		xm[i] -= h
		if err := s.SetData(xm); err != nil {
			return err
		}
		minus := s.Loss()

		if err := s.SetData(x0); err != nil {
			return err
		}

		numeric := (plus - minus) / (2 * h)
		diff := numeric - analytic[i]
		if diff > tol || diff < -tol {
			return chk.Err("sketch: gradient mismatch at parameter %d: analytic=%v numeric=%v", i, analytic[i], numeric)
		}
	}
	return nil
}

// Clone returns a fully independent deep copy of the sketch: every
// atomic primitive and every constraint is rebuilt against new,
// separately-gradiented atomics, so the clone can be driven (SetData,
// Loss, Gradient) from a solver goroutine without racing the original.
// Every constraint must implement constraint.Cloner; one that doesn't
// is reported as an error rather than silently dropped.
func (s *Sketch) Clone() (*Sketch, error) {
	mapping := make(map[primitive.Atomic]primitive.Atomic, len(s.primitives))
	clone := New()
	for _, p := range s.primitives {
		cloned, err := cloneAtomic(p)
		if err != nil {
			return nil, err
		}
		mapping[p] = cloned
		if err := clone.AddPrimitive(cloned); err != nil {
			return nil, err
		}
	}

	for _, c := range s.constraints {
		cloner, ok := c.(constraint.Cloner)
		if !ok {
			return nil, chk.Err("sketch: constraint %T does not implement constraint.Cloner", c)
		}
		if err := clone.AddConstraint(cloner.CloneWith(mapping)); err != nil {
			return nil, err
		}
	}
	return clone, nil
}

// cloneAtomic dispatches to the concrete atomic's own Clone method; the
// primitive library is closed (see primitive.Kind), so this switch is
// exhaustive.
func cloneAtomic(p primitive.Atomic) (primitive.Atomic, error) {
	switch v := p.(type) {
	case *primitive.Point2:
		return v.Clone(), nil
	case *primitive.Scalar:
		return v.Clone(), nil
	default:
		return nil, chk.Err("sketch: unknown atomic type %T, cannot clone", p)
	}
}
