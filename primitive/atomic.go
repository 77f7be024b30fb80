// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitive implements the 2D sketch solver's primitive kernel:
// the geometric objects (points, lines, arcs, circles) that carry the
// degrees of freedom the constraint solver optimizes, along with the
// gradient accumulators every constraint writes into.
package primitive

import "github.com/cpmech/gosl/chk"

// Atomic is a primitive that owns its own parameter and gradient
// storage: a contiguous slice of scalars, plus an equally-sized
// gradient accumulator. Point2 and Scalar are the only atomics; every
// other primitive is a Composite built out of atomics.
type Atomic interface {
	// NumParams returns the fixed number of real parameters this
	// primitive owns.
	NumParams() int

	// Data returns the current parameter values, in a stable order.
	Data() []float64

	// SetData overwrites the parameter values. len(x) must equal
	// NumParams(); a mismatch is a construction error.
	SetData(x []float64) error

	// ZeroGradient resets the accumulated gradient to zero.
	ZeroGradient()

	// Gradient returns the accumulated gradient, same order as Data.
	Gradient() []float64

	// AddToGradient adds g (same length as NumParams) into the
	// accumulator. Additive only: never reads or resets.
	AddToGradient(g []float64)
}

// Composite is a primitive built out of Atomics; it owns no storage of
// its own. Its "parameters" are those of its References, reached
// transitively, per the sketch data model.
type Composite interface {
	// NumParams is the total parameter count of this composite's
	// References, transitively.
	NumParams() int

	// References returns the atomics this composite is built from, in
	// the column order used by its routing Jacobians.
	References() []Atomic
}

// Point2 is the only 2-parameter atomic primitive: a point in the
// plane with coordinates (x, y).
type Point2 struct {
	data [2]float64
	grad [2]float64
}

// NewPoint2 creates a point initialized to (x, y).
func NewPoint2(x, y float64) *Point2 {
	return &Point2{data: [2]float64{x, y}}
}

// X returns the current x coordinate.
func (p *Point2) X() float64 { return p.data[0] }

// Y returns the current y coordinate.
func (p *Point2) Y() float64 { return p.data[1] }

// NumParams implements Atomic.
func (p *Point2) NumParams() int { return 2 }

// Data implements Atomic.
func (p *Point2) Data() []float64 { return p.data[:] }

// SetData implements Atomic.
func (p *Point2) SetData(x []float64) error {
	if len(x) != 2 {
		return chk.Err("Point2.SetData: expected 2 values, got %d", len(x))
	}
	p.data[0], p.data[1] = x[0], x[1]
	return nil
}

// ZeroGradient implements Atomic.
func (p *Point2) ZeroGradient() { p.grad[0], p.grad[1] = 0, 0 }

// Gradient implements Atomic.
func (p *Point2) Gradient() []float64 { return p.grad[:] }

// AddToGradient implements Atomic.
func (p *Point2) AddToGradient(g []float64) {
	p.grad[0] += g[0]
	p.grad[1] += g[1]
}

// Clone returns an independent Point2 with the same current data and a
// freshly zeroed gradient, for speculative solver restarts (see
// sketch.Sketch.Clone).
func (p *Point2) Clone() *Point2 { return NewPoint2(p.data[0], p.data[1]) }

// Scalar is the 1-parameter atomic primitive used for Arc/Circle
// radii and angles — anything that needs its own gradient slot but
// isn't a full Point2.
type Scalar struct {
	data float64
	grad float64
}

// NewScalar creates a scalar initialized to v.
func NewScalar(v float64) *Scalar { return &Scalar{data: v} }

// Value returns the current scalar value.
func (s *Scalar) Value() float64 { return s.data }

// NumParams implements Atomic.
func (s *Scalar) NumParams() int { return 1 }

// Data implements Atomic.
func (s *Scalar) Data() []float64 { return []float64{s.data} }

// SetData implements Atomic.
func (s *Scalar) SetData(x []float64) error {
	if len(x) != 1 {
		return chk.Err("Scalar.SetData: expected 1 value, got %d", len(x))
	}
	s.data = x[0]
	return nil
}

// ZeroGradient implements Atomic.
func (s *Scalar) ZeroGradient() { s.grad = 0 }

// Gradient implements Atomic.
func (s *Scalar) Gradient() []float64 { return []float64{s.grad} }

// AddToGradient implements Atomic.
func (s *Scalar) AddToGradient(g []float64) { s.grad += g[0] }

// Clone returns an independent Scalar with the same current value and
// a freshly zeroed gradient.
func (s *Scalar) Clone() *Scalar { return NewScalar(s.data) }
