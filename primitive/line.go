// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import "github.com/cpmech/gosl/la"

// Line is a composite primitive referencing two Point2s. It owns no
// storage: its 4 parameters are Start's 2 and End's 2, in that order
// (the column-ordering contract every routing Jacobian below honours).
type Line struct {
	Start *Point2
	End   *Point2
}

// NewLine builds a line between the given (shared) points.
func NewLine(start, end *Point2) *Line {
	return &Line{Start: start, End: end}
}

// NumParams implements Composite: 2 (Start) + 2 (End).
func (l *Line) NumParams() int { return 4 }

// References implements Composite.
func (l *Line) References() []Atomic { return []Atomic{l.Start, l.End} }

// StartData returns the start point's current coordinates.
func (l *Line) StartData() [2]float64 { return [2]float64{l.Start.X(), l.Start.Y()} }

// EndData returns the end point's current coordinates.
func (l *Line) EndData() [2]float64 { return [2]float64{l.End.X(), l.End.Y()} }

// Direction returns End - Start.
func (l *Line) Direction() [2]float64 {
	return [2]float64{l.End.X() - l.Start.X(), l.End.Y() - l.Start.Y()}
}

// StartGradient returns the 2x4 routing matrix that places the 2x2
// identity in the columns belonging to Start: a constraint holding
// d(loss)/d(start) can right-multiply by this matrix to deposit its
// contribution into the line's flattened 4-parameter gradient.
func (l *Line) StartGradient() *la.Matrix {
	m := la.NewMatrix(2, 4)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	return m
}

// EndGradient is the same routing matrix for the End point: the 2x2
// identity placed in columns 2-3.
func (l *Line) EndGradient() *la.Matrix {
	m := la.NewMatrix(2, 4)
	m.Set(0, 2, 1)
	m.Set(1, 3, 1)
	return m
}

// AddToGradient routes a 1x4 (or 4-long) row-vector gradient,
// expressed w.r.t. this line's own [start.x, start.y, end.x, end.y]
// ordering, into Start's and End's gradient accumulators.
func (l *Line) AddToGradient(g []float64) {
	l.Start.AddToGradient(g[0:2])
	l.End.AddToGradient(g[2:4])
}

// CloneWith rebuilds this line against already-cloned atomics, looking
// up Start and End in mapping (keyed by the original atomics). Used by
// sketch.Sketch.Clone to produce a fully independent primitive graph.
func (l *Line) CloneWith(mapping map[Atomic]Atomic) *Line {
	return NewLine(mapping[l.Start].(*Point2), mapping[l.End].(*Point2))
}
