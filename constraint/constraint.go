// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements the sketch solver's constraint
// library: each constraint is a smooth scalar loss over the
// primitives it references, zero iff satisfied, plus an analytic
// (hand-derived, not autodiff) gradient contribution.
package constraint

import (
	"github.com/cpmech/gosl/la"
	"github.com/gosketch/sketch2d/primitive"
)

// epsDirection guards divisions by squared direction/distance norms
// that would otherwise blow up at degenerate configurations (a
// zero-length line, coincident points). Matches the Numeric policy
// paragraph of the spec: documented, not a hard-coded magic number
// buried in an expression.
const epsDirection = 1e-12

// Kind is the closed tagged-variant discriminator for constraint
// types, mirroring primitive.Kind — used by the persist package and
// for exhaustive dispatch.
type Kind int

const (
	KindFixPoint Kind = iota
	KindHorizontalLine
	KindVerticalLine
	KindEquidistantPoints
	KindEuclideanDistance
	KindParallelLines
	KindPerpendicularLines
	KindAngleBetweenPoints
	KindArcEndPointCoincident
)

func (k Kind) String() string {
	switch k {
	case KindFixPoint:
		return "fix_point"
	case KindHorizontalLine:
		return "horizontal_line"
	case KindVerticalLine:
		return "vertical_line"
	case KindEquidistantPoints:
		return "equidistant_points"
	case KindEuclideanDistance:
		return "euclidean_distance"
	case KindParallelLines:
		return "parallel_lines"
	case KindPerpendicularLines:
		return "perpendicular_lines"
	case KindAngleBetweenPoints:
		return "angle_between_points"
	case KindArcEndPointCoincident:
		return "arc_endpoint_coincident"
	default:
		return "unknown"
	}
}

// Primitive is the minimal capability a constraint needs from
// anything it references: an additive gradient sink. Both
// primitive.Atomic and the composite types (Line, Arc, Circle)
// satisfy this.
type Primitive interface {
	AddToGradient(g []float64)
}

// Constraint is a smooth scalar function of the primitives it
// references, zero iff satisfied, with an analytic gradient.
type Constraint interface {
	// References returns every primitive this constraint pins,
	// atomic or composite (duplicates are permitted and its
	// cumulative effect is intentional, see DESIGN.md).
	References() []Primitive

	// LossValue returns the current loss. Must be >= 0.
	LossValue() float64

	// UpdateGradient adds this constraint's contribution into every
	// referenced primitive's gradient accumulator. Additive only.
	UpdateGradient()

	// Kind identifies the constraint's concrete type for dispatch and
	// persistence.
	Kind() Kind
}

// Cloner is implemented by every constraint kind in this package: it
// rebuilds the constraint against already-cloned primitives, looking
// each one up in mapping (keyed by the original atomics). Used by
// sketch.Sketch.Clone to produce a fully independent primitive +
// constraint graph for speculative solver restarts.
type Cloner interface {
	CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint
}

// rowTimesRoutingMatrix computes row (a 1x2 gradient w.r.t a derived
// 2-vector quantity, e.g. a line's direction or an arc's endpoint)
// times a 2xN routing Jacobian, producing the 1xN row that can be
// handed directly to the owning composite's AddToGradient. This is
// the mechanism described in spec §4.1: a constraint that only knows
// about a derived quantity deposits into the right primitive slots
// without knowing the composite's internals.
func rowTimesRoutingMatrix(row [2]float64, m *la.Matrix, n int) []float64 {
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		out[j] = row[0]*m.Get(0, j) + row[1]*m.Get(1, j)
	}
	return out
}

// routeDirectionGradient deposits a gradient expressed w.r.t. a line's
// direction (End - Start) into the line's own 4-long parameter space:
// d(direction)/d(Start) = -I, d(direction)/d(End) = +I.
func routeDirectionGradient(l *primitive.Line, g [2]float64) {
	startContribution := rowTimesRoutingMatrix(g, l.StartGradient(), 4)
	for i := range startContribution {
		startContribution[i] = -startContribution[i]
	}
	l.AddToGradient(startContribution)

	endContribution := rowTimesRoutingMatrix(g, l.EndGradient(), 4)
	l.AddToGradient(endContribution)
}
