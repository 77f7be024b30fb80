// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Arc is a composite primitive: a center point plus a radius and a
// start/end angle (both measured counter-clockwise from the positive
// x axis). Its own-parameter column order is
// [center.x, center.y, radius, startAngle, endAngle] (5 scalars) — no
// redundant parameterization; see DESIGN.md for the resolved "6
// parameters' worth" Open Question.
type Arc struct {
	Center     *Point2
	Radius     *Scalar
	StartAngle *Scalar
	EndAngle   *Scalar
}

// NewArc builds an arc from its center, radius and the two angles
// (radians).
func NewArc(center *Point2, radius, startAngle, endAngle *Scalar) *Arc {
	return &Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
}

// NumParams implements Composite.
func (a *Arc) NumParams() int { return 5 }

// References implements Composite, in column order.
func (a *Arc) References() []Atomic {
	return []Atomic{a.Center, a.Radius, a.StartAngle, a.EndAngle}
}

// StartPoint returns the arc's derived start endpoint.
func (a *Arc) StartPoint() [2]float64 {
	return a.pointAt(a.StartAngle.Value())
}

// EndPoint returns the arc's derived end endpoint.
func (a *Arc) EndPoint() [2]float64 {
	return a.pointAt(a.EndAngle.Value())
}

func (a *Arc) pointAt(theta float64) [2]float64 {
	r := a.Radius.Value()
	return [2]float64{
		a.Center.X() + r*math.Cos(theta),
		a.Center.Y() + r*math.Sin(theta),
	}
}

// StartGradient returns the 2x5 Jacobian of StartPoint w.r.t.
// [center.x, center.y, radius, startAngle, endAngle].
func (a *Arc) StartGradient() *la.Matrix {
	return a.endpointGradient(a.StartAngle.Value(), 3)
}

// EndGradient returns the 2x5 Jacobian of EndPoint w.r.t. the same
// parameter ordering.
func (a *Arc) EndGradient() *la.Matrix {
	return a.endpointGradient(a.EndAngle.Value(), 4)
}

// endpointGradient builds the shared Jacobian shape for an endpoint
// driven by the angle stored in column angleCol (3 for start, 4 for
// end); the other angle column is left zero, since that endpoint does
// not depend on the other angle.
func (a *Arc) endpointGradient(theta float64, angleCol int) *la.Matrix {
	r := a.Radius.Value()
	m := la.NewMatrix(2, 5)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(0, 2, math.Cos(theta))
	m.Set(1, 2, math.Sin(theta))
	m.Set(0, angleCol, -r*math.Sin(theta))
	m.Set(1, angleCol, r*math.Cos(theta))
	return m
}

// AddToGradient routes a 5-long gradient vector, expressed w.r.t.
// [center.x, center.y, radius, startAngle, endAngle], into the
// underlying atomics' accumulators.
func (a *Arc) AddToGradient(g []float64) {
	a.Center.AddToGradient(g[0:2])
	a.Radius.AddToGradient(g[2:3])
	a.StartAngle.AddToGradient(g[3:4])
	a.EndAngle.AddToGradient(g[4:5])
}

// CloneWith rebuilds this arc against already-cloned atomics, looking
// each one up in mapping (keyed by the original atomics).
func (a *Arc) CloneWith(mapping map[Atomic]Atomic) *Arc {
	return NewArc(
		mapping[a.Center].(*Point2),
		mapping[a.Radius].(*Scalar),
		mapping[a.StartAngle].(*Scalar),
		mapping[a.EndAngle].(*Scalar),
	)
}
