// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/gosketch/sketch2d/primitive"
)

// EuclideanDistance pins the distance between two points to a target
// scalar: loss = 1/2 (||A - B|| - d*)^2.
type EuclideanDistance struct {
	A, B   *primitive.Point2
	Target float64
}

// NewEuclideanDistance builds a EuclideanDistance constraint between
// a and b with target distance d.
func NewEuclideanDistance(a, b *primitive.Point2, d float64) *EuclideanDistance {
	return &EuclideanDistance{A: a, B: b, Target: d}
}

// Kind implements Constraint.
func (c *EuclideanDistance) Kind() Kind { return KindEuclideanDistance }

// References implements Constraint.
func (c *EuclideanDistance) References() []Primitive { return []Primitive{c.A, c.B} }

func (c *EuclideanDistance) delta() (dx, dy, norm float64) {
	dx = c.A.X() - c.B.X()
	dy = c.A.Y() - c.B.Y()
	norm = distanceNorm(dx, dy)
	return
}

// LossValue implements Constraint.
func (c *EuclideanDistance) LossValue() float64 {
	_, _, norm := c.delta()
	diff := norm - c.Target
	return 0.5 * diff * diff
}

// UpdateGradient implements Constraint.
func (c *EuclideanDistance) UpdateGradient() {
	dx, dy, norm := c.delta()
	diff := norm - c.Target
	coef := diff / norm // d(norm)/dA = (A-B)/norm
	gA := [2]float64{coef * dx, coef * dy}
	gB := [2]float64{-gA[0], -gA[1]}
	c.A.AddToGradient(gA[:])
	c.B.AddToGradient(gB[:])
}

// CloneWith implements Cloner.
func (c *EuclideanDistance) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &EuclideanDistance{
		A:      mapping[c.A].(*primitive.Point2),
		B:      mapping[c.B].(*primitive.Point2),
		Target: c.Target,
	}
}

// distanceNorm returns sqrt(dx^2+dy^2), guarded so that the gradient
// never divides by an exactly-zero norm at a degenerate (coincident
// points) configuration.
func distanceNorm(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy + epsDirection)
}
