// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"

	"github.com/gosketch/sketch2d/primitive"
)

// AngleBetweenPoints constrains the signed angle at vertex R, from ray
// R->A to ray R->B, to a target angle (radians):
// loss = 1/2 (angle(R,A,B) - theta*)^2, with angle computed via
// atan2(cross(v1,v2), dot(v1,v2)) where v1=A-R, v2=B-R. The angle lies
// in (-pi, pi] and wraps at the +-pi branch cut, so the loss jumps
// there; it is smooth everywhere else away from the vertex.
type AngleBetweenPoints struct {
	R, A, B *primitive.Point2
	Target  float64
}

// NewAngleBetweenPoints builds the constraint with vertex r, rays
// toward a and b, and target angle theta (radians).
func NewAngleBetweenPoints(r, a, b *primitive.Point2, theta float64) *AngleBetweenPoints {
	return &AngleBetweenPoints{R: r, A: a, B: b, Target: theta}
}

// Kind implements Constraint.
func (c *AngleBetweenPoints) Kind() Kind { return KindAngleBetweenPoints }

// References implements Constraint.
func (c *AngleBetweenPoints) References() []Primitive { return []Primitive{c.R, c.A, c.B} }

func (c *AngleBetweenPoints) vectors() (v1, v2 [2]float64) {
	v1 = [2]float64{c.A.X() - c.R.X(), c.A.Y() - c.R.Y()}
	v2 = [2]float64{c.B.X() - c.R.X(), c.B.Y() - c.R.Y()}
	return
}

func (c *AngleBetweenPoints) angle() float64 {
	v1, v2 := c.vectors()
	cross := v1[0]*v2[1] - v1[1]*v2[0]
	dot := v1[0]*v2[0] + v1[1]*v2[1]
	return math.Atan2(cross, dot)
}

// LossValue implements Constraint.
func (c *AngleBetweenPoints) LossValue() float64 {
	diff := c.angle() - c.Target
	return 0.5 * diff * diff
}

// UpdateGradient implements Constraint.
func (c *AngleBetweenPoints) UpdateGradient() {
	v1, v2 := c.vectors()
	cross := v1[0]*v2[1] - v1[1]*v2[0]
	dot := v1[0]*v2[0] + v1[1]*v2[1]
	denom := cross*cross + dot*dot + epsDirection

	dAngleDCross := dot / denom
	dAngleDDot := -cross / denom

	dAngleDV1 := [2]float64{
		dAngleDCross*v2[1] + dAngleDDot*v2[0],
		dAngleDCross*(-v2[0]) + dAngleDDot*v2[1],
	}
	dAngleDV2 := [2]float64{
		dAngleDCross*(-v1[1]) + dAngleDDot*v1[0],
		dAngleDCross*v1[0] + dAngleDDot*v1[1],
	}

	dLossDAngle := c.angle() - c.Target

	gA := [2]float64{dLossDAngle * dAngleDV1[0], dLossDAngle * dAngleDV1[1]}
	gB := [2]float64{dLossDAngle * dAngleDV2[0], dLossDAngle * dAngleDV2[1]}
	gR := [2]float64{-(gA[0] + gB[0]), -(gA[1] + gB[1])}

	c.A.AddToGradient(gA[:])
	c.B.AddToGradient(gB[:])
	c.R.AddToGradient(gR[:])
}

// CloneWith implements Cloner.
func (c *AngleBetweenPoints) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &AngleBetweenPoints{
		R:      mapping[c.R].(*primitive.Point2),
		A:      mapping[c.A].(*primitive.Point2),
		B:      mapping[c.B].(*primitive.Point2),
		Target: c.Target,
	}
}
