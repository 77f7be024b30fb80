// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// ParallelLines constrains two lines to share a direction:
// loss = 1/2 (d1 x d2)^2 / (||d1||^2 ||d2||^2), which is zero exactly
// when d1 and d2 are parallel (sin of the angle between them is zero)
// and is smooth at every non-degenerate configuration.
type ParallelLines struct {
	L1, L2 *primitive.Line
}

// NewParallelLines builds the constraint between l1 and l2.
func NewParallelLines(l1, l2 *primitive.Line) *ParallelLines {
	return &ParallelLines{L1: l1, L2: l2}
}

// Kind implements Constraint.
func (c *ParallelLines) Kind() Kind { return KindParallelLines }

// References implements Constraint.
func (c *ParallelLines) References() []Primitive { return []Primitive{c.L1, c.L2} }

func (c *ParallelLines) terms() (d1, d2 [2]float64, cross, n1sq, n2sq float64) {
	d1 = c.L1.Direction()
	d2 = c.L2.Direction()
	cross = d1[0]*d2[1] - d1[1]*d2[0]
	n1sq = d1[0]*d1[0] + d1[1]*d1[1] + epsDirection
	n2sq = d2[0]*d2[0] + d2[1]*d2[1] + epsDirection
	return
}

// LossValue implements Constraint.
func (c *ParallelLines) LossValue() float64 {
	_, _, cross, n1sq, n2sq := c.terms()
	return 0.5 * cross * cross / (n1sq * n2sq)
}

// UpdateGradient implements Constraint.
func (c *ParallelLines) UpdateGradient() {
	d1, d2, cross, n1sq, n2sq := c.terms()

	dLossDCross := cross / (n1sq * n2sq)
	dLossDN1sq := -0.5 * cross * cross / (n1sq * n1sq * n2sq)
	dLossDN2sq := -0.5 * cross * cross / (n1sq * n2sq * n2sq)

	g1 := [2]float64{
		dLossDCross*d2[1] + dLossDN1sq*2*d1[0],
		dLossDCross*(-d2[0]) + dLossDN1sq*2*d1[1],
	}
	g2 := [2]float64{
		dLossDCross*(-d1[1]) + dLossDN2sq*2*d2[0],
		dLossDCross*d1[0] + dLossDN2sq*2*d2[1],
	}

	routeDirectionGradient(c.L1, g1)
	routeDirectionGradient(c.L2, g2)
}

// CloneWith implements Cloner.
func (c *ParallelLines) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &ParallelLines{L1: c.L1.CloneWith(mapping), L2: c.L2.CloneWith(mapping)}
}
