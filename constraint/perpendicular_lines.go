// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// PerpendicularLines constrains two lines' directions to be
// orthogonal: loss = 1/2 (d1 . d2)^2 / (||d1||^2 ||d2||^2).
type PerpendicularLines struct {
	L1, L2 *primitive.Line
}

// NewPerpendicularLines builds the constraint between l1 and l2.
func NewPerpendicularLines(l1, l2 *primitive.Line) *PerpendicularLines {
	return &PerpendicularLines{L1: l1, L2: l2}
}

// Kind implements Constraint.
func (c *PerpendicularLines) Kind() Kind { return KindPerpendicularLines }

// References implements Constraint.
func (c *PerpendicularLines) References() []Primitive { return []Primitive{c.L1, c.L2} }

func (c *PerpendicularLines) terms() (d1, d2 [2]float64, dot, n1sq, n2sq float64) {
	d1 = c.L1.Direction()
	d2 = c.L2.Direction()
	dot = d1[0]*d2[0] + d1[1]*d2[1]
	n1sq = d1[0]*d1[0] + d1[1]*d1[1] + epsDirection
	n2sq = d2[0]*d2[0] + d2[1]*d2[1] + epsDirection
	return
}

// LossValue implements Constraint.
func (c *PerpendicularLines) LossValue() float64 {
	_, _, dot, n1sq, n2sq := c.terms()
	return 0.5 * dot * dot / (n1sq * n2sq)
}

// UpdateGradient implements Constraint.
func (c *PerpendicularLines) UpdateGradient() {
	d1, d2, dot, n1sq, n2sq := c.terms()

	dLossDDot := dot / (n1sq * n2sq)
	dLossDN1sq := -0.5 * dot * dot / (n1sq * n1sq * n2sq)
	dLossDN2sq := -0.5 * dot * dot / (n1sq * n2sq * n2sq)

	g1 := [2]float64{
		dLossDDot*d2[0] + dLossDN1sq*2*d1[0],
		dLossDDot*d2[1] + dLossDN1sq*2*d1[1],
	}
	g2 := [2]float64{
		dLossDDot*d1[0] + dLossDN2sq*2*d2[0],
		dLossDDot*d1[1] + dLossDN2sq*2*d2[1],
	}

	routeDirectionGradient(c.L1, g1)
	routeDirectionGradient(c.L2, g2)
}

// CloneWith implements Cloner.
func (c *PerpendicularLines) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &PerpendicularLines{L1: c.L1.CloneWith(mapping), L2: c.L2.CloneWith(mapping)}
}
