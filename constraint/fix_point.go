// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// FixPoint pins a point to a literal target: loss = 1/2 ||P - p*||^2.
type FixPoint struct {
	Point  *primitive.Point2
	Target [2]float64
}

// NewFixPoint builds a FixPoint constraint pinning p to (x, y).
func NewFixPoint(p *primitive.Point2, x, y float64) *FixPoint {
	return &FixPoint{Point: p, Target: [2]float64{x, y}}
}

// Kind implements Constraint.
func (c *FixPoint) Kind() Kind { return KindFixPoint }

// References implements Constraint.
func (c *FixPoint) References() []Primitive { return []Primitive{c.Point} }

func (c *FixPoint) delta() [2]float64 {
	return [2]float64{c.Point.X() - c.Target[0], c.Point.Y() - c.Target[1]}
}

// LossValue implements Constraint.
func (c *FixPoint) LossValue() float64 {
	d := c.delta()
	return 0.5 * (d[0]*d[0] + d[1]*d[1])
}

// UpdateGradient implements Constraint.
func (c *FixPoint) UpdateGradient() {
	d := c.delta()
	c.Point.AddToGradient(d[:])
}

// CloneWith implements Cloner.
func (c *FixPoint) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &FixPoint{Point: mapping[c.Point].(*primitive.Point2), Target: c.Target}
}
