// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// VerticalLine constrains a line's end x-coordinate to match its
// start x-coordinate: loss = 1/2 (end.x - start.x)^2.
type VerticalLine struct {
	Line *primitive.Line
}

// NewVerticalLine builds a VerticalLine constraint over l.
func NewVerticalLine(l *primitive.Line) *VerticalLine { return &VerticalLine{Line: l} }

// Kind implements Constraint.
func (c *VerticalLine) Kind() Kind { return KindVerticalLine }

// References implements Constraint.
func (c *VerticalLine) References() []Primitive { return []Primitive{c.Line} }

func (c *VerticalLine) dx() float64 {
	d := c.Line.Direction()
	return d[0]
}

// LossValue implements Constraint.
func (c *VerticalLine) LossValue() float64 {
	dx := c.dx()
	return 0.5 * dx * dx
}

// UpdateGradient implements Constraint.
//
// Grounded directly on the original implementation's vertical_line
// constraint: a 1x2 row gradient w.r.t. (dx, dy), routed into the
// line's own 4-long parameter space through its start/end routing
// Jacobians.
func (c *VerticalLine) UpdateGradient() {
	dx := c.dx()
	routeDirectionGradient(c.Line, [2]float64{dx, 0})
}

// CloneWith implements Cloner.
func (c *VerticalLine) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &VerticalLine{Line: c.Line.CloneWith(mapping)}
}
