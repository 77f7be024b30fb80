// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// HorizontalLine constrains a line's end y-coordinate to match its
// start y-coordinate: loss = 1/2 (end.y - start.y)^2. Mirror image of
// VerticalLine.
type HorizontalLine struct {
	Line *primitive.Line
}

// NewHorizontalLine builds a HorizontalLine constraint over l.
func NewHorizontalLine(l *primitive.Line) *HorizontalLine { return &HorizontalLine{Line: l} }

// Kind implements Constraint.
func (c *HorizontalLine) Kind() Kind { return KindHorizontalLine }

// References implements Constraint.
func (c *HorizontalLine) References() []Primitive { return []Primitive{c.Line} }

func (c *HorizontalLine) dy() float64 {
	d := c.Line.Direction()
	return d[1]
}

// LossValue implements Constraint.
func (c *HorizontalLine) LossValue() float64 {
	dy := c.dy()
	return 0.5 * dy * dy
}

// UpdateGradient implements Constraint.
func (c *HorizontalLine) UpdateGradient() {
	dy := c.dy()
	routeDirectionGradient(c.Line, [2]float64{0, dy})
}

// CloneWith implements Cloner.
func (c *HorizontalLine) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &HorizontalLine{Line: c.Line.CloneWith(mapping)}
}
