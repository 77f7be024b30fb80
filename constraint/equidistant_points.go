// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// EquidistantPoints constrains ||A-B|| to equal ||C-D||, regardless of
// either distance's absolute value: loss = 1/2 (||A-B|| - ||C-D||)^2.
type EquidistantPoints struct {
	A, B, C, D *primitive.Point2
}

// NewEquidistantPoints builds the constraint over the two point pairs.
func NewEquidistantPoints(a, b, c, d *primitive.Point2) *EquidistantPoints {
	return &EquidistantPoints{A: a, B: b, C: c, D: d}
}

// Kind implements Constraint.
func (c *EquidistantPoints) Kind() Kind { return KindEquidistantPoints }

// References implements Constraint.
func (c *EquidistantPoints) References() []Primitive {
	return []Primitive{c.A, c.B, c.C, c.D}
}

func (c *EquidistantPoints) distances() (abx, aby, abNorm, cdx, cdy, cdNorm float64) {
	abx, aby = c.A.X()-c.B.X(), c.A.Y()-c.B.Y()
	cdx, cdy = c.C.X()-c.D.X(), c.C.Y()-c.D.Y()
	abNorm = distanceNorm(abx, aby)
	cdNorm = distanceNorm(cdx, cdy)
	return
}

// LossValue implements Constraint.
func (c *EquidistantPoints) LossValue() float64 {
	_, _, abNorm, _, _, cdNorm := c.distances()
	diff := abNorm - cdNorm
	return 0.5 * diff * diff
}

// UpdateGradient implements Constraint.
func (c *EquidistantPoints) UpdateGradient() {
	abx, aby, abNorm, cdx, cdy, cdNorm := c.distances()
	diff := abNorm - cdNorm

	abCoef := diff / abNorm
	gA := [2]float64{abCoef * abx, abCoef * aby}
	gB := [2]float64{-gA[0], -gA[1]}

	cdCoef := -diff / cdNorm
	gC := [2]float64{cdCoef * cdx, cdCoef * cdy}
	gD := [2]float64{-gC[0], -gC[1]}

	c.A.AddToGradient(gA[:])
	c.B.AddToGradient(gB[:])
	c.C.AddToGradient(gC[:])
	c.D.AddToGradient(gD[:])
}

// CloneWith implements Cloner.
func (c *EquidistantPoints) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &EquidistantPoints{
		A: mapping[c.A].(*primitive.Point2),
		B: mapping[c.B].(*primitive.Point2),
		C: mapping[c.C].(*primitive.Point2),
		D: mapping[c.D].(*primitive.Point2),
	}
}
