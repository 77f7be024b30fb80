// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/gosketch/sketch2d/primitive"

// ArcEndPointCoincident makes an arc's end endpoint coincident with a
// point: loss = 1/2 ||arc.EndPoint() - P||^2.
type ArcEndPointCoincident struct {
	Arc   *primitive.Arc
	Point *primitive.Point2
}

// NewArcEndPointCoincident builds the constraint pinning arc's derived
// end endpoint to p.
func NewArcEndPointCoincident(arc *primitive.Arc, p *primitive.Point2) *ArcEndPointCoincident {
	return &ArcEndPointCoincident{Arc: arc, Point: p}
}

// Kind implements Constraint.
func (c *ArcEndPointCoincident) Kind() Kind { return KindArcEndPointCoincident }

// References implements Constraint.
func (c *ArcEndPointCoincident) References() []Primitive {
	return []Primitive{c.Arc, c.Point}
}

func (c *ArcEndPointCoincident) delta() [2]float64 {
	end := c.Arc.EndPoint()
	return [2]float64{end[0] - c.Point.X(), end[1] - c.Point.Y()}
}

// LossValue implements Constraint.
func (c *ArcEndPointCoincident) LossValue() float64 {
	d := c.delta()
	return 0.5 * (d[0]*d[0] + d[1]*d[1])
}

// UpdateGradient implements Constraint.
func (c *ArcEndPointCoincident) UpdateGradient() {
	d := c.delta()

	arcContribution := rowTimesRoutingMatrix(d, c.Arc.EndGradient(), 5)
	c.Arc.AddToGradient(arcContribution)

	negD := [2]float64{-d[0], -d[1]}
	c.Point.AddToGradient(negD[:])
}

// CloneWith implements Cloner.
func (c *ArcEndPointCoincident) CloneWith(mapping map[primitive.Atomic]primitive.Atomic) Constraint {
	return &ArcEndPointCoincident{
		Arc:   c.Arc.CloneWith(mapping),
		Point: mapping[c.Point].(*primitive.Point2),
	}
}
