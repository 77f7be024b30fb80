// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

// Circle is a composite primitive: a center point plus a radius.
// Own-parameter column order: [center.x, center.y, radius].
type Circle struct {
	Center *Point2
	Radius *Scalar
}

// NewCircle builds a circle from its center and radius.
func NewCircle(center *Point2, radius *Scalar) *Circle {
	return &Circle{Center: center, Radius: radius}
}

// NumParams implements Composite.
func (c *Circle) NumParams() int { return 3 }

// References implements Composite, in column order.
func (c *Circle) References() []Atomic { return []Atomic{c.Center, c.Radius} }

// AddToGradient routes a 3-long gradient vector, expressed w.r.t.
// [center.x, center.y, radius], into the underlying atomics.
func (c *Circle) AddToGradient(g []float64) {
	c.Center.AddToGradient(g[0:2])
	c.Radius.AddToGradient(g[2:3])
}

// CloneWith rebuilds this circle against already-cloned atomics,
// looking up Center and Radius in mapping (keyed by the original
// atomics).
func (c *Circle) CloneWith(mapping map[Atomic]Atomic) *Circle {
	return NewCircle(mapping[c.Center].(*Point2), mapping[c.Radius].(*Scalar))
}
