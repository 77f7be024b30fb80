// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

// Kind is the closed tagged-variant discriminator for primitive types,
// used by the persist package to (de)serialize tagged records. New
// primitive kinds are added here, not via open extension — per the
// Design Notes, the primitive library is small and closed, so
// exhaustive dispatch over Kind is a compile-time-checkable switch.
type Kind int

const (
	// KindPoint2 tags an atomic Point2.
	KindPoint2 Kind = iota
	// KindScalar tags an atomic Scalar.
	KindScalar
	// KindLine tags a composite Line.
	KindLine
	// KindArc tags a composite Arc.
	KindArc
	// KindCircle tags a composite Circle.
	KindCircle
)

// String renders the Kind for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindPoint2:
		return "point2"
	case KindScalar:
		return "scalar"
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}
