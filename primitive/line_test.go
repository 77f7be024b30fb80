// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLineNumParamsIsSumOfChildren(t *testing.T) {
	l := NewLine(NewPoint2(0, 0), NewPoint2(1, 1))
	chk.IntAssert(l.NumParams(), 4)
	chk.IntAssert(len(l.References()), 2)
}

func TestLineRoutingMatricesPlaceIdentityInOwnColumns(t *testing.T) {
	l := NewLine(NewPoint2(3, 4), NewPoint2(5, 6))
	sg := l.StartGradient()
	eg := l.EndGradient()

	// start-point columns come first (columns 0-1), end-point columns
	// follow (columns 2-3) — the contract documented in DESIGN.md.
	chk.Scalar(t, "sg[0][0]", 1e-15, sg.Get(0, 0), 1)
	chk.Scalar(t, "sg[1][1]", 1e-15, sg.Get(1, 1), 1)
	chk.Scalar(t, "sg[0][2]", 1e-15, sg.Get(0, 2), 0)
	chk.Scalar(t, "sg[1][3]", 1e-15, sg.Get(1, 3), 0)

	chk.Scalar(t, "eg[0][2]", 1e-15, eg.Get(0, 2), 1)
	chk.Scalar(t, "eg[1][3]", 1e-15, eg.Get(1, 3), 1)
	chk.Scalar(t, "eg[0][0]", 1e-15, eg.Get(0, 0), 0)
}

func TestLineAddToGradientRoutesToBothPoints(t *testing.T) {
	start, end := NewPoint2(0, 0), NewPoint2(1, 1)
	l := NewLine(start, end)
	l.AddToGradient([]float64{1, 2, 3, 4})
	chk.Vector(t, "start.grad", 1e-15, start.Gradient(), []float64{1, 2})
	chk.Vector(t, "end.grad", 1e-15, end.Gradient(), []float64{3, 4})
}

func TestLineDirection(t *testing.T) {
	l := NewLine(NewPoint2(1, 1), NewPoint2(4, 5))
	d := l.Direction()
	chk.Vector(t, "direction", 1e-15, d[:], []float64{3, 4})
}
