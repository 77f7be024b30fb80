// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/gosketch/sketch2d/primitive"
)

func TestPerpendicularLinesGradientMatchesCentralDifference(t *testing.T) {
	s1 := primitive.NewPoint2(0, 0)
	e1 := primitive.NewPoint2(4, 2)
	s2 := primitive.NewPoint2(1, 5)
	e2 := primitive.NewPoint2(-1, 8.3)
	l1 := primitive.NewLine(s1, e1)
	l2 := primitive.NewLine(s2, e2)
	c := NewPerpendicularLines(l1, l2)

	checkGradient(t, []primitive.Atomic{s1, e1, s2, e2}, c.LossValue, c.UpdateGradient)
}

func TestPerpendicularLinesLossIsZeroWhenOrthogonal(t *testing.T) {
	l1 := primitive.NewLine(primitive.NewPoint2(0, 0), primitive.NewPoint2(4, 0))
	l2 := primitive.NewLine(primitive.NewPoint2(1, 5), primitive.NewPoint2(1, 9))
	c := NewPerpendicularLines(l1, l2)
	if c.LossValue() > 1e-9 {
		t.Fatalf("expected ~zero loss for orthogonal lines, got %v", c.LossValue())
	}
}
