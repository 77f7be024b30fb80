// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"math"
	"testing"

	"github.com/gosketch/sketch2d/primitive"
)

func TestAngleBetweenPointsGradientMatchesCentralDifference(t *testing.T) {
	r := primitive.NewPoint2(0, 0)
	a := primitive.NewPoint2(3, 0.5)
	b := primitive.NewPoint2(1, 2.7)
	c := NewAngleBetweenPoints(r, a, b, math.Pi/3)

	checkGradient(t, []primitive.Atomic{r, a, b}, c.LossValue, c.UpdateGradient)
}

func TestAngleBetweenPointsLossIsZeroAtTarget(t *testing.T) {
	r := primitive.NewPoint2(0, 0)
	a := primitive.NewPoint2(1, 0)
	b := primitive.NewPoint2(0, 1)
	c := NewAngleBetweenPoints(r, a, b, math.Pi/2)
	if c.LossValue() > 1e-9 {
		t.Fatalf("expected ~zero loss for a right angle target, got %v", c.LossValue())
	}
}
