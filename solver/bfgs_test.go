// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
	"github.com/gosketch/sketch2d/sketch"
	"github.com/stretchr/testify/require"
)

func TestBFGSSolvesFixedDistance(t *testing.T) {
	s := sketch.New()
	a := primitive.NewPoint2(0, 0)
	b := primitive.NewPoint2(1, 0)
	require.NoError(t, s.AddPrimitive(a))
	require.NoError(t, s.AddPrimitive(b))
	require.NoError(t, s.AddConstraint(constraint.NewFixPoint(a, 0, 0)))
	require.NoError(t, s.AddConstraint(constraint.NewEuclideanDistance(a, b, 5)))

	bfgs := NewBFGSSolver()
	_, err := bfgs.Solve(s)
	require.NoError(t, err)

	require.InDelta(t, 0, s.Loss(), 1e-6)
}

func TestBFGSSolvesVerticalAndHorizontalLines(t *testing.T) {
	s := sketch.New()
	a := primitive.NewPoint2(0, 0)
	b := primitive.NewPoint2(2, 3)
	c := primitive.NewPoint2(5, 1)
	require.NoError(t, s.AddPrimitive(a))
	require.NoError(t, s.AddPrimitive(b))
	require.NoError(t, s.AddPrimitive(c))
	require.NoError(t, s.AddConstraint(constraint.NewFixPoint(a, 0, 0)))

	vertical := primitive.NewLine(a, b)
	horizontal := primitive.NewLine(b, c)
	require.NoError(t, s.AddConstraint(constraint.NewVerticalLine(vertical)))
	require.NoError(t, s.AddConstraint(constraint.NewHorizontalLine(horizontal)))
	require.NoError(t, s.AddConstraint(constraint.NewEuclideanDistance(a, b, 3)))
	require.NoError(t, s.AddConstraint(constraint.NewEuclideanDistance(b, c, 4)))

	bfgs := NewBFGSSolver()
	_, err := bfgs.Solve(s)
	require.NoError(t, err)
	require.InDelta(t, 0, s.Loss(), 1e-6)
	require.InDelta(t, a.X(), b.X(), 1e-3)
	require.InDelta(t, b.Y(), c.Y(), 1e-3)
}

func TestBFGSRecordsHistoryWhenRequested(t *testing.T) {
	s := sketch.New()
	p := primitive.NewPoint2(5, 5)
	require.NoError(t, s.AddPrimitive(p))
	require.NoError(t, s.AddConstraint(constraint.NewFixPoint(p, 0, 0)))

	bfgs := NewBFGSSolver()
	bfgs.Record = true
	hist, err := bfgs.Solve(s)
	require.NoError(t, err)
	require.NotNil(t, hist)
	require.NotEmpty(t, hist.Loss)
}
