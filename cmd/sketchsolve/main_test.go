// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
	"github.com/gosketch/sketch2d/sketch"
	"github.com/stretchr/testify/require"
)

func buildVerticalLineSketch(t *testing.T) *sketch.Sketch {
	t.Helper()
	s := sketch.New()
	start := primitive.NewPoint2(3, 4)
	end := primitive.NewPoint2(5, 6)
	require.NoError(t, s.AddPrimitive(start))
	require.NoError(t, s.AddPrimitive(end))
	line := primitive.NewLine(start, end)
	require.NoError(t, s.AddConstraint(constraint.NewVerticalLine(line)))
	return s
}

func TestRunBFGSConverges(t *testing.T) {
	s := buildVerticalLineSketch(t)
	hist, err := run("bfgs", 0, s)
	require.NoError(t, err)
	require.NotNil(t, hist)
	require.Less(t, s.Loss(), 1e-8)
}

func TestRunGradientConverges(t *testing.T) {
	s := buildVerticalLineSketch(t)
	hist, err := run("gradient", 500, s)
	require.NoError(t, err)
	require.NotNil(t, hist)
	require.Less(t, s.Loss(), hist.Loss[0])
}

func TestRunRejectsUnknownSolver(t *testing.T) {
	s := buildVerticalLineSketch(t)
	_, err := run("nonsense", 0, s)
	require.Error(t, err)
}
