// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint_test

import (
	"context"
	"testing"

	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
	"github.com/gosketch/sketch2d/sketch"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// buildKindSketches returns one sketch per constraint kind, each holding
// its own independent primitives so the concurrent checks below never
// share mutable state.
func buildKindSketches(t *testing.T) map[string]*sketch.Sketch {
	t.Helper()
	sketches := make(map[string]*sketch.Sketch)

	newSketch := func() *sketch.Sketch { return sketch.New() }

	{
		s := newSketch()
		p := primitive.NewPoint2(1.5, -2.5)
		require.NoError(t, s.AddPrimitive(p))
		require.NoError(t, s.AddConstraint(constraint.NewFixPoint(p, 1.5, -2.5)))
		sketches["fix_point"] = s
	}
	{
		s := newSketch()
		start := primitive.NewPoint2(3, 4)
		end := primitive.NewPoint2(5.2, 9)
		require.NoError(t, s.AddPrimitive(start))
		require.NoError(t, s.AddPrimitive(end))
		line := primitive.NewLine(start, end)
		require.NoError(t, s.AddConstraint(constraint.NewVerticalLine(line)))
		sketches["vertical_line"] = s
	}
	{
		s := newSketch()
		start := primitive.NewPoint2(-1, 2)
		end := primitive.NewPoint2(6, 2.7)
		require.NoError(t, s.AddPrimitive(start))
		require.NoError(t, s.AddPrimitive(end))
		line := primitive.NewLine(start, end)
		require.NoError(t, s.AddConstraint(constraint.NewHorizontalLine(line)))
		sketches["horizontal_line"] = s
	}
	{
		s := newSketch()
		a := primitive.NewPoint2(0, 0)
		b := primitive.NewPoint2(2, 2)
		require.NoError(t, s.AddPrimitive(a))
		require.NoError(t, s.AddPrimitive(b))
		require.NoError(t, s.AddConstraint(constraint.NewEuclideanDistance(a, b, 3)))
		sketches["euclidean_distance"] = s
	}
	{
		s := newSketch()
		a := primitive.NewPoint2(0, 0)
		b := primitive.NewPoint2(2, 1)
		c := primitive.NewPoint2(-3, 4)
		d := primitive.NewPoint2(1, -2)
		require.NoError(t, s.AddPrimitive(a))
		require.NoError(t, s.AddPrimitive(b))
		require.NoError(t, s.AddPrimitive(c))
		require.NoError(t, s.AddPrimitive(d))
		require.NoError(t, s.AddConstraint(constraint.NewEquidistantPoints(a, b, c, d)))
		sketches["equidistant_points"] = s
	}
	{
		s := newSketch()
		a1 := primitive.NewPoint2(0, 0)
		a2 := primitive.NewPoint2(4, 0.3)
		b1 := primitive.NewPoint2(0, 1)
		b2 := primitive.NewPoint2(4, 1.4)
		require.NoError(t, s.AddPrimitive(a1))
		require.NoError(t, s.AddPrimitive(a2))
		require.NoError(t, s.AddPrimitive(b1))
		require.NoError(t, s.AddPrimitive(b2))
		l1 := primitive.NewLine(a1, a2)
		l2 := primitive.NewLine(b1, b2)
		require.NoError(t, s.AddConstraint(constraint.NewParallelLines(l1, l2)))
		sketches["parallel_lines"] = s
	}
	{
		s := newSketch()
		mid := primitive.NewPoint2(0, 0)
		e1 := primitive.NewPoint2(1, 0.2)
		e2 := primitive.NewPoint2(0.1, 1)
		require.NoError(t, s.AddPrimitive(mid))
		require.NoError(t, s.AddPrimitive(e1))
		require.NoError(t, s.AddPrimitive(e2))
		l1 := primitive.NewLine(mid, e1)
		l2 := primitive.NewLine(mid, e2)
		require.NoError(t, s.AddConstraint(constraint.NewPerpendicularLines(l1, l2)))
		sketches["perpendicular_lines"] = s
	}
	{
		s := newSketch()
		vertex := primitive.NewPoint2(0, 0)
		p1 := primitive.NewPoint2(3, 0.4)
		p2 := primitive.NewPoint2(0.2, 3)
		require.NoError(t, s.AddPrimitive(vertex))
		require.NoError(t, s.AddPrimitive(p1))
		require.NoError(t, s.AddPrimitive(p2))
		require.NoError(t, s.AddConstraint(constraint.NewAngleBetweenPoints(vertex, p1, p2, 1.2)))
		sketches["angle_between_points"] = s
	}
	{
		s := newSketch()
		center := primitive.NewPoint2(0, 0)
		radius := primitive.NewScalar(2)
		startAngle := primitive.NewScalar(0)
		endAngle := primitive.NewScalar(1.5)
		target := primitive.NewPoint2(2.1, 0.3)
		require.NoError(t, s.AddPrimitive(center))
		require.NoError(t, s.AddPrimitive(radius))
		require.NoError(t, s.AddPrimitive(startAngle))
		require.NoError(t, s.AddPrimitive(endAngle))
		require.NoError(t, s.AddPrimitive(target))
		arc := primitive.NewArc(center, radius, startAngle, endAngle)
		require.NoError(t, s.AddConstraint(constraint.NewArcEndPointCoincident(arc, target)))
		sketches["arc_endpoint_coincident"] = s
	}

	return sketches
}

// TestConcurrentGradientChecksAcrossConstraintKinds runs the
// whole-sketch gradient self-check for every constraint kind at once,
// each on its own private sketch. Test tooling is the one place this
// module runs independent work concurrently: every production solve
// still walks a single sketch sequentially.
func TestConcurrentGradientChecksAcrossConstraintKinds(t *testing.T) {
	sketches := buildKindSketches(t)

	g, _ := errgroup.WithContext(context.Background())
	for kind, s := range sketches {
		kind, s := kind, s
		g.Go(func() error {
			if err := s.CheckGradients(1e-6, 1e-4); err != nil {
				return &kindCheckError{kind: kind, err: err}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

type kindCheckError struct {
	kind string
	err  error
}

func (e *kindCheckError) Error() string {
	return e.kind + ": " + e.err.Error()
}

func (e *kindCheckError) Unwrap() error { return e.err }
