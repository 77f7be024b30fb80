// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
	"github.com/gosketch/sketch2d/sketch"
	"github.com/gosketch/sketch2d/solver"
	"github.com/stretchr/testify/require"
)

func buildSampleSketch(t *testing.T) *sketch.Sketch {
	t.Helper()
	s := sketch.New()
	a := primitive.NewPoint2(0, 0)
	b := primitive.NewPoint2(3, 4)
	c := primitive.NewPoint2(3, 9)
	require.NoError(t, s.AddPrimitive(a))
	require.NoError(t, s.AddPrimitive(b))
	require.NoError(t, s.AddPrimitive(c))

	require.NoError(t, s.AddConstraint(constraint.NewFixPoint(a, 0, 0)))
	require.NoError(t, s.AddConstraint(constraint.NewEuclideanDistance(a, b, 5)))
	line := primitive.NewLine(b, c)
	require.NoError(t, s.AddConstraint(constraint.NewVerticalLine(line)))
	return s
}

func TestYAMLRoundTripPreservesDataAndLoss(t *testing.T) {
	s := buildSampleSketch(t)
	wantData := s.Data()
	wantLoss := s.Loss()

	out, err := EncodeYAML(s)
	require.NoError(t, err)

	restored, err := DecodeYAML(out)
	require.NoError(t, err)

	require.Equal(t, wantData, restored.Data())
	require.InDelta(t, wantLoss, restored.Loss(), 1e-12)
	require.Equal(t, s.NumConstraints(), restored.NumConstraints())
}

func TestCBORCheckpointRoundTrip(t *testing.T) {
	s := buildSampleSketch(t)
	hist := &solver.History{Loss: []float64{10, 5, 1}}

	out, err := EncodeCheckpointCBOR(s, hist)
	require.NoError(t, err)

	restored, restoredHist, err := DecodeCheckpointCBOR(out)
	require.NoError(t, err)
	require.Equal(t, s.Data(), restored.Data())
	require.Equal(t, hist.Loss, restoredHist.Loss)
}

func TestDecodeRejectsIncompatibleMajorVersion(t *testing.T) {
	s := buildSampleSketch(t)
	doc, err := Encode(s)
	require.NoError(t, err)
	doc.FormatVersion = "2.0.0"

	_, err = Decode(doc)
	require.Error(t, err)
}

func TestEncodeDecodeDocumentIsStructurallyStable(t *testing.T) {
	s := buildSampleSketch(t)
	doc1, err := Encode(s)
	require.NoError(t, err)

	restored, err := Decode(doc1)
	require.NoError(t, err)

	doc2, err := Encode(restored)
	require.NoError(t, err)

	if diff := cmp.Diff(doc1, doc2); diff != "" {
		t.Fatalf("document changed across a decode/re-encode round trip (-want +got):\n%s", diff)
	}
}
