// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package persist (de)serializes a sketch to and from tagged records:
// one variant per primitive kind and one per constraint kind, each
// referencing the primitives it needs by a stable integer ID rather
// than by pointer. Two encodings share the same Document shape: YAML
// for human-authored sketch files, CBOR for compact mid-solve
// checkpoints.
package persist

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
	"github.com/gosketch/sketch2d/sketch"
)

// PrimitiveRecord tags one atomic primitive with a stable ID (its
// registration index in the originating sketch) and its current data.
type PrimitiveRecord struct {
	ID   int            `yaml:"id" cbor:"id"`
	Kind primitive.Kind `yaml:"kind" cbor:"kind"`
	Data []float64      `yaml:"data" cbor:"data"`
}

// ConstraintRecord tags one constraint with its kind, the IDs of the
// atomics it references (in the fixed per-kind order shared by
// encodeConstraint and decodeConstraint), and any scalar parameters it
// needs beyond its
// primitives (e.g. a target distance or angle).
type ConstraintRecord struct {
	Kind         constraint.Kind `yaml:"kind" cbor:"kind"`
	PrimitiveIDs []int           `yaml:"primitive_ids" cbor:"primitive_ids"`
	Params       []float64       `yaml:"params,omitempty" cbor:"params,omitempty"`
}

// Document is the full persisted shape of a sketch: every registered
// atomic plus every registered constraint, version-tagged so an
// incompatible future format can be rejected cleanly.
type Document struct {
	FormatVersion string             `yaml:"format_version" cbor:"format_version"`
	Primitives    []PrimitiveRecord  `yaml:"primitives" cbor:"primitives"`
	Constraints   []ConstraintRecord `yaml:"constraints" cbor:"constraints"`
}

// Encode flattens sk into a Document, assigning every registered
// atomic its registration index as a stable ID.
func Encode(sk *sketch.Sketch) (*Document, error) {
	doc := &Document{FormatVersion: CurrentFormatVersion}

	for id, p := range sk.Primitives() {
		kind, err := kindOfAtomic(p)
		if err != nil {
			return nil, err
		}
		doc.Primitives = append(doc.Primitives, PrimitiveRecord{ID: id, Kind: kind, Data: append([]float64(nil), p.Data()...)})
	}

	for _, c := range sk.Constraints() {
		rec, err := encodeConstraint(sk, c)
		if err != nil {
			return nil, err
		}
		doc.Constraints = append(doc.Constraints, rec)
	}

	return doc, nil
}

// Decode rebuilds a *sketch.Sketch from doc, rejecting a FormatVersion
// whose major component doesn't match CurrentFormatVersion.
func Decode(doc *Document) (*sketch.Sketch, error) {
	if err := checkFormatVersion(doc.FormatVersion); err != nil {
		return nil, err
	}

	sk := sketch.New()
	byID := make(map[int]primitive.Atomic, len(doc.Primitives))
	for _, rec := range doc.Primitives {
		atom, err := newAtomic(rec)
		if err != nil {
			return nil, err
		}
		if err := sk.AddPrimitive(atom); err != nil {
			return nil, err
		}
		byID[rec.ID] = atom
	}

	for _, rec := range doc.Constraints {
		c, err := decodeConstraint(byID, rec)
		if err != nil {
			return nil, err
		}
		if err := sk.AddConstraint(c); err != nil {
			return nil, err
		}
	}

	return sk, nil
}

func kindOfAtomic(p primitive.Atomic) (primitive.Kind, error) {
	switch p.(type) {
	case *primitive.Point2:
		return primitive.KindPoint2, nil
	case *primitive.Scalar:
		return primitive.KindScalar, nil
	default:
		return 0, chk.Err("persist: unknown atomic type %T", p)
	}
}

func newAtomic(rec PrimitiveRecord) (primitive.Atomic, error) {
	switch rec.Kind {
	case primitive.KindPoint2:
		if len(rec.Data) != 2 {
			return nil, chk.Err("persist: point2 record %d expected 2 data values, got %d", rec.ID, len(rec.Data))
		}
		return primitive.NewPoint2(rec.Data[0], rec.Data[1]), nil
	case primitive.KindScalar:
		if len(rec.Data) != 1 {
			return nil, chk.Err("persist: scalar record %d expected 1 data value, got %d", rec.ID, len(rec.Data))
		}
		return primitive.NewScalar(rec.Data[0]), nil
	default:
		return nil, chk.Err("persist: record %d has unsupported primitive kind %v", rec.ID, rec.Kind)
	}
}

func lookupPoint(byID map[int]primitive.Atomic, id int) (*primitive.Point2, error) {
	atom, ok := byID[id]
	if !ok {
		return nil, chk.Err("persist: unknown primitive id %d", id)
	}
	p, ok := atom.(*primitive.Point2)
	if !ok {
		return nil, chk.Err("persist: primitive id %d is not a point2", id)
	}
	return p, nil
}

func lookupScalar(byID map[int]primitive.Atomic, id int) (*primitive.Scalar, error) {
	atom, ok := byID[id]
	if !ok {
		return nil, chk.Err("persist: unknown primitive id %d", id)
	}
	s, ok := atom.(*primitive.Scalar)
	if !ok {
		return nil, chk.Err("persist: primitive id %d is not a scalar", id)
	}
	return s, nil
}
