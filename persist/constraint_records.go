// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gosketch/sketch2d/constraint"
	"github.com/gosketch/sketch2d/primitive"
	"github.com/gosketch/sketch2d/sketch"
)

// encodeConstraint dispatches on c's concrete type. The primitive
// library and constraint library are both closed (primitive.Kind,
// constraint.Kind), so this switch, and decodeConstraint's mirror
// image, are exhaustive by construction.
func encodeConstraint(sk *sketch.Sketch, c constraint.Constraint) (ConstraintRecord, error) {
	idOf := func(a primitive.Atomic) (int, error) {
		id, ok := sk.PrimitiveID(a)
		if !ok {
			return 0, chk.Err("persist: constraint references a primitive not registered with this sketch")
		}
		return id, nil
	}

	switch v := c.(type) {
	case *constraint.FixPoint:
		id, err := idOf(v.Point)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: []int{id}, Params: []float64{v.Target[0], v.Target[1]}}, nil

	case *constraint.VerticalLine:
		ids, err := lineIDs(idOf, v.Line)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids}, nil

	case *constraint.HorizontalLine:
		ids, err := lineIDs(idOf, v.Line)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids}, nil

	case *constraint.EquidistantPoints:
		ids, err := pointIDs(idOf, v.A, v.B, v.C, v.D)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids}, nil

	case *constraint.EuclideanDistance:
		ids, err := pointIDs(idOf, v.A, v.B)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids, Params: []float64{v.Target}}, nil

	case *constraint.ParallelLines:
		ids, err := twoLineIDs(idOf, v.L1, v.L2)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids}, nil

	case *constraint.PerpendicularLines:
		ids, err := twoLineIDs(idOf, v.L1, v.L2)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids}, nil

	case *constraint.AngleBetweenPoints:
		ids, err := pointIDs(idOf, v.R, v.A, v.B)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: ids, Params: []float64{v.Target}}, nil

	case *constraint.ArcEndPointCoincident:
		arcIDs, err := arcIDs(idOf, v.Arc)
		if err != nil {
			return ConstraintRecord{}, err
		}
		pointID, err := idOf(v.Point)
		if err != nil {
			return ConstraintRecord{}, err
		}
		return ConstraintRecord{Kind: v.Kind(), PrimitiveIDs: append(arcIDs, pointID)}, nil

	default:
		return ConstraintRecord{}, chk.Err("persist: unknown constraint type %T", c)
	}
}

func decodeConstraint(byID map[int]primitive.Atomic, rec ConstraintRecord) (constraint.Constraint, error) {
	switch rec.Kind {
	case constraint.KindFixPoint:
		if err := expect(rec, 1, 2); err != nil {
			return nil, err
		}
		p, err := lookupPoint(byID, rec.PrimitiveIDs[0])
		if err != nil {
			return nil, err
		}
		return constraint.NewFixPoint(p, rec.Params[0], rec.Params[1]), nil

	case constraint.KindVerticalLine:
		line, err := decodeLine(byID, rec, 0)
		if err != nil {
			return nil, err
		}
		return constraint.NewVerticalLine(line), nil

	case constraint.KindHorizontalLine:
		line, err := decodeLine(byID, rec, 0)
		if err != nil {
			return nil, err
		}
		return constraint.NewHorizontalLine(line), nil

	case constraint.KindEquidistantPoints:
		if err := expect(rec, 4, 0); err != nil {
			return nil, err
		}
		pts, err := decodePoints(byID, rec.PrimitiveIDs)
		if err != nil {
			return nil, err
		}
		return constraint.NewEquidistantPoints(pts[0], pts[1], pts[2], pts[3]), nil

	case constraint.KindEuclideanDistance:
		if err := expect(rec, 2, 1); err != nil {
			return nil, err
		}
		pts, err := decodePoints(byID, rec.PrimitiveIDs)
		if err != nil {
			return nil, err
		}
		return constraint.NewEuclideanDistance(pts[0], pts[1], rec.Params[0]), nil

	case constraint.KindParallelLines:
		l1, l2, err := decodeTwoLines(byID, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewParallelLines(l1, l2), nil

	case constraint.KindPerpendicularLines:
		l1, l2, err := decodeTwoLines(byID, rec)
		if err != nil {
			return nil, err
		}
		return constraint.NewPerpendicularLines(l1, l2), nil

	case constraint.KindAngleBetweenPoints:
		if err := expect(rec, 3, 1); err != nil {
			return nil, err
		}
		pts, err := decodePoints(byID, rec.PrimitiveIDs)
		if err != nil {
			return nil, err
		}
		return constraint.NewAngleBetweenPoints(pts[0], pts[1], pts[2], rec.Params[0]), nil

	case constraint.KindArcEndPointCoincident:
		if err := expect(rec, 5, 0); err != nil {
			return nil, err
		}
		arc, err := decodeArc(byID, rec.PrimitiveIDs[0:4])
		if err != nil {
			return nil, err
		}
		p, err := lookupPoint(byID, rec.PrimitiveIDs[4])
		if err != nil {
			return nil, err
		}
		return constraint.NewArcEndPointCoincident(arc, p), nil

	default:
		return nil, chk.Err("persist: unknown constraint kind %v", rec.Kind)
	}
}

func expect(rec ConstraintRecord, numIDs, numParams int) error {
	if len(rec.PrimitiveIDs) != numIDs {
		return chk.Err("persist: %v record expected %d primitive ids, got %d", rec.Kind, numIDs, len(rec.PrimitiveIDs))
	}
	if len(rec.Params) != numParams {
		return chk.Err("persist: %v record expected %d params, got %d", rec.Kind, numParams, len(rec.Params))
	}
	return nil
}

func lineIDs(idOf func(primitive.Atomic) (int, error), l *primitive.Line) ([]int, error) {
	return pointIDs(idOf, l.Start, l.End)
}

func twoLineIDs(idOf func(primitive.Atomic) (int, error), l1, l2 *primitive.Line) ([]int, error) {
	a, err := lineIDs(idOf, l1)
	if err != nil {
		return nil, err
	}
	b, err := lineIDs(idOf, l2)
	if err != nil {
		return nil, err
	}
	return append(a, b...), nil
}

func arcIDs(idOf func(primitive.Atomic) (int, error), a *primitive.Arc) ([]int, error) {
	cx, err := idOf(a.Center)
	if err != nil {
		return nil, err
	}
	r, err := idOf(a.Radius)
	if err != nil {
		return nil, err
	}
	sa, err := idOf(a.StartAngle)
	if err != nil {
		return nil, err
	}
	ea, err := idOf(a.EndAngle)
	if err != nil {
		return nil, err
	}
	return []int{cx, r, sa, ea}, nil
}

func pointIDs(idOf func(primitive.Atomic) (int, error), pts ...*primitive.Point2) ([]int, error) {
	ids := make([]int, len(pts))
	for i, p := range pts {
		id, err := idOf(p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func decodePoints(byID map[int]primitive.Atomic, ids []int) ([]*primitive.Point2, error) {
	out := make([]*primitive.Point2, len(ids))
	for i, id := range ids {
		p, err := lookupPoint(byID, id)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func decodeLine(byID map[int]primitive.Atomic, rec ConstraintRecord, paramCount int) (*primitive.Line, error) {
	if err := expect(rec, 2, paramCount); err != nil {
		return nil, err
	}
	pts, err := decodePoints(byID, rec.PrimitiveIDs)
	if err != nil {
		return nil, err
	}
	return primitive.NewLine(pts[0], pts[1]), nil
}

func decodeTwoLines(byID map[int]primitive.Atomic, rec ConstraintRecord) (*primitive.Line, *primitive.Line, error) {
	if err := expect(rec, 4, 0); err != nil {
		return nil, nil, err
	}
	pts, err := decodePoints(byID, rec.PrimitiveIDs)
	if err != nil {
		return nil, nil, err
	}
	return primitive.NewLine(pts[0], pts[1]), primitive.NewLine(pts[2], pts[3]), nil
}

func decodeArc(byID map[int]primitive.Atomic, ids []int) (*primitive.Arc, error) {
	center, err := lookupPoint(byID, ids[0])
	if err != nil {
		return nil, err
	}
	radius, err := lookupScalar(byID, ids[1])
	if err != nil {
		return nil, err
	}
	start, err := lookupScalar(byID, ids[2])
	if err != nil {
		return nil, err
	}
	end, err := lookupScalar(byID, ids[3])
	if err != nil {
		return nil, err
	}
	return primitive.NewArc(center, radius, start, end), nil
}
