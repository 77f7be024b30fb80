// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gosketch/sketch2d/primitive"
)

// composite is the minimal capability ValidateAcyclic needs from a
// constraint reference: anything with transitive atomic References.
// primitive.Line, primitive.Arc and primitive.Circle all satisfy it.
type composite interface {
	References() []primitive.Atomic
}

// ValidateAcyclic walks every registered constraint's references and,
// for each one that is a composite, checks its underlying atomics
// against this sketch's registered set. The primitive library only
// nests one level deep (composites reference atomics, never other
// composites), so there is no transitive-cycle case to catch here; a
// composite referencing the same atomic twice (e.g. a degenerate Line
// whose start and end are the same Point2) is a legitimate
// configuration — its loss/gradient accumulate cumulatively per
// constraint — not an error. What this does catch is a composite
// naming an atomic this sketch never registered: such an atomic has no
// slot in Data/SetData/Gradient, so no solver ever moves it.
func (s *Sketch) ValidateAcyclic() error {
	for _, c := range s.constraints {
		for _, ref := range c.References() {
			comp, ok := ref.(composite)
			if !ok {
				continue
			}
			if err := s.checkCompositeRegistered(comp); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Sketch) checkCompositeRegistered(comp composite) error {
	for _, atom := range comp.References() {
		if _, ok := s.primIndex[atom]; !ok {
			return chk.Err("sketch: composite %T references an atomic never registered with this sketch", comp)
		}
	}
	return nil
}
