// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gosketch/sketch2d/primitive"
)

// checkGradient is the gradient self-check scaffolding required by
// spec §4.2/§8: zero every atom's gradient, call update (which should
// invoke the constraint's UpdateGradient), then compare the resulting
// analytic gradient against a central-difference approximation of
// lossFn for every parameter of every atom.
func checkGradient(t *testing.T, atoms []primitive.Atomic, lossFn func() float64, update func()) {
	t.Helper()
	const h = 1e-6
	const tol = 1e-5

	for _, a := range atoms {
		a.ZeroGradient()
	}
	update()

	for ai, a := range atoms {
		orig := append([]float64(nil), a.Data()...)
		for i := range orig {
			x := append([]float64(nil), orig...)
			x[i] = orig[i] + h
			_ = a.SetData(x)
			plus := lossFn()

			x[i] = orig[i] - h
			_ = a.SetData(x)
			minus := lossFn()

			_ = a.SetData(orig)

			numeric := (plus - minus) / (2 * h)
			analytic := a.Gradient()[i]
			chk.Scalar(t, "d(loss)/d(atom)", tol, analytic, numeric)
			_ = ai
		}
	}
}
