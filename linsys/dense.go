// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

import (
	"github.com/cpmech/gosl/la"

	"github.com/photonlab/gofem-optics/errkind"
)

// DenseSolver solves A*x = b by materializing A as a dense complex matrix
// and delegating the factorization and solve to gosl/la's complex dense
// solver, the same role la.MatInv/la.DenSolveC plays for the teacher's
// real-valued dense systems.
type DenseSolver struct{}

// Solve implements Solver.
func (DenseSolver) Solve(t *Triplet, b []complex128) ([]complex128, error) {
	a := t.ToDense()
	n := len(a)
	x := make([]complex128, n)
	rhs := append([]complex128(nil), b...)
	if err := la.DenSolveC(x, a, rhs); err != nil {
		return nil, errkind.New(errkind.SingularSystem, "linsys: dense solve failed: %v", err)
	}
	return x, nil
}
