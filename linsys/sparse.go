// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

import (
	"github.com/cpmech/gosl/la"

	"github.com/photonlab/gofem-optics/errkind"
)

// SparseSolver solves A*x = b through gosl/la's complex sparse solver
// (complex UMFPACK), the same la.LinSol/la.GetSolver path the teacher
// drives for its real-valued systems (InitR/Fact/SolveR), here taken
// through its complex counterpart so the scattering system's complex
// coefficients never need splitting into a real/imaginary block system.
type SparseSolver struct{}

// Solve implements Solver.
func (SparseSolver) Solve(t *Triplet, b []complex128) ([]complex128, error) {
	n, _ := t.Size()
	tc := new(la.TripletC)
	tc.Init(n, n, t.Len())
	for k := range t.x {
		tc.Put(t.i[k], t.j[k], t.x[k])
	}

	sol := la.GetSolverC("umfpack")
	defer sol.Free()

	if err := sol.InitC(tc, false, false, false); err != nil {
		return nil, errkind.New(errkind.SingularSystem, "linsys: sparse solver init failed: %v", err)
	}
	if err := sol.Fact(); err != nil {
		return nil, errkind.New(errkind.SingularSystem, "linsys: sparse solve hit a singular factorization: %v", err)
	}

	x := make([]complex128, n)
	rhs := append([]complex128(nil), b...)
	if err := sol.SolveC(x, rhs, false); err != nil {
		return nil, errkind.New(errkind.SingularSystem, "linsys: sparse solve failed: %v", err)
	}
	return x, nil
}
