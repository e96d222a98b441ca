// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

// Kind selects which solve path Select chose for a given system.
type Kind int

const (
	Dense Kind = iota
	Sparse
)

func (k Kind) String() string {
	if k == Dense {
		return "dense"
	}
	return "sparse"
}

const (
	denseCrossoverN  = 1000
	footprintCeiling = 8 << 30 // 8 GiB, a hard switch per run, not an allocation budget
	densityFloor     = 0.02
	bytesPerComplex  = 16
)

// Select picks dense vs sparse for an n x n system with nnz structural
// nonzeros, mirroring gofem's la.GetSolver name-driven dispatch but decided
// from matrix shape instead of a config string:
//
//   - n < 1000: dense (sparse bookkeeping overhead outweighs any saving).
//   - dense footprint (n^2 * 16 bytes) > 8 GiB: sparse, unconditionally.
//   - nnz/n^2 < 0.02: sparse.
//   - otherwise: dense.
func Select(n, nnz int) Kind {
	if n < denseCrossoverN {
		return Dense
	}
	footprint := uint64(n) * uint64(n) * bytesPerComplex
	if footprint > footprintCeiling {
		return Sparse
	}
	density := float64(nnz) / (float64(n) * float64(n))
	if density < densityFloor {
		return Sparse
	}
	return Dense
}

// Solver solves A*x = b for a system assembled as a Triplet, the common
// interface DenseSolver and SparseSolver implement so the scheduler can
// pick one via Select without caring which it got. Both implementations
// delegate the actual factorization to gosl/la's complex solvers.
type Solver interface {
	Solve(t *Triplet, b []complex128) ([]complex128, error)
}

// solverFor returns the Solver Select would pick for a system of the given
// shape, so callers that already know n and nnz (the assembler does) can
// skip a second inspection pass over the triplet.
func solverFor(kind Kind) Solver {
	if kind == Dense {
		return DenseSolver{}
	}
	return SparseSolver{}
}

// Solve assembles t's shape, decides dense vs sparse via Select, and solves
// A*x = b, returning which path was used alongside the solution.
func Solve(t *Triplet, b []complex128) ([]complex128, Kind, error) {
	n, _ := t.Size()
	kind := Select(n, t.NNZ())
	x, err := solverFor(kind).Solve(t, b)
	return x, kind, err
}
