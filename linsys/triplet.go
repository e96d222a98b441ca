// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsys assembles and solves the global (I - S*C)*b = S*a_ext
// scattering system: a complex-valued sparse-triplet accumulator mirroring
// gosl's la.Triplet, and a dense/sparse solve pair that hands the actual
// factorization off to gosl/la's complex facilities (la.DenSolveC for the
// dense path, la.TripletC/la.GetSolverC's complex UMFPACK for the sparse
// path) the same way the teacher drives la.Triplet/la.LinSol for its own
// real-valued systems. Select picks between them from matrix shape (see
// DESIGN.md).
package linsys

// Triplet is a COO (row, col, value) accumulator for a complex sparse
// matrix, the complex analogue of gosl's la.Triplet: entries are appended
// with Put and duplicate (row,col) pairs accumulate by addition, matching
// la.Triplet's semantics and the needs of block-diagonal S/connectivity
// C assembly (a handful of components can each contribute to the same
// cell only if the caller double-adds, which assembly here never does).
type Triplet struct {
	m, n     int
	i, j     []int
	x        []complex128
	max      int
}

// Init allocates a triplet for an m x n matrix with room for up to
// maxEntries nonzeros.
func (t *Triplet) Init(m, n, maxEntries int) {
	t.m, t.n = m, n
	t.max = maxEntries
	t.i = make([]int, 0, maxEntries)
	t.j = make([]int, 0, maxEntries)
	t.x = make([]complex128, 0, maxEntries)
}

// Put appends one (row, col, value) entry.
func (t *Triplet) Put(row, col int, value complex128) {
	t.i = append(t.i, row)
	t.j = append(t.j, col)
	t.x = append(t.x, value)
}

// Size returns the matrix dimensions.
func (t *Triplet) Size() (m, n int) { return t.m, t.n }

// Len returns the number of entries appended so far (duplicates included).
func (t *Triplet) Len() int { return len(t.x) }

// ToDense materializes the triplet into a dense row-major matrix, summing
// duplicate entries.
func (t *Triplet) ToDense() [][]complex128 {
	d := make([][]complex128, t.m)
	for r := range d {
		d[r] = make([]complex128, t.n)
	}
	for k := range t.x {
		d[t.i[k]][t.j[k]] += t.x[k]
	}
	return d
}

// ToCSR compacts the triplet into compressed-sparse-row form, summing
// duplicate (row,col) entries, for the sparse products in matop.go
// (Multiply, MatVec, IMinus).
func (t *Triplet) ToCSR() *CSR {
	rows := make([]map[int]complex128, t.m)
	for r := range rows {
		rows[r] = make(map[int]complex128)
	}
	for k := range t.x {
		rows[t.i[k]][t.j[k]] += t.x[k]
	}
	return &CSR{m: t.m, n: t.n, rows: rows}
}

// NNZ returns the number of distinct (row,col) entries (post-dedup),
// the count the dense/sparse crossover heuristic is defined against.
func (t *Triplet) NNZ() int {
	seen := make(map[[2]int]bool, len(t.x))
	for k := range t.x {
		seen[[2]int{t.i[k], t.j[k]}] = true
	}
	return len(seen)
}

// CSR is a row-of-maps sparse matrix used by the products in matop.go: it
// never materializes the O(n^2) dense array and skips structural zeros.
// The sparse solve in sparse.go reads the Triplet directly, not a CSR.
type CSR struct {
	m, n int
	rows []map[int]complex128
}

// Size returns the matrix dimensions.
func (c *CSR) Size() (m, n int) { return c.m, c.n }
