// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

// Multiply returns the matrix product a*b as a CSR, computed row-of-maps
// style: for every nonzero a[r][k], walk b's row k and accumulate into
// row r. S is block-diagonal and C has exactly 4 nonzeros per internal
// wire, so this stays cheap even though neither operand is ever
// materialized dense.
func Multiply(a, b *Triplet) *CSR {
	am, _ := a.Size()
	_, bn := b.Size()
	aCSR := a.ToCSR()
	bCSR := b.ToCSR()

	rows := make([]map[int]complex128, am)
	for r := 0; r < am; r++ {
		row := make(map[int]complex128)
		for k, av := range aCSR.rows[r] {
			for c, bv := range bCSR.rows[k] {
				row[c] += av * bv
			}
		}
		rows[r] = row
	}
	return &CSR{m: am, n: bn, rows: rows}
}

// MatVec returns a*x for triplet a and dense vector x.
func MatVec(a *Triplet, x []complex128) []complex128 {
	m, _ := a.Size()
	csr := a.ToCSR()
	out := make([]complex128, m)
	for r := 0; r < m; r++ {
		var sum complex128
		for c, v := range csr.rows[r] {
			sum += v * x[c]
		}
		out[r] = sum
	}
	return out
}

// IMinus returns the triplet (I - a), a square matrix the same size as a.
// Used to form the fixed-point system's (I - S*C) coefficient matrix from
// the S*C product.
func IMinus(a *CSR) *Triplet {
	m, n := a.Size()
	t := &Triplet{}
	t.Init(m, n, m+a.nnz())
	seen := make(map[int]bool, m)
	for r := 0; r < m; r++ {
		for c, v := range a.rows[r] {
			if c == r {
				t.Put(r, c, 1-v)
				seen[r] = true
			} else {
				t.Put(r, c, -v)
			}
		}
		if !seen[r] {
			t.Put(r, r, 1)
		}
	}
	return t
}

// nnz returns the number of distinct entries stored across all rows.
func (c *CSR) nnz() int {
	n := 0
	for _, row := range c.rows {
		n += len(row)
	}
	return n
}
