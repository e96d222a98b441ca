// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_multiply_and_matvec(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multiply_and_matvec")

	a := &Triplet{}
	a.Init(2, 2, 4)
	a.Put(0, 0, 1)
	a.Put(0, 1, 2)
	a.Put(1, 0, 3)
	a.Put(1, 1, 4)

	b := &Triplet{}
	b.Init(2, 2, 4)
	b.Put(0, 0, 5)
	b.Put(1, 1, 6)

	csr := Multiply(a, b)
	dense := csr.ToDense()
	chk.Vector(tst, "|row 0 - want|", 1e-9, complexResidual(dense[0], []complex128{5, 12}), []float64{0, 0})
	chk.Vector(tst, "|row 1 - want|", 1e-9, complexResidual(dense[1], []complex128{15, 24}), []float64{0, 0})

	v := MatVec(a, []complex128{1, 1})
	chk.Vector(tst, "|matvec - want|", 1e-9, complexResidual(v, []complex128{3, 7}), []float64{0, 0})
}

func Test_iminus_fills_missing_diagonal(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iminus_fills_missing_diagonal")

	a := &Triplet{}
	a.Init(2, 2, 2)
	a.Put(0, 1, 2)

	m := IMinus(a.ToCSR())
	dense := m.ToDense()
	chk.Vector(tst, "|row 0 - want|", 1e-9, complexResidual(dense[0], []complex128{1, -2}), []float64{0, 0})
	chk.Vector(tst, "|row 1 - want|", 1e-9, complexResidual(dense[1], []complex128{0, 1}), []float64{0, 0})
}

// (CSR).ToDense is only needed by this test file, kept local rather than
// widening the CSR type's exported surface for production code that never
// needs it.
func (c *CSR) ToDense() [][]complex128 {
	d := make([][]complex128, c.m)
	for r := range d {
		d[r] = make([]complex128, c.n)
		for col, v := range c.rows[r] {
			d[r][col] = v
		}
	}
	return d
}
