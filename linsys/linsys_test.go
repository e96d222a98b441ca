// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/photonlab/gofem-optics/errkind"
)

func Test_select_crossover(tst *testing.T) {

	//verbose()
	chk.PrintTitle("select_crossover")

	chk.IntAssert(int(Select(500, 500*500)), int(Dense))
	chk.IntAssert(int(Select(2000, int(0.01*2000*2000))), int(Sparse))
	chk.IntAssert(int(Select(900, 900*900)), int(Dense))
	chk.IntAssert(int(Select(2000, int(0.5*2000*2000))), int(Dense))
}

func buildSystem() (*Triplet, []complex128) {
	// [[2,1],[1,3]] x = [5, 10] -> x = [1, 3]
	t := &Triplet{}
	t.Init(2, 2, 4)
	t.Put(0, 0, 2)
	t.Put(0, 1, 1)
	t.Put(1, 0, 1)
	t.Put(1, 1, 3)
	return t, []complex128{5, 10}
}

func complexResidual(x, want []complex128) []float64 {
	r := make([]float64, len(x))
	for i := range x {
		r[i] = cmplx.Abs(x[i] - want[i])
	}
	return r
}

func Test_dense_solve(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dense_solve")

	t, b := buildSystem()
	x, err := (DenseSolver{}).Solve(t, b)
	if err != nil {
		tst.Fatalf("solve: %v", err)
	}
	chk.Vector(tst, "|x - want|", 1e-9, complexResidual(x, []complex128{1, 3}), []float64{0, 0})
}

func Test_sparse_solve_matches_dense(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse_solve_matches_dense")

	t, b := buildSystem()
	xd, err := (DenseSolver{}).Solve(t, b)
	if err != nil {
		tst.Fatalf("dense solve: %v", err)
	}
	t2, b2 := buildSystem()
	xs, err := (SparseSolver{}).Solve(t2, b2)
	if err != nil {
		tst.Fatalf("sparse solve: %v", err)
	}
	chk.Vector(tst, "|dense - sparse|", 1e-9, complexResidual(xd, xs), make([]float64, len(xd)))
}

func Test_singular_system_detected(tst *testing.T) {

	//verbose()
	chk.PrintTitle("singular_system_detected")

	tp := &Triplet{}
	tp.Init(2, 2, 4)
	tp.Put(0, 0, 1)
	tp.Put(0, 1, 1)
	tp.Put(1, 0, 1)
	tp.Put(1, 1, 1)
	_, err := (DenseSolver{}).Solve(tp, []complex128{1, 1})
	if k, ok := errkind.Of(err); !ok || k != errkind.SingularSystem {
		tst.Fatalf("expected SingularSystem, got %v", err)
	}
}

func Test_complex_coefficients_solve(tst *testing.T) {

	//verbose()
	chk.PrintTitle("complex_coefficients_solve")

	tp := &Triplet{}
	tp.Init(2, 2, 4)
	tp.Put(0, 0, complex(1, 1))
	tp.Put(0, 1, 0)
	tp.Put(1, 0, 0)
	tp.Put(1, 1, complex(0, 2))
	x, err := (DenseSolver{}).Solve(tp, []complex128{complex(1, 1), complex(0, 2)})
	if err != nil {
		tst.Fatalf("solve: %v", err)
	}
	chk.Vector(tst, "|x - want|", 1e-9, complexResidual(x, []complex128{1, 1}), []float64{0, 0})
}
