// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_jones_stokes_roundtrip(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jones_stokes_roundtrip")

	cases := []Stokes{
		{S0: 1, S1: 1, S2: 0, S3: 0},  // H
		{S0: 1, S1: -1, S2: 0, S3: 0}, // V
		{S0: 1, S1: 0, S2: 1, S3: 0},  // diagonal
		{S0: 1, S1: 0, S2: 0, S3: 1},  // RHC
		{S0: 2, S1: 0.3, S2: 0.4, S3: math.Sqrt(4 - 0.09 - 0.16)},
	}
	tol := 1e-9
	for i, s := range cases {
		j := s.ToJones()
		back := j.ToStokes()
		chk.Vector(tst, io.Sf("S (case %d)", i), tol, []float64{back.S0, back.S1, back.S2, back.S3},
			[]float64{s.S0, s.S1, s.S2, s.S3})
	}
}

func Test_power_and_phase(tst *testing.T) {

	//verbose()
	chk.PrintTitle("power_and_phase")

	j := JonesVec{EH: complex(1, 0), EV: complex(0, 1)}
	chk.Scalar(tst, "|E_H|^2", 1e-12, j.PowerH(), 1)
	chk.Scalar(tst, "|E_V|^2", 1e-12, j.PowerV(), 1)
	chk.Scalar(tst, "relative phase", 1e-9, j.RelativePhase(), -math.Pi/2)
}

func Test_dop(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dop")

	s := Stokes{S0: 1, S1: 1, S2: 0, S3: 0}
	chk.Scalar(tst, "DOP (pure state)", 1e-12, s.DOP(), 1)

	s2 := Stokes{S0: 1, S1: 0, S2: 0, S3: 0}
	chk.Scalar(tst, "DOP (unpolarized)", 1e-12, s2.DOP(), 0)
}
