// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laser

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/photonlab/gofem-optics/field"
)

func Test_monochromatic_is_time_invariant(tst *testing.T) {

	//verbose()
	chk.PrintTitle("monochromatic_is_time_invariant")

	l := Monochromatic(field.JonesVec{EH: 1, EV: 2i}, 1550e-9)
	s1, err := l.Sample(0)
	if err != nil {
		tst.Fatalf("sample at t=0: %v", err)
	}
	s2, err := l.Sample(1e9)
	if err != nil {
		tst.Fatalf("sample at t=1e9: %v", err)
	}
	chk.Scalar(tst, "wavelength @ t=0", 1e-18, s1.Wavelength, 1550e-9)
	chk.Scalar(tst, "wavelength @ t=1e9", 1e-18, s2.Wavelength, 1550e-9)
	chk.Vector(tst, "E @ t=0", 1e-15, []float64{real(s1.Field.EH), imag(s1.Field.EH), real(s1.Field.EV), imag(s1.Field.EV)},
		[]float64{1, 0, 0, 2})
	chk.Vector(tst, "E @ t=1e9", 1e-15, []float64{real(s2.Field.EH), imag(s2.Field.EH), real(s2.Field.EV), imag(s2.Field.EV)},
		[]float64{1, 0, 0, 2})
}

func Test_func_adapter(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func_adapter")

	calls := 0
	var l Laser = Func(func(t float64) (Sample, error) {
		calls++
		return Sample{Field: field.JonesVec{EH: complex(t, 0)}, Wavelength: 1310e-9}, nil
	})
	s, err := l.Sample(3.5)
	if err != nil {
		tst.Fatalf("sample: %v", err)
	}
	chk.IntAssert(calls, 1)
	chk.Scalar(tst, "Re(E_H) @ t=3.5", 1e-15, real(s.Field.EH), 3.5)
}
