// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun/dbf"
)

// PhaseShifter is a birefringent 1-in/1-out length of waveguide with
// independent effective index (and its dispersion) and field loss per
// polarization.
type PhaseShifter struct {
	*Base
	Length              float64 // meters
	NH, NV              float64 // effective index at Lambda0
	DNHDLambda, DNVDLambda float64
	Lambda0             float64
	LossHdBPerM, LossVdBPerM float64
}

// NewPhaseShifter builds a phase shifter of the given length with
// per-polarization effective index nH,nV (and dispersion slopes) evaluated
// about lambda0, and per-polarization propagation loss in dB/m.
func NewPhaseShifter(name string, length, nH, nV, dnHdLambda, dnVdLambda, lambda0, lossHdBPerM, lossVdBPerM float64) *PhaseShifter {
	return &PhaseShifter{
		Base: NewBase(name, 1, 1), Length: length, NH: nH, NV: nV,
		DNHDLambda: dnHdLambda, DNVDLambda: dnVdLambda, Lambda0: lambda0,
		LossHdBPerM: lossHdBPerM, LossVdBPerM: lossVdBPerM,
	}
}

func (c *PhaseShifter) NumInputs() int  { return 1 }
func (c *PhaseShifter) NumOutputs() int { return 1 }

func (c *PhaseShifter) SMatrix(lambda float64) ([][]complex128, error) {
	nH := c.NH + c.DNHDLambda*(lambda-c.Lambda0)
	nV := c.NV + c.DNVDLambda*(lambda-c.Lambda0)
	phaseH := -2 * math.Pi * nH * c.Length / lambda
	phaseV := -2 * math.Pi * nV * c.Length / lambda
	attnH := math.Pow(10, -c.LossHdBPerM*c.Length/20)
	attnV := math.Pow(10, -c.LossVdBPerM*c.Length/20)
	coeffH := complex(attnH, 0) * cmplx.Exp(complex(0, phaseH))
	coeffV := complex(attnV, 0) * cmplx.Exp(complex(0, phaseV))
	s := NewDenseS(2)
	SetPerPol(s, 1, 0, coeffH, coeffV)
	return s, nil
}

func (c *PhaseShifter) Clone() Component { return NewPhaseShifter(c.Name(), c.Length, c.NH, c.NV, c.DNHDLambda, c.DNVDLambda, c.Lambda0, c.LossHdBPerM, c.LossVdBPerM) }

func init() {
	Register("PhaseShifter", func(name string, prms dbf.Params) (Component, error) {
		return NewPhaseShifter(name,
			findF64(prms, "length", 0),
			findF64(prms, "nH", 1.5),
			findF64(prms, "nV", 1.5),
			findF64(prms, "dnHdLambda", 0),
			findF64(prms, "dnVdLambda", 0),
			findF64(prms, "lambda0", 1550e-9),
			findF64(prms, "lossHdBPerM", 0),
			findF64(prms, "lossVdBPerM", 0),
		), nil
	})
}
