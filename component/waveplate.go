// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// HalfWavePlate is a fixed pi-retardance linear retarder with fast axis at
// angle psi, 1 input, 1 output.
type HalfWavePlate struct {
	*Base
	Psi float64
}

// NewHalfWavePlate builds an HWP with fast axis psi radians from H.
func NewHalfWavePlate(name string, psi float64) *HalfWavePlate {
	return &HalfWavePlate{Base: NewBase(name, 1, 1), Psi: psi}
}

func (c *HalfWavePlate) NumInputs() int  { return 1 }
func (c *HalfWavePlate) NumOutputs() int { return 1 }

func (c *HalfWavePlate) SMatrix(_ float64) ([][]complex128, error) {
	s := NewDenseS(2)
	SetJones2x2(s, 1, 0, RetarderJones(c.Psi, math.Pi))
	return s, nil
}

func (c *HalfWavePlate) Clone() Component { return NewHalfWavePlate(c.Name(), c.Psi) }

func init() {
	Register("HalfWavePlate", func(name string, prms dbf.Params) (Component, error) {
		return NewHalfWavePlate(name, findF64(prms, "psi", 0)), nil
	})
}

// QuarterWavePlate is a fixed pi/2-retardance linear retarder with fast
// axis at angle psi, 1 input, 1 output.
type QuarterWavePlate struct {
	*Base
	Psi float64
}

// NewQuarterWavePlate builds a QWP with fast axis psi radians from H.
func NewQuarterWavePlate(name string, psi float64) *QuarterWavePlate {
	return &QuarterWavePlate{Base: NewBase(name, 1, 1), Psi: psi}
}

func (c *QuarterWavePlate) NumInputs() int  { return 1 }
func (c *QuarterWavePlate) NumOutputs() int { return 1 }

func (c *QuarterWavePlate) SMatrix(_ float64) ([][]complex128, error) {
	s := NewDenseS(2)
	SetJones2x2(s, 1, 0, RetarderJones(c.Psi, math.Pi/2))
	return s, nil
}

func (c *QuarterWavePlate) Clone() Component { return NewQuarterWavePlate(c.Name(), c.Psi) }

func init() {
	Register("QuarterWavePlate", func(name string, prms dbf.Params) (Component, error) {
		return NewQuarterWavePlate(name, findF64(prms, "psi", 0)), nil
	})
}
