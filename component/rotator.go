// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// PolarizationRotator is a fixed, reciprocal H<->V swap (E_H and E_V are
// exchanged), 1 input, 1 output.
type PolarizationRotator struct{ *Base }

// NewPolarizationRotator builds a fixed H<->V swap.
func NewPolarizationRotator(name string) *PolarizationRotator {
	return &PolarizationRotator{Base: NewBase(name, 1, 1)}
}

func (c *PolarizationRotator) NumInputs() int  { return 1 }
func (c *PolarizationRotator) NumOutputs() int { return 1 }

func (c *PolarizationRotator) SMatrix(_ float64) ([][]complex128, error) {
	s := NewDenseS(2)
	SetJones2x2(s, 1, 0, [2][2]complex128{{0, 1}, {1, 0}})
	return s, nil
}

func (c *PolarizationRotator) Clone() Component { return NewPolarizationRotator(c.Name()) }

func init() {
	Register("PolarizationRotator", func(name string, prms dbf.Params) (Component, error) {
		return NewPolarizationRotator(name), nil
	})
}

// FaradayRotator is a non-reciprocal rotator by a fixed angle: unlike a
// natural-activity rotator, its Jones matrix is the SAME rotation
// regardless of propagation direction, which is what makes it useful as an
// isolator building block. Modeled here as a 1-in/1-out device; a caller
// wanting the non-reciprocal (direction-dependent) behavior wires two
// FaradayRotator instances back to back with the assembler's fixed port
// orientation, since the solver itself has no notion of propagation
// direction beyond the input/output port split.
type FaradayRotator struct {
	*Base
	ThetaRad float64
}

// NewFaradayRotator builds a Faraday rotator with the given rotation angle
// in radians.
func NewFaradayRotator(name string, thetaRad float64) *FaradayRotator {
	return &FaradayRotator{Base: NewBase(name, 1, 1), ThetaRad: thetaRad}
}

func (c *FaradayRotator) NumInputs() int  { return 1 }
func (c *FaradayRotator) NumOutputs() int { return 1 }

func (c *FaradayRotator) SMatrix(_ float64) ([][]complex128, error) {
	s := NewDenseS(2)
	SetJones2x2(s, 1, 0, RotatorJones(c.ThetaRad))
	return s, nil
}

func (c *FaradayRotator) Clone() Component { return NewFaradayRotator(c.Name(), c.ThetaRad) }

func init() {
	Register("FaradayRotator", func(name string, prms dbf.Params) (Component, error) {
		return NewFaradayRotator(name, findF64(prms, "thetaRad", math.Pi/4)), nil
	})
}
