// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// Polarizer projects the incoming field onto a fixed axis (given as an
// angle, or as the literal H/V axis), discarding the orthogonal
// component. It is intentionally non-lossless (the projector is not
// unitary); the Passivity validator only checks ||S||2 <= 1.
type Polarizer struct {
	*Base
	ThetaRad float64
}

// NewPolarizer builds a polarizer transmitting the axis at thetaRad
// radians from H (0 = horizontal, pi/2 = vertical).
func NewPolarizer(name string, thetaRad float64) *Polarizer {
	return &Polarizer{Base: NewBase(name, 1, 1), ThetaRad: thetaRad}
}

// NewHorizontalPolarizer and NewVerticalPolarizer are the H/V literal forms.
func NewHorizontalPolarizer(name string) *Polarizer { return NewPolarizer(name, 0) }
func NewVerticalPolarizer(name string) *Polarizer   { return NewPolarizer(name, math.Pi/2) }

func (c *Polarizer) NumInputs() int  { return 1 }
func (c *Polarizer) NumOutputs() int { return 1 }

func (c *Polarizer) SMatrix(_ float64) ([][]complex128, error) {
	s := NewDenseS(2)
	SetJones2x2(s, 1, 0, PolarizerJones(c.ThetaRad))
	return s, nil
}

func (c *Polarizer) Clone() Component { return NewPolarizer(c.Name(), c.ThetaRad) }

func init() {
	Register("Polarizer", func(name string, prms dbf.Params) (Component, error) {
		return NewPolarizer(name, findF64(prms, "thetaRad", 0)), nil
	})
}
