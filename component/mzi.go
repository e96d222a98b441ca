// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun/dbf"
)

// MachZehnderInterferometer is a 2x2 black-box Mach-Zehnder built from a
// balanced splitter/combiner pair with a differential phase theta between
// its arms, computed independently per polarization from an effective
// index difference over a path-length-equivalent L.
type MachZehnderInterferometer struct {
	*Base
	DNH, DNV float64 // effective index difference between arms, per polarization
	L        float64 // arm path length (meters)
}

// NewMachZehnderInterferometer builds an MZI whose per-polarization phase
// imbalance is theta = 2*pi*dn*L/lambda.
func NewMachZehnderInterferometer(name string, dnH, dnV, length float64) *MachZehnderInterferometer {
	return &MachZehnderInterferometer{Base: NewBase(name, 2, 2), DNH: dnH, DNV: dnV, L: length}
}

func (c *MachZehnderInterferometer) NumInputs() int  { return 2 }
func (c *MachZehnderInterferometer) NumOutputs() int { return 2 }

func (c *MachZehnderInterferometer) switchMatrix(theta float64) (through, cross complex128) {
	return complex(math.Cos(theta/2), 0), cmplx.Rect(1, math.Pi/2) * complex(math.Sin(theta/2), 0)
}

func (c *MachZehnderInterferometer) SMatrix(lambda float64) ([][]complex128, error) {
	thetaH := 2 * math.Pi * c.DNH * c.L / lambda
	thetaV := 2 * math.Pi * c.DNV * c.L / lambda
	throughH, crossH := c.switchMatrix(thetaH)
	throughV, crossV := c.switchMatrix(thetaV)
	s := NewDenseS(4)
	SetPerPol(s, 2, 0, throughH, throughV)
	SetPerPol(s, 2, 1, crossH, crossV)
	SetPerPol(s, 3, 0, crossH, crossV)
	SetPerPol(s, 3, 1, throughH, throughV)
	return s, nil
}

func (c *MachZehnderInterferometer) Clone() Component { return NewMachZehnderInterferometer(c.Name(), c.DNH, c.DNV, c.L) }

func init() {
	Register("MachZehnderInterferometer", func(name string, prms dbf.Params) (Component, error) {
		return NewMachZehnderInterferometer(name,
			findF64(prms, "dnH", 0),
			findF64(prms, "dnV", 0),
			findF64(prms, "length", 0),
		), nil
	})
}
