// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// PolarizationBeamSplitter routes H to one output and V to the other
// (port1->port3 transmits H / reflects V to port4; port2 is the
// complementary input), with a finite extinction ratio and insertion loss.
type PolarizationBeamSplitter struct {
	*Base
	ERdB  float64 // extinction ratio in dB; Inf/large => ideal
	ILdB  float64 // insertion loss in dB
	Ideal bool    // if true, extinction leakage is forced to zero
}

// NewPolarizationBeamSplitter builds a PBS with the given extinction ratio
// (dB) and insertion loss (dB). ideal forces zero leakage regardless of erDB.
func NewPolarizationBeamSplitter(name string, erDB, ilDB float64, ideal bool) *PolarizationBeamSplitter {
	return &PolarizationBeamSplitter{Base: NewBase(name, 2, 2), ERdB: erDB, ILdB: ilDB, Ideal: ideal}
}

func (c *PolarizationBeamSplitter) NumInputs() int  { return 2 }
func (c *PolarizationBeamSplitter) NumOutputs() int { return 2 }

func (c *PolarizationBeamSplitter) SMatrix(_ float64) ([][]complex128, error) {
	alpha := math.Pow(10, -c.ILdB/20)
	leak := 0.0
	if !c.Ideal {
		leak = math.Pow(10, -c.ERdB/20)
	}
	pass := math.Sqrt(math.Max(0, 1-leak*leak))
	s := NewDenseS(4)
	// port1 (in0): H transmits to port3 (out2), V reflects to port4 (out3)
	SetPerPol(s, 2, 0, complex(alpha*pass, 0), complex(alpha*leak, 0))
	SetPerPol(s, 3, 0, complex(alpha*leak, 0), complex(alpha*pass, 0))
	// port2 (in1): H transmits to port4 (out3), V reflects to port3 (out2)
	SetPerPol(s, 3, 1, complex(alpha*pass, 0), complex(alpha*leak, 0))
	SetPerPol(s, 2, 1, complex(alpha*leak, 0), complex(alpha*pass, 0))
	return s, nil
}

func (c *PolarizationBeamSplitter) Clone() Component { return NewPolarizationBeamSplitter(c.Name(), c.ERdB, c.ILdB, c.Ideal) }

func init() {
	Register("PolarizationBeamSplitter", func(name string, prms dbf.Params) (Component, error) {
		ideal := findF64(prms, "ideal", 0) != 0
		return NewPolarizationBeamSplitter(name,
			findF64(prms, "erDB", 30),
			findF64(prms, "ilDB", 0),
			ideal,
		), nil
	})
}
