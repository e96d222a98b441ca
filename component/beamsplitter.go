// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun/dbf"
)

// BeamSplitter is an ideal, wavelength-independent, polarization-agnostic
// 2x2 beam splitter: port 1,2 are inputs, port 3,4 are outputs. The cross
// paths (1->4, 2->3) carry a -pi/2 phase relative to the through paths.
type BeamSplitter struct {
	*Base
	// Ratio is the power split ratio of the through path, in [0,1]. 0.5 is
	// the conventional 50/50 splitter used throughout the test suite.
	Ratio float64
}

// NewBeamSplitter builds an ideal beam splitter. ratio is the through-path
// power fraction (0.5 for a balanced 50/50 splitter).
func NewBeamSplitter(name string, ratio float64) *BeamSplitter {
	return &BeamSplitter{Base: NewBase(name, 2, 2), Ratio: ratio}
}

func (c *BeamSplitter) NumInputs() int  { return 2 }
func (c *BeamSplitter) NumOutputs() int { return 2 }

func (c *BeamSplitter) SMatrix(_ float64) ([][]complex128, error) {
	s := NewDenseS(4)
	t := complex(math.Sqrt(c.Ratio), 0)
	r := complex(math.Sqrt(1-c.Ratio), 0) * cmplx.Exp(complex(0, -math.Pi/2))
	// ports: 0,1 = inputs; 2,3 = outputs (dense local indices)
	SetScalar(s, 2, 0, t) // in1 -> out3 (through)
	SetScalar(s, 2, 1, r) // in2 -> out3 (cross)
	SetScalar(s, 3, 0, r) // in1 -> out4 (cross)
	SetScalar(s, 3, 1, t) // in2 -> out4 (through)
	return s, nil
}

func (c *BeamSplitter) Clone() Component { return NewBeamSplitter(c.Name(), c.Ratio) }

func init() {
	Register("BeamSplitter", func(name string, prms dbf.Params) (Component, error) {
		return NewBeamSplitter(name, findF64(prms, "ratio", 0.5)), nil
	})
}
