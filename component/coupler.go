// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun/dbf"
)

// Coupler is a directional coupler whose through coefficient tau carries a
// linear dispersion term (clamped to [0,1]); the cross-coupling
// coefficient kappa = sqrt(1 - tau^2) follows from it. A scalar insertion
// loss scales both.
type Coupler struct {
	*Base
	Tau0, DTauDLambda float64 // tau(lambda) = Tau0 + DTauDLambda*(lambda-Lambda0)
	Lambda0           float64
	ILdB              float64 // insertion loss in dB
}

// NewCoupler builds a directional coupler. tau0 is the through-path field
// coefficient at lambda0 (meters); dTauDLambda is its linear dispersion
// slope (1/meter); ilDB is the scalar insertion loss in dB.
func NewCoupler(name string, tau0, dTauDLambda, lambda0, ilDB float64) *Coupler {
	return &Coupler{Base: NewBase(name, 2, 2), Tau0: tau0, DTauDLambda: dTauDLambda, Lambda0: lambda0, ILdB: ilDB}
}

func (c *Coupler) NumInputs() int  { return 2 }
func (c *Coupler) NumOutputs() int { return 2 }

func (c *Coupler) SMatrix(lambda float64) ([][]complex128, error) {
	tau := c.Tau0 + c.DTauDLambda*(lambda-c.Lambda0)
	tau = math.Max(0, math.Min(1, tau))
	kappa := math.Sqrt(math.Max(0, 1-tau*tau))
	alpha := math.Pow(10, -c.ILdB/20)
	t := complex(alpha*tau, 0)
	k := complex(alpha*kappa, 0) * cmplx.Exp(complex(0, -math.Pi/2))
	s := NewDenseS(4)
	SetScalar(s, 2, 0, t)
	SetScalar(s, 2, 1, k)
	SetScalar(s, 3, 0, k)
	SetScalar(s, 3, 1, t)
	return s, nil
}

func (c *Coupler) Clone() Component { return NewCoupler(c.Name(), c.Tau0, c.DTauDLambda, c.Lambda0, c.ILdB) }

func init() {
	Register("Coupler", func(name string, prms dbf.Params) (Component, error) {
		return NewCoupler(name,
			findF64(prms, "tau0", 1/math.Sqrt2),
			findF64(prms, "dTauDLambda", 0),
			findF64(prms, "lambda0", 1550e-9),
			findF64(prms, "ilDB", 0),
		), nil
	})
}
