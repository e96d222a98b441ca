// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the scalar and vector data types that carry
// optical amplitude through the circuit solver: Jones vectors for coherent,
// fully-polarized light and Stokes vectors for (possibly partially
// polarized) intensity-level light, plus the conversions between them.
//
// All phase follows the engineering convention field ~ exp(i(ωt - kz)).
package field

import (
	"math"
	"math/cmplx"
)

// JonesVec is the complex amplitude pair (E_H, E_V) of coherent,
// monochromatic light in the horizontal/vertical polarization basis.
type JonesVec struct {
	EH, EV complex128
}

// Stokes is the real 4-tuple (S0, S1, S2, S3) describing light intensity
// and polarization, valid for partially polarized light as well.
type Stokes struct {
	S0, S1, S2, S3 float64
}

// Power returns |E_H|^2 + |E_V|^2.
func (j JonesVec) Power() float64 {
	return real(j.EH)*real(j.EH) + imag(j.EH)*imag(j.EH) +
		real(j.EV)*real(j.EV) + imag(j.EV)*imag(j.EV)
}

// PowerH returns |E_H|^2.
func (j JonesVec) PowerH() float64 { return cmplx.Abs(j.EH) * cmplx.Abs(j.EH) }

// PowerV returns |E_V|^2.
func (j JonesVec) PowerV() float64 { return cmplx.Abs(j.EV) * cmplx.Abs(j.EV) }

// PhaseH returns arg(E_H).
func (j JonesVec) PhaseH() float64 { return cmplx.Phase(j.EH) }

// PhaseV returns arg(E_V).
func (j JonesVec) PhaseV() float64 { return cmplx.Phase(j.EV) }

// RelativePhase returns arg(E_H) - arg(E_V).
func (j JonesVec) RelativePhase() float64 { return j.PhaseH() - j.PhaseV() }

// Scale multiplies both components by a complex factor.
func (j JonesVec) Scale(c complex128) JonesVec {
	return JonesVec{EH: j.EH * c, EV: j.EV * c}
}

// Add returns the coherent (field-level) sum of two Jones vectors.
func (j JonesVec) Add(o JonesVec) JonesVec {
	return JonesVec{EH: j.EH + o.EH, EV: j.EV + o.EV}
}

// ToStokes converts a fully coherent Jones vector to its Stokes
// representation (DOP = 1 by construction).
func (j JonesVec) ToStokes() Stokes {
	ah2 := j.PowerH()
	av2 := j.PowerV()
	cross := j.EH * cmplx.Conj(j.EV)
	return Stokes{
		S0: ah2 + av2,
		S1: ah2 - av2,
		S2: 2 * real(cross),
		S3: -2 * imag(cross), // RHC (V leads H) => positive S3, IEEE convention
	}
}

// ToJones converts a Stokes vector to a representative Jones vector, valid
// for fully polarized light (S0^2 = S1^2+S2^2+S3^2). The absolute phase φ0
// is a free gauge choice and is taken as 0.
func (s Stokes) ToJones() JonesVec {
	ax := math.Sqrt(math.Max(0, (s.S0+s.S1)/2))
	ay := math.Sqrt(math.Max(0, (s.S0-s.S1)/2))
	phi := math.Atan2(s.S3, s.S2)
	const phi0 = 0
	return JonesVec{
		EH: complex(ax, 0) * cmplx.Rect(1, phi0),
		EV: complex(ay, 0) * cmplx.Rect(1, phi0+phi),
	}
}

// DOP returns the degree of polarization sqrt(S1^2+S2^2+S3^2)/S0.
func (s Stokes) DOP() float64 {
	if s.S0 <= 0 {
		return 0
	}
	return math.Sqrt(s.S1*s.S1+s.S2*s.S2+s.S3*s.S3) / s.S0
}
