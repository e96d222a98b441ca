// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import "math/cmplx"

// RetarderJones returns the 2x2 Jones matrix of a linear retarder with
// fast axis at angle theta (radians, measured from H) and retardance
// delta (radians): M = R(-theta) . diag(1, e^{i*delta}) . R(theta).
func RetarderJones(theta, delta float64) [2][2]complex128 {
	c, s := cmplx.Cos(complex(theta, 0)), cmplx.Sin(complex(theta, 0))
	r := cmplx.Rect(1, delta)
	m00 := c*c + r*s*s
	m01 := c * s * (1 - r)
	m10 := m01
	m11 := s*s + r*c*c
	return [2][2]complex128{{m00, m01}, {m10, m11}}
}

// RotatorJones returns the 2x2 Jones matrix of a pure rotation by theta
// radians (fixed H<->V handling for polarization rotators).
func RotatorJones(theta float64) [2][2]complex128 {
	c, s := cmplx.Cos(complex(theta, 0)), cmplx.Sin(complex(theta, 0))
	return [2][2]complex128{{c, -s}, {s, c}}
}

// PolarizerJones returns the 2x2 Jones projector onto the axis at angle
// theta radians from H.
func PolarizerJones(theta float64) [2][2]complex128 {
	c, s := cmplx.Cos(complex(theta, 0)), cmplx.Sin(complex(theta, 0))
	return [2][2]complex128{{c * c, c * s}, {c * s, s * s}}
}
