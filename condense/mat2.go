// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package condense implements the chain-discovery and Redheffer star-product
// fusion pass that replaces maximal runs of 1-in/1-out components between
// anchors with a single CondensedComponent, shrinking the global linear
// system the solver assembles.
package condense

import "github.com/photonlab/gofem-optics/errkind"

// mat2 is a 2x2 complex block, one polarization-coupling submatrix of a
// 1-in/1-out component's 4x4 scattering matrix.
type mat2 [2][2]complex128

func identity2() mat2 { return mat2{{1, 0}, {0, 1}} }

func (a mat2) mul(b mat2) mat2 {
	return mat2{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

func (a mat2) sub(b mat2) mat2 {
	return mat2{
		{a[0][0] - b[0][0], a[0][1] - b[0][1]},
		{a[1][0] - b[1][0], a[1][1] - b[1][1]},
	}
}

func (a mat2) add(b mat2) mat2 {
	return mat2{
		{a[0][0] + b[0][0], a[0][1] + b[0][1]},
		{a[1][0] + b[1][0], a[1][1] + b[1][1]},
	}
}

// inverse returns a's inverse, failing with IllConditionedChain if a is
// numerically singular (the usual signature of an internal resonance — an
// exact round trip of unit reflectivity — inside the chain being fused).
func (a mat2) inverse() (mat2, error) {
	det := a[0][0]*a[1][1] - a[0][1]*a[1][0]
	if absC2(det) < 1e-24 {
		return mat2{}, errkind.New(errkind.IllConditionedChain, "condense: singular interior while folding chain (det=%v)", det)
	}
	inv := 1 / det
	return mat2{
		{a[1][1] * inv, -a[0][1] * inv},
		{-a[1][0] * inv, a[0][0] * inv},
	}, nil
}

// absC2 is the squared magnitude of c, cheaper than cmplx.Abs for a
// threshold comparison.
func absC2(c complex128) float64 {
	re, im := real(c), imag(c)
	return re*re + im*im
}
