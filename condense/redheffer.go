// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condense

import "github.com/photonlab/gofem-optics/component"

// blocks4 decomposes a 1-in/1-out component's dense 4x4 scattering matrix
// (rows/cols 0-1 = input H/V, 2-3 = output H/V) into its four 2x2
// polarization blocks: ii (input reflection), io (reverse transmission),
// oi (forward transmission), oo (output reflection).
func blocks4(s [][]complex128) (ii, io, oi, oo mat2) {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			ii[r][c] = s[r][c]
			io[r][c] = s[r][c+2]
			oi[r][c] = s[r+2][c]
			oo[r][c] = s[r+2][c+2]
		}
	}
	return
}

// assemble4 is the inverse of blocks4: it rebuilds a dense 4x4 matrix from
// the four 2x2 blocks of a fused 1-in/1-out device.
func assemble4(ii, io, oi, oo mat2) [][]complex128 {
	s := component.NewDenseS(2)
	component.SetJones2x2(s, 0, 0, ii)
	component.SetJones2x2(s, 0, 1, io)
	component.SetJones2x2(s, 1, 0, oi)
	component.SetJones2x2(s, 1, 1, oo)
	return s
}

// star combines two 1-in/1-out devices A then B (A's output wired to B's
// input) into a single 1-in/1-out device via the Redheffer star product,
// properly accounting for the internal multiple reflections between them.
func star(a, b [][]complex128) ([][]complex128, error) {
	aII, aIO, aOI, aOO := blocks4(a)
	bII, bIO, bOI, bOO := blocks4(b)

	d1, err := identity2().sub(bII.mul(aOO)).inverse()
	if err != nil {
		return nil, err
	}
	d2, err := identity2().sub(aOO.mul(bII)).inverse()
	if err != nil {
		return nil, err
	}

	cII := aII.add(aIO.mul(d1).mul(bII).mul(aOI))
	cIO := aIO.mul(d1).mul(bIO)
	cOI := bOI.mul(d2).mul(aOI)
	cOO := bOO.add(bOI.mul(d2).mul(aOO).mul(bIO))

	return assemble4(cII, cIO, cOI, cOO), nil
}

// Fold reduces an ordered chain of 1-in/1-out components into a single
// dense 4x4 scattering matrix at the given wavelength, left to right. The
// chain must have at least one component; a chain of exactly one returns
// that component's own matrix unchanged.
func Fold(chain []component.Component, wavelengthMeters float64) ([][]complex128, error) {
	cur, err := chain[0].SMatrix(wavelengthMeters)
	if err != nil {
		return nil, err
	}
	for _, next := range chain[1:] {
		s, err := next.SMatrix(wavelengthMeters)
		if err != nil {
			return nil, err
		}
		cur, err = star(cur, s)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
