// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

// NewDenseS allocates a zeroed 2N x 2N dense scattering matrix for a
// component with numPorts total ports (inputs + outputs).
func NewDenseS(numPorts int) [][]complex128 {
	n := 2 * numPorts
	s := make([][]complex128, n)
	for i := range s {
		s[i] = make([]complex128, n)
	}
	return s
}

// SetScalar couples the H and V modes of inPort to outPort with the same
// scalar coefficient (polarization-independent device), where inPort and
// outPort are 0-based dense port indices within the component's own port
// list (not the whole circuit).
func SetScalar(s [][]complex128, outPort, inPort int, coeff complex128) {
	s[2*outPort][2*inPort] += coeff
	s[2*outPort+1][2*inPort+1] += coeff
}

// SetPerPol couples inPort to outPort with independent scalar coefficients
// for the H and V modes (no H/V mixing), as used by birefringent devices.
func SetPerPol(s [][]complex128, outPort, inPort int, coeffH, coeffV complex128) {
	s[2*outPort][2*inPort] += coeffH
	s[2*outPort+1][2*inPort+1] += coeffV
}

// SetJones2x2 installs a general 2x2 Jones (polarization-mixing) block
// coupling inPort's (H,V) to outPort's (H,V):
//
//	[EH_out]   [m00 m01] [EH_in]
//	[EV_out] = [m10 m11] [EV_in]
func SetJones2x2(s [][]complex128, outPort, inPort int, m [2][2]complex128) {
	s[2*outPort][2*inPort] += m[0][0]
	s[2*outPort][2*inPort+1] += m[0][1]
	s[2*outPort+1][2*inPort] += m[1][0]
	s[2*outPort+1][2*inPort+1] += m[1][1]
}
