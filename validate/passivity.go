// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate implements reusable physical-sanity checks over a
// component's scattering matrix: passivity (spectral norm at most 1) and,
// optionally, losslessness (S is unitary). There is no complex SVD in the
// retrieval pack's ecosystem surface, so the spectral norm is estimated by
// power iteration on S^H*S rather than a full decomposition (see
// DESIGN.md).
package validate

import (
	"math"
	"math/cmplx"

	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/errkind"
)

// Passivity checks comp's scattering matrix at wavelengthMeters against
// ||S||2 <= 1 (every passive/reciprocal device must satisfy this), and,
// when losslessTol > 0, additionally checks ||S^H*S - I||inf < losslessTol
// (a lossless device must be unitary to within that tolerance).
func Passivity(comp component.Component, wavelengthMeters, losslessTol float64) error {
	s, err := comp.SMatrix(wavelengthMeters)
	if err != nil {
		return err
	}
	shs := gram(s)

	if losslessTol > 0 {
		if d := maxDiffFromIdentity(shs); d >= losslessTol {
			return errkind.New(errkind.Passivity, "validate: %q is not lossless: ||S^H S - I||inf = %.3g >= %.3g", comp.Name(), d, losslessTol)
		}
	}

	lambdaMax := powerIterationMaxEigenvalue(shs)
	sigmaMax := math.Sqrt(math.Max(0, lambdaMax))
	if sigmaMax > 1+1e-9 {
		return errkind.New(errkind.Passivity, "validate: %q is not passive: ||S||2 = %.6g > 1", comp.Name(), sigmaMax)
	}
	return nil
}

// gram returns S^H * S.
func gram(s [][]complex128) [][]complex128 {
	n := len(s)
	out := make([][]complex128, n)
	for i := range out {
		out[i] = make([]complex128, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for k := 0; k < n; k++ {
				sum += cmplx.Conj(s[k][i]) * s[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func maxDiffFromIdentity(a [][]complex128) float64 {
	n := len(a)
	max := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if d := cmplx.Abs(a[i][j] - want); d > max {
				max = d
			}
		}
	}
	return max
}

// powerIterationMaxEigenvalue estimates the largest eigenvalue of the
// Hermitian positive-semidefinite matrix a via the Rayleigh quotient of a
// power-iterated unit vector, starting from the all-ones vector (the
// matrices here are small, dense and well-separated at the top eigenvalue,
// so a fixed deterministic start converges in well under 100 iterations).
func powerIterationMaxEigenvalue(a [][]complex128) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	v := make([]complex128, n)
	for i := range v {
		v[i] = 1
	}
	normalize(v)

	var lambda float64
	for iter := 0; iter < 100; iter++ {
		w := matVec(a, v)
		if vecNorm(w) < 1e-15 {
			return 0
		}
		lambda = real(dot(v, w))
		normalize(w)
		v = w
	}
	return lambda
}

func matVec(a [][]complex128, v []complex128) []complex128 {
	out := make([]complex128, len(v))
	for i := range a {
		var sum complex128
		for j := range v {
			sum += a[i][j] * v[j]
		}
		out[i] = sum
	}
	return out
}

func dot(v, w []complex128) complex128 {
	var sum complex128
	for i := range v {
		sum += cmplx.Conj(v[i]) * w[i]
	}
	return sum
}

func vecNorm(v []complex128) float64 {
	var sum float64
	for _, c := range v {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	return math.Sqrt(sum)
}

func normalize(v []complex128) {
	n := vecNorm(v)
	if n < 1e-300 {
		return
	}
	for i := range v {
		v[i] /= complex(n, 0)
	}
}
