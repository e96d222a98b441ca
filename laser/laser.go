// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package laser implements the coherent light sources that drive a
// circuit's inputs: pure, time-indexed functions returning a field and a
// wavelength, the optical analogue of gofem's fun.Func time-functions.
package laser

import "github.com/photonlab/gofem-optics/field"

// Sample is the field and wavelength (meters) a Laser emits at a given time.
type Sample struct {
	Field      field.JonesVec
	Wavelength float64
}

// Laser is a pure function of time: given t it returns a coherent field
// sample. Implementations must be safe to call concurrently from multiple
// scheduler goroutines and must not depend on call order.
type Laser interface {
	Sample(t float64) (Sample, error)
}

// Func adapts a plain function to the Laser interface, mirroring fun.Func's
// lightweight adapter pattern.
type Func func(t float64) (Sample, error)

// Sample implements Laser.
func (f Func) Sample(t float64) (Sample, error) { return f(t) }

// Monochromatic returns a Laser that always emits the given field at a
// fixed wavelength, independent of t.
func Monochromatic(field_ field.JonesVec, wavelength float64) Laser {
	return Func(func(t float64) (Sample, error) {
		return Sample{Field: field_, Wavelength: wavelength}, nil
	})
}
