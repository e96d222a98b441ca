// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result implements the simulation output container: a per-output
// port, time-indexed sequence of coherent or incoherent light samples, with
// power/phase/wavelength accessor views and a gob-based snapshot/replay
// pair for persisting a run without re-solving it.
package result

import "github.com/photonlab/gofem-optics/field"

// LightSample is one sample of light at one output port: either a single
// coherent field (the normal case, and every case under the coherent
// simulation path) or a power-superposed set of independent coherent
// contributions (the incoherent path, one contribution per active source).
type LightSample interface {
	Power() float64
	PowerH() float64
	PowerV() float64
	isLightSample()
}

// CoherentLight is a single fully-polarized field at a single wavelength.
type CoherentLight struct {
	Field      field.JonesVec
	Wavelength float64
}

func (c CoherentLight) Power() float64  { return c.Field.Power() }
func (c CoherentLight) PowerH() float64 { return c.Field.PowerH() }
func (c CoherentLight) PowerV() float64 { return c.Field.PowerV() }
func (CoherentLight) isLightSample()    {}

// IncoherentLight is the power-level superposition of one coherent
// contribution per active source; component fields are never added
// coherently since their relative phase carries no physical meaning across
// independent sources.
type IncoherentLight struct {
	Components []CoherentLight
}

func (i IncoherentLight) Power() float64 {
	var p float64
	for _, c := range i.Components {
		p += c.Power()
	}
	return p
}

func (i IncoherentLight) PowerH() float64 {
	var p float64
	for _, c := range i.Components {
		p += c.PowerH()
	}
	return p
}

func (i IncoherentLight) PowerV() float64 {
	var p float64
	for _, c := range i.Components {
		p += c.PowerV()
	}
	return p
}

func (IncoherentLight) isLightSample() {}
