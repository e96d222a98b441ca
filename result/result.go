// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/errkind"
)

// Mode selects which polarization's phase Phase reports.
type Mode int

const (
	H Mode = iota
	V
)

// ref is the fully-resolved (component name, 1-based port index) key a
// Result stores samples under — stable across a gob round trip, unlike a
// port.Handle, which is only meaningful for the circuit it was minted in.
type ref struct {
	component string
	index     int
}

// Result maps every designated output port to a time-indexed sequence of
// light samples, aligned 1-to-1 with the times passed to simulate. Lookups
// accept a circuit.PortRef; an alias-based ref is resolved against the
// original circuit, so Result keeps a reference to it — nil after a gob
// decode, in which case only Index-based PortRefs resolve.
type Result struct {
	src     *circuit.Circuit
	times   []float64
	samples map[ref][]LightSample
}

// New allocates an empty Result over times, resolving alias-based PortRefs
// against src (the caller's original, unmodified circuit).
func New(src *circuit.Circuit, times []float64) *Result {
	return &Result{
		src:     src,
		times:   append([]float64(nil), times...),
		samples: make(map[ref][]LightSample),
	}
}

// Times returns the sample times this result was built over.
func (r *Result) Times() []float64 { return r.times }

// Set installs the light sample at output port (component, index1Based),
// time index idx. Called by the scheduler while accumulating a simulate() run.
func (r *Result) Set(component string, index1Based, idx int, sample LightSample) {
	k := ref{component, index1Based}
	slice, ok := r.samples[k]
	if !ok {
		slice = make([]LightSample, len(r.times))
		r.samples[k] = slice
	}
	slice[idx] = sample
}

// Reserve pre-allocates the sample slice for a port without writing to it.
// The scheduler calls this once per output, sequentially, before fanning
// per-sample Set calls out across goroutines: distinct time indices of an
// already-allocated slice can be written concurrently without a race, but
// the first allocation of the slice (and its insertion into samples) must
// not itself race.
func (r *Result) Reserve(component string, index1Based int) {
	k := ref{component, index1Based}
	if _, ok := r.samples[k]; !ok {
		r.samples[k] = make([]LightSample, len(r.times))
	}
}

func (r *Result) resolve(p circuit.PortRef) (ref, error) {
	if p.Alias == "" {
		return ref{p.Component, p.Index}, nil
	}
	if r.src == nil {
		return ref{}, errkind.New(errkind.MissingAlias, "result: alias %q requires the original circuit, unavailable after a gob decode", p.Alias)
	}
	port_, err := r.src.ResolvePort(p)
	if err != nil {
		return ref{}, err
	}
	comp := r.src.OwnerOf(port_)
	return ref{comp.Name(), port_.Index + 1}, nil
}

// At returns the full time series of light samples at the referenced port.
func (r *Result) At(p circuit.PortRef) ([]LightSample, error) {
	k, err := r.resolve(p)
	if err != nil {
		return nil, err
	}
	samples, ok := r.samples[k]
	if !ok {
		return nil, errkind.New(errkind.MissingPort, "result: no samples recorded at %q port %d", p.Component, p.Index)
	}
	return samples, nil
}

// Power returns the per-sample total power |E_H|^2+|E_V|^2 (coherent) or
// its power-summed incoherent equivalent, at every time.
func (r *Result) Power(p circuit.PortRef) ([]float64, error) {
	samples, err := r.At(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Power()
	}
	return out, nil
}

// PowerH returns the per-sample H-polarization power.
func (r *Result) PowerH(p circuit.PortRef) ([]float64, error) {
	samples, err := r.At(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.PowerH()
	}
	return out, nil
}

// PowerV returns the per-sample V-polarization power.
func (r *Result) PowerV(p circuit.PortRef) ([]float64, error) {
	samples, err := r.At(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.PowerV()
	}
	return out, nil
}

// AveragePower returns the mean power across every time sample.
func (r *Result) AveragePower(p circuit.PortRef) (float64, error) {
	powers, err := r.Power(p)
	if err != nil {
		return 0, err
	}
	if len(powers) == 0 {
		return 0, nil
	}
	var sum float64
	for _, v := range powers {
		sum += v
	}
	return sum / float64(len(powers)), nil
}

// Wavelengths returns the per-sample wavelength. Coherent only —
// InvalidLightType if any sample in the series is incoherent.
func (r *Result) Wavelengths(p circuit.PortRef) ([]float64, error) {
	samples, err := r.At(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		c, ok := s.(CoherentLight)
		if !ok {
			return nil, errkind.New(errkind.InvalidLightType, "result: wavelengths requested on an incoherent sample at index %d", i)
		}
		out[i] = c.Wavelength
	}
	return out, nil
}

// Phase returns the per-sample phase of the given polarization mode.
// Coherent only — InvalidLightType if any sample in the series is
// incoherent.
func (r *Result) Phase(p circuit.PortRef, mode Mode) ([]float64, error) {
	samples, err := r.At(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		c, ok := s.(CoherentLight)
		if !ok {
			return nil, errkind.New(errkind.InvalidLightType, "result: phase requested on an incoherent sample at index %d", i)
		}
		if mode == H {
			out[i] = c.Field.PhaseH()
		} else {
			out[i] = c.Field.PhaseV()
		}
	}
	return out, nil
}

// RelativePhase returns the per-sample H-V phase difference. Coherent only.
func (r *Result) RelativePhase(p circuit.PortRef) ([]float64, error) {
	samples, err := r.At(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		c, ok := s.(CoherentLight)
		if !ok {
			return nil, errkind.New(errkind.InvalidLightType, "result: relative phase requested on an incoherent sample at index %d", i)
		}
		out[i] = c.Field.RelativePhase()
	}
	return out, nil
}
