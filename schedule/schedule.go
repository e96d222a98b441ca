// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schedule drives the time- and wavelength-sweep evaluation of a
// circuit: it clones and condenses the caller's circuit once, builds the
// wavelength-independent assembly structure once, and then solves one
// linear system per time sample (coherent) or per active source per
// sample (incoherent superposition), reusing the system matrix across
// samples whenever the wavelengths sampled from all lasers over the whole
// sweep lie within wavelengthToleranceMeters of each other.
package schedule

import (
	"math"

	"github.com/photonlab/gofem-optics/assemble"
	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/condense"
	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/field"
	"github.com/photonlab/gofem-optics/linsys"
	"github.com/photonlab/gofem-optics/port"
	"github.com/photonlab/gofem-optics/result"
	"github.com/photonlab/gofem-optics/trace"
)

// Regime is the coherence mode a simulate() run is evaluated under,
// decided once from the circuit's input count.
type Regime int

const (
	Coherent Regime = iota
	Incoherent
)

func (r Regime) String() string {
	if r == Coherent {
		return "coherent"
	}
	return "incoherent"
}

// wavelengthToleranceMeters is the spread under which a sweep's sampled
// wavelengths are treated as constant, enabling reuse of a single system
// factorization across every time sample.
const wavelengthToleranceMeters = 1e-9

// system is the wavelength-specific half of the assembled problem: the
// block-diagonal S and the fixed-point coefficient matrix M = I - S*C.
// The kind field is not written by the solve path; linsys.Solve runs
// linsys.Select again on every call.
type system struct {
	s    *linsys.Triplet
	m    *linsys.Triplet
	kind linsys.Kind
}

func buildSystem(st *assemble.Structure, wavelengthMeters float64) (*system, error) {
	s, err := st.BuildS(wavelengthMeters)
	if err != nil {
		return nil, err
	}
	sc := linsys.Multiply(s, st.C())
	return &system{s: s, m: linsys.IMinus(sc)}, nil
}

// Simulate evaluates src at every time in times and returns a Result keyed
// against src's own component names and port indices. src is never
// mutated: a private clone is condensed and solved against.
func Simulate(src *circuit.Circuit, times []float64, tr trace.Tracer) (*result.Result, error) {
	if len(src.Inputs()) == 0 {
		return nil, errkind.New(errkind.EmptyInterface, "schedule: circuit has no circuit-inputs")
	}
	if len(src.Outputs()) == 0 {
		return nil, errkind.New(errkind.EmptyInterface, "schedule: circuit has no circuit-outputs")
	}

	working := src.Clone()
	preOutputs := captureOutputRefs(working)

	tr.Stage("condensing circuit")
	fused, lineage := condense.Condense(working)
	tr.Pf("fused %d chain(s)\n", fused)

	st := assemble.Build(working)
	outputRefs := resolveOutputRefs(st, preOutputs, lineage)

	regime := Coherent
	if len(st.Inputs) > 1 {
		regime = Incoherent
	}

	lambdas, constLambda, err := sampleWavelengths(st, times)
	if err != nil {
		return nil, err
	}
	tr.Stage("solving %d sample(s), regime=%s, constant-wavelength=%v\n", len(times), regime, constLambda)

	res := result.New(src, times)
	switch regime {
	case Coherent:
		err = simulateCoherent(st, times, lambdas, constLambda, outputRefs, res)
	case Incoherent:
		err = simulateIncoherent(st, times, lambdas, constLambda, outputRefs, res)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// captureOutputRefs snapshots, for every output port of the freshly cloned
// (pre-condense) circuit, the (component, index) pair it is addressed by —
// identical to src's own naming, since Clone never renames components.
func captureOutputRefs(working *circuit.Circuit) map[port.Handle]circuit.PortRef {
	out := make(map[port.Handle]circuit.PortRef)
	for _, p := range working.Outputs() {
		owner := working.OwnerOf(p)
		out[p.Self] = circuit.ByIndex(owner.Name(), p.Index+1)
	}
	return out
}

// resolveOutputRefs maps every post-condense output site back to the
// original circuit's naming: a site whose handle survived condensing
// unchanged is looked up directly; one that moved onto a fused
// CondensedComponent is traced back one hop through lineage.
func resolveOutputRefs(st *assemble.Structure, preOutputs map[port.Handle]circuit.PortRef, lineage map[port.Handle]port.Handle) map[port.Handle]circuit.PortRef {
	out := make(map[port.Handle]circuit.PortRef, len(st.Outputs))
	for _, site := range st.Outputs {
		if ref, ok := preOutputs[site.Handle]; ok {
			out[site.Handle] = ref
			continue
		}
		if old, ok := lineage[site.Handle]; ok {
			if ref, ok := preOutputs[old]; ok {
				out[site.Handle] = ref
				continue
			}
		}
		panic("schedule: output site has no traceable origin in the caller's circuit")
	}
	return out
}

// sampleWavelengths samples every input laser's wavelength at every time,
// reporting whether the full spread across the sweep falls under
// wavelengthToleranceMeters.
func sampleWavelengths(st *assemble.Structure, times []float64) (lambdas [][]float64, constant bool, err error) {
	lambdas = make([][]float64, len(times))
	min_, max_ := math.Inf(1), math.Inf(-1)
	for ti, t := range times {
		row := make([]float64, len(st.Inputs))
		for si, site := range st.Inputs {
			if site.Laser == nil {
				continue
			}
			s, serr := site.Laser.Sample(t)
			if serr != nil {
				return nil, false, serr
			}
			row[si] = s.Wavelength
			if s.Wavelength < min_ {
				min_ = s.Wavelength
			}
			if s.Wavelength > max_ {
				max_ = s.Wavelength
			}
		}
		lambdas[ti] = row
	}
	if max_ < min_ {
		return lambdas, true, nil // no lasers at all; treat as trivially constant
	}
	return lambdas, max_-min_ < wavelengthToleranceMeters, nil
}

// excitation builds a_ext for a single time sample, restricted to the
// input sites named in active (nil means every site).
func excitation(st *assemble.Structure, t float64, active map[int]bool) (map[port.Handle]field.JonesVec, error) {
	out := make(map[port.Handle]field.JonesVec, len(st.Inputs))
	for i, site := range st.Inputs {
		if active != nil && !active[i] {
			continue
		}
		if site.Laser == nil {
			continue
		}
		s, err := site.Laser.Sample(t)
		if err != nil {
			return nil, err
		}
		out[site.Handle] = s.Field
	}
	return out, nil
}

// solveFields solves (I - S*C) b = S*a_ext for a single excitation and
// returns the full port field vector b.
func solveFields(sys *system, st *assemble.Structure, amps map[port.Handle]field.JonesVec) ([]complex128, linsys.Kind, error) {
	aExt := st.BuildExcitation(amps)
	rhs := linsys.MatVec(sys.s, aExt)
	b, kind, err := linsys.Solve(sys.m, rhs)
	return b, kind, err
}

// scatterCoherent writes the field at every output site into res at index
// ti, tagged with wavelengthMeters.
func scatterCoherent(st *assemble.Structure, refs map[port.Handle]circuit.PortRef, b []complex128, wavelengthMeters float64, res *result.Result, ti int) {
	for _, site := range st.Outputs {
		ref := refs[site.Handle]
		sample := result.CoherentLight{
			Field:      field.JonesVec{EH: b[2*site.K], EV: b[2*site.K+1]},
			Wavelength: wavelengthMeters,
		}
		res.Set(ref.Component, ref.Index, ti, sample)
	}
}
