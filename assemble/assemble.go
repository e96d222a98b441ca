// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assemble builds the global linear system the solver consumes
// from a condensed circuit: a stable port index, the wavelength-independent
// connectivity matrix C, the block-diagonal scattering matrix S at a given
// wavelength, and the excitation vector from whichever lasers are active.
package assemble

import (
	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/field"
	"github.com/photonlab/gofem-optics/laser"
	"github.com/photonlab/gofem-optics/linsys"
	"github.com/photonlab/gofem-optics/port"
)

// PortEntry is one port's slot in the dense port index.
type PortEntry struct {
	Port *port.Port
	K    int // dense port index, 0-based
}

// InputSite is a CircuitInput port's slot, with the laser mapped to it.
type InputSite struct {
	Handle port.Handle
	K      int
	Laser  laser.Laser
	Ref    circuit.PortRef
}

// OutputSite is a CircuitOutput port's slot.
type OutputSite struct {
	Handle port.Handle
	K      int
	Ref    circuit.PortRef
}

type compBlock struct {
	comp  component.Component
	baseK int
}

// Structure is the wavelength-independent half of the global system: the
// port ordering, the connectivity matrix C, and the input/output port
// lists. Build it once per condensed circuit and reuse it across every
// wavelength sample (BuildS is the only per-wavelength step).
type Structure struct {
	N       int // number of ports (P); system dimension is 2*N
	Index   map[port.Handle]int
	Ports   []PortEntry
	Inputs  []InputSite
	Outputs []OutputSite

	comps []compBlock
	c     *linsys.Triplet
}

// Build walks cond's components in insertion order, assigning each port a
// dense index, and constructs the connectivity matrix from every internal
// ToPort wire.
func Build(cond *circuit.Circuit) *Structure {
	st := &Structure{Index: make(map[port.Handle]int)}
	for _, comp := range cond.Components() {
		base := len(st.Ports)
		st.comps = append(st.comps, compBlock{comp: comp, baseK: base})
		for _, p := range comp.Ports() {
			k := len(st.Ports)
			st.Index[p.Self] = k
			st.Ports = append(st.Ports, PortEntry{Port: p, K: k})
			switch p.Connected.Kind {
			case port.CircuitInput:
				las, _ := cond.InputLaser(p.Self)
				st.Inputs = append(st.Inputs, InputSite{
					Handle: p.Self, K: k, Laser: las,
					Ref: circuit.ByIndex(comp.Name(), p.Index+1),
				})
			case port.CircuitOutput:
				st.Outputs = append(st.Outputs, OutputSite{
					Handle: p.Self, K: k,
					Ref: circuit.ByIndex(comp.Name(), p.Index+1),
				})
			}
		}
	}
	st.N = len(st.Ports)
	st.c = buildConnectivity(st)
	return st
}

// buildConnectivity places the four binary entries of each internal wire
// k<->q once, at the (k,q) pair with the smaller dense index first,
// matching the symmetric, zero-diagonal, self-loop-free matrix C describes.
func buildConnectivity(st *Structure) *linsys.Triplet {
	t := &linsys.Triplet{}
	t.Init(2*st.N, 2*st.N, 4*st.N)
	for _, entry := range st.Ports {
		p := entry.Port
		if p.Connected.Kind != port.ToPort {
			continue
		}
		peerK, ok := st.Index[p.Connected.Peer]
		if !ok || entry.K >= peerK {
			continue
		}
		k := entry.K
		t.Put(2*k, 2*peerK, 1)
		t.Put(2*peerK, 2*k, 1)
		t.Put(2*k+1, 2*peerK+1, 1)
		t.Put(2*peerK+1, 2*k+1, 1)
	}
	return t
}

// C returns the connectivity matrix built by Build.
func (st *Structure) C() *linsys.Triplet { return st.c }

// BuildS evaluates every component's scattering matrix at wavelengthMeters
// and places it as a diagonal block in the global 2N x 2N system.
func (st *Structure) BuildS(wavelengthMeters float64) (*linsys.Triplet, error) {
	cap := 0
	for _, cb := range st.comps {
		n := 2 * (cb.comp.NumInputs() + cb.comp.NumOutputs())
		cap += n * n
	}
	t := &linsys.Triplet{}
	t.Init(2*st.N, 2*st.N, cap)
	for _, cb := range st.comps {
		s, err := cb.comp.SMatrix(wavelengthMeters)
		if err != nil {
			return nil, err
		}
		n := len(s)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if v := s[r][c]; v != 0 {
					t.Put(2*cb.baseK+r, 2*cb.baseK+c, v)
				}
			}
		}
	}
	return t, nil
}

// BuildExcitation places each active input's field into the 2N-length
// excitation vector a_ext, zero everywhere else.
func (st *Structure) BuildExcitation(amplitudes map[port.Handle]field.JonesVec) []complex128 {
	a := make([]complex128, 2*st.N)
	for h, amp := range amplitudes {
		k, ok := st.Index[h]
		if !ok {
			continue
		}
		a[2*k] = amp.EH
		a[2*k+1] = amp.EV
	}
	return a
}
