// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topology loads a circuit from a declarative JSON description,
// the optics-domain counterpart of gofem's inp.ReadMat: components are
// named and typed against component.FromParams' registry, wired by port
// reference, and a subset are promoted to circuit inputs (with an
// attached monochromatic laser) or outputs. It is additive sugar over the
// circuit package's programmatic API, not a replacement for it — a laser
// with nontrivial time dependence still has to be attached in Go after
// Load returns.
package topology

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/field"
	"github.com/photonlab/gofem-optics/laser"
)

// PortSpec addresses a port by component name plus either an alias or a
// 1-based index, mirroring circuit.PortRef.
type PortSpec struct {
	Component string `json:"component"`
	Alias     string `json:"alias,omitempty"`
	Index     int    `json:"index,omitempty"`
}

func (p PortSpec) ref() circuit.PortRef {
	if p.Alias != "" {
		return circuit.ByAlias(p.Component, p.Alias)
	}
	return circuit.ByIndex(p.Component, p.Index)
}

// ComponentSpec declares one component instance, by registered type name
// and named float parameters (the same dbf.Params every concrete
// component's allocator already expects).
type ComponentSpec struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Prms    dbf.Params  `json:"prms"`
	Aliases []AliasSpec `json:"aliases,omitempty"`
}

// AliasSpec installs one alias on a component's port at load time.
type AliasSpec struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ConnectionSpec wires two ports together.
type ConnectionSpec struct {
	From PortSpec `json:"from"`
	To   PortSpec `json:"to"`
}

// ComplexSpec is a JSON-friendly (re, im) pair for a Jones component.
type ComplexSpec struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func (c ComplexSpec) complex() complex128 { return complex(c.Re, c.Im) }

// InputSpec designates a circuit input and the monochromatic laser that
// drives it.
type InputSpec struct {
	Port            PortSpec    `json:"port"`
	FieldH          ComplexSpec `json:"field_h"`
	FieldV          ComplexSpec `json:"field_v"`
	WavelengthMeter float64     `json:"wavelength_m"`
}

// Spec is the top-level declarative circuit description.
type Spec struct {
	Components  []ComponentSpec  `json:"components"`
	Connections []ConnectionSpec `json:"connections"`
	Inputs      []InputSpec      `json:"inputs"`
	Outputs     []PortSpec       `json:"outputs"`
}

// Load reads and builds the circuit described by the JSON file at
// dir/file, the same dir-plus-filename convention inp.ReadMat uses.
func Load(dir, file string) (*circuit.Circuit, error) {
	raw, err := io.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	var spec Spec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	return Build(&spec)
}

// Build realizes spec as a live circuit: components first, then aliases,
// wiring, inputs and outputs, in the order a hand-written program would
// issue the equivalent calls.
func Build(spec *Spec) (*circuit.Circuit, error) {
	c := circuit.New()

	for _, cs := range spec.Components {
		comp, err := component.FromParams(cs.Type, cs.Name, cs.Prms)
		if err != nil {
			return nil, err
		}
		if err := c.Add(comp); err != nil {
			return nil, err
		}
		for _, al := range cs.Aliases {
			if err := comp.SetAlias(al.Index, al.Name); err != nil {
				return nil, err
			}
		}
	}

	for _, conn := range spec.Connections {
		if err := c.Connect(conn.From.ref(), conn.To.ref()); err != nil {
			return nil, err
		}
	}

	for _, in := range spec.Inputs {
		src := laser.Monochromatic(field.JonesVec{EH: in.FieldH.complex(), EV: in.FieldV.complex()}, in.WavelengthMeter)
		if err := c.SetInput(src, in.Port.ref()); err != nil {
			return nil, err
		}
	}

	for _, out := range spec.Outputs {
		if err := c.SetOutput(out.ref()); err != nil {
			return nil, err
		}
	}

	if len(spec.Components) == 0 {
		return nil, errkind.New(errkind.EmptyInterface, "topology: spec declares no components")
	}
	return c, nil
}
