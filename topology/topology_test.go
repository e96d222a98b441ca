// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topology

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/port"
)

func Test_build_wires_components_inputs_and_outputs(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build_wires_components_inputs_and_outputs")

	spec := &Spec{
		Components: []ComponentSpec{
			{Name: "ps1", Type: "PhaseShifter", Prms: dbf.Params{
				&dbf.P{N: "length", V: 1e-6},
				&dbf.P{N: "nH", V: 1.5},
				&dbf.P{N: "nV", V: 1.5},
			}},
			{Name: "bs1", Type: "BeamSplitter", Prms: dbf.Params{
				&dbf.P{N: "ratio", V: 0.5},
			}},
		},
		Connections: []ConnectionSpec{
			{From: PortSpec{Component: "ps1", Index: 2}, To: PortSpec{Component: "bs1", Index: 1}},
		},
		Inputs: []InputSpec{
			{Port: PortSpec{Component: "ps1", Index: 1}, FieldH: ComplexSpec{Re: 1}, WavelengthMeter: 1550e-9},
		},
		Outputs: []PortSpec{
			{Component: "bs1", Index: 3},
			{Component: "bs1", Index: 4},
		},
	}

	c, err := Build(spec)
	if err != nil {
		tst.Fatalf("build: %v", err)
	}
	chk.IntAssert(len(c.Components()), 2)
	chk.IntAssert(len(c.Inputs()), 1)
	chk.IntAssert(len(c.Outputs()), 2)

	p, err := c.ResolvePort(circuit.ByIndex("ps1", 2))
	if err != nil {
		tst.Fatalf("resolve: %v", err)
	}
	chk.IntAssert(int(p.Connected.Kind), int(port.ToPort))
}

func Test_build_rejects_unknown_component_type(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build_rejects_unknown_component_type")

	spec := &Spec{
		Components: []ComponentSpec{{Name: "x", Type: "NotARealComponent"}},
	}
	if _, err := Build(spec); err == nil {
		tst.Fatalf("expected an error for an unregistered component type")
	}
}

func Test_build_rejects_empty_spec(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build_rejects_empty_spec")

	if _, err := Build(&Spec{}); err == nil {
		tst.Fatalf("expected an error for a spec with no components")
	}
}
