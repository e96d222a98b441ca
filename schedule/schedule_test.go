// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/field"
	"github.com/photonlab/gofem-optics/laser"
	"github.com/photonlab/gofem-optics/trace"
)

func phaseCoeff(length, n, loss, lambda float64) complex128 {
	phase := -2 * math.Pi * n * length / lambda
	attn := math.Pow(10, -loss*length/20)
	return complex(attn, 0) * cmplx.Exp(complex(0, phase))
}

func Test_simulate_rejects_circuit_with_no_inputs(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simulate_rejects_circuit_with_no_inputs")

	c := circuit.New()
	ps := component.NewPhaseShifter("ps", 1e-6, 1.5, 1.5, 0, 0, 1550e-9, 0, 0)
	if err := c.Add(ps); err != nil {
		tst.Fatalf("add: %v", err)
	}
	if err := c.SetOutput(circuit.ByIndex("ps", 2)); err != nil {
		tst.Fatalf("set output: %v", err)
	}
	_, err := Simulate(c, []float64{0}, trace.Tracer{})
	if k, ok := errkind.Of(err); !ok || k != errkind.EmptyInterface {
		tst.Fatalf("expected EmptyInterface, got %v", err)
	}
}

func Test_simulate_coherent_constant_wavelength(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simulate_coherent_constant_wavelength")

	const lambda = 1550e-9
	c := circuit.New()
	ps := component.NewPhaseShifter("ps", 1e-6, 1.5, 1.5, 0, 0, lambda, 0, 0)
	if err := c.Add(ps); err != nil {
		tst.Fatalf("add: %v", err)
	}
	l := laser.Monochromatic(field.JonesVec{EH: 1}, lambda)
	if err := c.SetInput(l, circuit.ByIndex("ps", 1)); err != nil {
		tst.Fatalf("set input: %v", err)
	}
	if err := c.SetOutput(circuit.ByIndex("ps", 2)); err != nil {
		tst.Fatalf("set output: %v", err)
	}

	times := []float64{0, 1e-3, 2e-3}
	res, err := Simulate(c, times, trace.Tracer{})
	if err != nil {
		tst.Fatalf("simulate: %v", err)
	}

	powers, err := res.Power(circuit.ByIndex("ps", 2))
	if err != nil {
		tst.Fatalf("power: %v", err)
	}
	expect := cmplx.Abs(phaseCoeff(1e-6, 1.5, 0, lambda))
	expect *= expect
	chk.Vector(tst, "power(t)", 1e-9, powers, []float64{expect, expect, expect})

	wavelengths, err := res.Wavelengths(circuit.ByIndex("ps", 2))
	if err != nil {
		tst.Fatalf("wavelengths: %v", err)
	}
	chk.Vector(tst, "wavelength(t)", 1e-18, wavelengths, []float64{lambda, lambda, lambda})
}

func buildTwoInputBeamSplitter(tst *testing.T, lambdaA, lambdaB float64) *circuit.Circuit {
	tst.Helper()
	c := circuit.New()
	bs := component.NewBeamSplitter("bs", 0.5)
	if err := c.Add(bs); err != nil {
		tst.Fatalf("add: %v", err)
	}
	la := laser.Monochromatic(field.JonesVec{EH: 1}, lambdaA)
	lb := laser.Monochromatic(field.JonesVec{EH: 1}, lambdaB)
	if err := c.SetInput(la, circuit.ByIndex("bs", 1)); err != nil {
		tst.Fatalf("set input 1: %v", err)
	}
	if err := c.SetInput(lb, circuit.ByIndex("bs", 2)); err != nil {
		tst.Fatalf("set input 2: %v", err)
	}
	if err := c.SetOutput(circuit.ByIndex("bs", 3)); err != nil {
		tst.Fatalf("set output 3: %v", err)
	}
	if err := c.SetOutput(circuit.ByIndex("bs", 4)); err != nil {
		tst.Fatalf("set output 4: %v", err)
	}
	return c
}

func Test_simulate_incoherent_sums_power_from_each_source(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simulate_incoherent_sums_power_from_each_source")

	const lambda = 1550e-9
	c := buildTwoInputBeamSplitter(tst, lambda, lambda)

	res, err := Simulate(c, []float64{0}, trace.Tracer{})
	if err != nil {
		tst.Fatalf("simulate: %v", err)
	}

	powers, err := res.Power(circuit.ByIndex("bs", 3))
	if err != nil {
		tst.Fatalf("power: %v", err)
	}
	// A 50/50 splitter driven by two unit-power sources, incoherently
	// superposed, delivers exactly 1 unit of power to each output port.
	chk.Scalar(tst, "total power @ port 3", 1e-9, powers[0], 1)
}

func Test_simulate_incoherent_with_varying_wavelength(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simulate_incoherent_with_varying_wavelength")

	c := buildTwoInputBeamSplitter(tst, 1550e-9, 1551e-9)
	res, err := Simulate(c, []float64{0, 1e-3}, trace.Tracer{})
	if err != nil {
		tst.Fatalf("simulate: %v", err)
	}
	powers, err := res.Power(circuit.ByIndex("bs", 4))
	if err != nil {
		tst.Fatalf("power: %v", err)
	}
	chk.IntAssert(len(powers), 2)
	chk.Vector(tst, "power(t)", 1e-9, powers, []float64{1, 1})
}

func buildChainedPhaseShifters(tst *testing.T) *circuit.Circuit {
	tst.Helper()
	c := circuit.New()
	ps1 := component.NewPhaseShifter("ps1", 1e-6, 1.5, 1.5, 0, 0, 1550e-9, 0, 0)
	ps2 := component.NewPhaseShifter("ps2", 2e-6, 1.5, 1.5, 0, 0, 1550e-9, 0, 0)
	if err := c.Add(ps1); err != nil {
		tst.Fatalf("add ps1: %v", err)
	}
	if err := c.Add(ps2); err != nil {
		tst.Fatalf("add ps2: %v", err)
	}
	if err := c.Connect(circuit.ByIndex("ps1", 2), circuit.ByIndex("ps2", 1)); err != nil {
		tst.Fatalf("connect: %v", err)
	}
	l := laser.Monochromatic(field.JonesVec{EH: 1}, 1550e-9)
	if err := c.SetInput(l, circuit.ByIndex("ps1", 1)); err != nil {
		tst.Fatalf("set input: %v", err)
	}
	if err := c.SetOutput(circuit.ByIndex("ps2", 2)); err != nil {
		tst.Fatalf("set output: %v", err)
	}
	return c
}

func Test_sparameters_of_fused_chain_matches_product_transmission(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparameters_of_fused_chain_matches_product_transmission")

	c := buildChainedPhaseShifters(tst)
	blocks, err := SParameters(c, []float64{1550e-9, 1551e-9}, trace.Tracer{})
	if err != nil {
		tst.Fatalf("sparameters: %v", err)
	}
	chk.IntAssert(len(blocks), 2)
	for wi, lambda := range []float64{1550e-9, 1551e-9} {
		m := blocks[wi]
		chk.IntAssert(len(m), 2)
		chk.IntAssert(len(m[0]), 2)
		expect := phaseCoeff(1e-6, 1.5, 0, lambda) * phaseCoeff(2e-6, 1.5, 0, lambda)
		chk.Scalar(tst, "|H transmission error|", 1e-9, cmplx.Abs(m[0][0]-expect), 0)
	}
}
