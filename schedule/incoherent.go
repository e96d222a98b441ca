// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/photonlab/gofem-optics/assemble"
	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/field"
	"github.com/photonlab/gofem-optics/port"
	"github.com/photonlab/gofem-optics/result"

	"golang.org/x/sync/errgroup"
)

// simulateIncoherent handles the multi-circuit-input regime: power-level
// superposition, not field superposition. Every sample computes one
// coherent solve per active source (every other source held at zero in
// a_ext) and appends the resulting field to that output's
// IncoherentLight.components list, in input-iteration order — the order
// Structure.Inputs itself already walks the condensed circuit in
// (component insertion order, with fused chains placed after the
// surviving components), so it is stable across samples by construction.
// This is not necessarily the order SetInput was called in on the
// caller's circuit.
func simulateIncoherent(st *assemble.Structure, times []float64, lambdas [][]float64, constLambda bool, refs map[port.Handle]circuit.PortRef, res *result.Result) error {
	for _, site := range st.Outputs {
		ref := refs[site.Handle]
		res.Reserve(ref.Component, ref.Index)
	}

	var sharedSys *system
	if constLambda {
		var err error
		sharedSys, err = buildSystem(st, representativeLambda(lambdas, 0))
		if err != nil {
			return err
		}
	}

	var g errgroup.Group
	for ti, t := range times {
		ti, t := ti, t
		g.Go(func() error {
			sys := sharedSys
			lambda := representativeLambda(lambdas, ti)
			if sys == nil {
				var err error
				sys, err = buildSystem(st, lambda)
				if err != nil {
					return err
				}
			}
			components := make([][]result.CoherentLight, len(st.Outputs))
			for si, site := range st.Inputs {
				if site.Laser == nil {
					continue
				}
				amps, err := excitation(st, t, map[int]bool{si: true})
				if err != nil {
					return err
				}
				b, _, err := solveFields(sys, st, amps)
				if err != nil {
					return err
				}
				for oi, out := range st.Outputs {
					components[oi] = append(components[oi], result.CoherentLight{
						Field:      field.JonesVec{EH: b[2*out.K], EV: b[2*out.K+1]},
						Wavelength: lambda,
					})
				}
			}
			for oi, out := range st.Outputs {
				ref := refs[out.Handle]
				res.Set(ref.Component, ref.Index, ti, result.IncoherentLight{Components: components[oi]})
			}
			return nil
		})
	}
	return g.Wait()
}

// representativeLambda picks the wavelength every active source is solved
// against at sample ti: the first laser-bearing input's reading, matching
// the spec's "rebuilt once per t" granularity rather than one system per
// source.
func representativeLambda(lambdas [][]float64, ti int) float64 {
	if ti >= len(lambdas) {
		return 0
	}
	for _, v := range lambdas[ti] {
		if v != 0 {
			return v
		}
	}
	return 0
}
