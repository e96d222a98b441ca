// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/photonlab/gofem-optics/assemble"
	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/port"
	"github.com/photonlab/gofem-optics/result"

	"golang.org/x/sync/errgroup"
)

// simulateCoherent handles the single-circuit-input regime: one solve per
// time sample. Under a constant-wavelength sweep the system (S, M) is
// built once and every sample's solve runs against the same M, which lets
// the per-sample solves fan out over an errgroup — Solve only ever reads
// its Triplet argument, materializing a private dense/sparse copy per
// call, so concurrent solves against one shared M are race-free.
func simulateCoherent(st *assemble.Structure, times []float64, lambdas [][]float64, constLambda bool, refs map[port.Handle]circuit.PortRef, res *result.Result) error {
	for _, site := range st.Outputs {
		ref := refs[site.Handle]
		res.Reserve(ref.Component, ref.Index)
	}

	if constLambda {
		lambda := sampleLambdaOrZero(lambdas, 0)
		sys, err := buildSystem(st, lambda)
		if err != nil {
			return err
		}

		var g errgroup.Group
		for ti, t := range times {
			ti, t := ti, t
			g.Go(func() error {
				amps, err := excitation(st, t, nil)
				if err != nil {
					return err
				}
				b, _, err := solveFields(sys, st, amps)
				if err != nil {
					return err
				}
				scatterCoherent(st, refs, b, lambda, res, ti)
				return nil
			})
		}
		return g.Wait()
	}

	for ti, t := range times {
		lambda := sampleLambdaOrZero(lambdas, ti)
		sys, err := buildSystem(st, lambda)
		if err != nil {
			return err
		}
		amps, err := excitation(st, t, nil)
		if err != nil {
			return err
		}
		b, _, err := solveFields(sys, st, amps)
		if err != nil {
			return err
		}
		scatterCoherent(st, refs, b, lambda, res, ti)
	}
	return nil
}

func sampleLambdaOrZero(lambdas [][]float64, ti int) float64 {
	if ti >= len(lambdas) || len(lambdas[ti]) == 0 {
		return 0
	}
	return lambdas[ti][0]
}
