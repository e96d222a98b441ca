// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/photonlab/gofem-optics/assemble"
	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/condense"
	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/linsys"
	"github.com/photonlab/gofem-optics/trace"

	"golang.org/x/sync/errgroup"
)

// SParameters computes the circuit's steady-state transfer matrix at every
// wavelength in wavelengthsMeters, independent of any laser: for each λ it
// solves the matrix equation M*X = S and extracts the (output rows,
// input columns) sub-block, doubled for the H/V pair each port carries.
// Row/column ordering follows Structure.Outputs/Inputs, in condensed
// circuit insertion order.
func SParameters(src *circuit.Circuit, wavelengthsMeters []float64, tr trace.Tracer) ([][][]complex128, error) {
	if len(src.Inputs()) == 0 {
		return nil, errkind.New(errkind.EmptyInterface, "schedule: circuit has no circuit-inputs")
	}
	if len(src.Outputs()) == 0 {
		return nil, errkind.New(errkind.EmptyInterface, "schedule: circuit has no circuit-outputs")
	}

	working := src.Clone()
	tr.Stage("condensing circuit")
	fused, _ := condense.Condense(working)
	tr.Pf("fused %d chain(s)\n", fused)

	st := assemble.Build(working)
	tr.Stage("solving %d wavelength sample(s)\n", len(wavelengthsMeters))

	results := make([][][]complex128, len(wavelengthsMeters))
	var g errgroup.Group
	for wi, lambda := range wavelengthsMeters {
		wi, lambda := wi, lambda
		g.Go(func() error {
			s, err := st.BuildS(lambda)
			if err != nil {
				return err
			}
			sc := linsys.Multiply(s, st.C())
			m := linsys.IMinus(sc)
			x, err := solveMatrix(m, s)
			if err != nil {
				return err
			}
			results[wi] = extractReducedBlock(st, x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// solveMatrix solves m*x = s column by column, returning the dense result.
func solveMatrix(m, s *linsys.Triplet) ([][]complex128, error) {
	n, _ := m.Size()
	sDense := s.ToDense()
	x := make([][]complex128, n)
	for r := range x {
		x[r] = make([]complex128, n)
	}
	for col := 0; col < n; col++ {
		b := make([]complex128, n)
		for r := 0; r < n; r++ {
			b[r] = sDense[r][col]
		}
		xcol, _, err := linsys.Solve(m, b)
		if err != nil {
			return nil, err
		}
		for r := 0; r < n; r++ {
			x[r][col] = xcol[r]
		}
	}
	return x, nil
}

// extractReducedBlock pulls the (output, input) H/V-doubled sub-block out
// of the full port-to-port transfer matrix x.
func extractReducedBlock(st *assemble.Structure, x [][]complex128) [][]complex128 {
	rows := make([]int, 0, 2*len(st.Outputs))
	for _, o := range st.Outputs {
		rows = append(rows, 2*o.K, 2*o.K+1)
	}
	cols := make([]int, 0, 2*len(st.Inputs))
	for _, in := range st.Inputs {
		cols = append(cols, 2*in.K, 2*in.K+1)
	}
	out := make([][]complex128, len(rows))
	for ri, r := range rows {
		out[ri] = make([]complex128, len(cols))
		for ci, c := range cols {
			out[ri][ci] = x[r][c]
		}
	}
	return out
}
