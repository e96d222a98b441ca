// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/schedule"
	"github.com/photonlab/gofem-optics/topology"
	"github.com/photonlab/gofem-optics/trace"
)

func main() {
	verbose := flag.Bool("v", true, "print trace output while solving")
	nsamples := flag.Int("n", 5, "number of time samples to evaluate")
	flag.Parse()

	if len(flag.Args()) == 0 {
		chk.Panic("Please, provide a circuit topology JSON file. Ex.: circuit.json")
	}
	fnamepath := flag.Arg(0)

	io.Pf("\nPhoton circuit solver\n\n")

	c, err := topology.Load(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("failed to load topology: %v", err)
	}

	tr := trace.Tracer{Verbose: *verbose}
	times := make([]float64, *nsamples)
	for i := range times {
		times[i] = float64(i) * 1e-3
	}

	res, err := schedule.Simulate(c, times, tr)
	if err != nil {
		chk.Panic("simulate failed: %v", err)
	}

	for _, out := range c.Outputs() {
		owner := c.OwnerOf(out)
		ref := circuit.ByIndex(owner.Name(), out.Index+1)

		powers, err := res.Power(ref)
		if err != nil {
			io.Pfred("%s[%d]: %v\n", owner.Name(), out.Index+1, err)
			continue
		}
		io.Pf("%s[%d] power: %v\n", owner.Name(), out.Index+1, powers)
	}
}
