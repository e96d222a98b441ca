// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condense

import (
	"fmt"

	"github.com/photonlab/gofem-optics/circuit"
	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/port"
)

// isAnchor reports whether comp must stay its own block in the global
// system rather than being folded into a chain: any component whose wired
// in/out degree is not exactly 1, or that is not structurally a single
// input and single output device (a splitter, combiner or detector tap
// carries a wired degree of 1 on one side while still being a genuine
// multi-port device — the port-count test catches that case, which a
// degree-only reading of "anchor" would miss).
func isAnchor(comp component.Component) bool {
	return comp.InDegree() != 1 || comp.OutDegree() != 1 || comp.NumInputs() != 1 || comp.NumOutputs() != 1
}

// Condense prunes fully-dangling components and fuses every maximal chain
// of wired 1-in/1-out devices into a single CondensedComponent, mutating c
// in place. Callers pass in a circuit they own exclusively (the scheduler's
// private clone, never the caller's original) since this is destructive.
// Returns the number of chains fused and, for every output port that moved
// onto a new CondensedComponent, a lineage entry mapping the new port's
// handle back to the pre-fuse one — the scheduler needs this to trace a
// solved output back to the name the caller's original circuit knows it
// by, since a fused chain's exit port lives on a synthetic "_chain_N"
// component that has no name in the caller's circuit.
func Condense(c *circuit.Circuit) (fused int, outputLineage map[port.Handle]port.Handle) {
	outputLineage = make(map[port.Handle]port.Handle)
	prune(c)

	anchors := make(map[int64]bool)
	for _, comp := range c.Components() {
		if isAnchor(comp) {
			anchors[comp.ID()] = true
		}
	}

	visited := make(map[int64]bool)
	var starts []component.Component

	for _, comp := range c.Components() {
		for _, p := range comp.Ports() {
			if p.Kind == port.Input && p.Connected.Kind == port.CircuitInput {
				starts = append(starts, comp)
			}
		}
	}
	for _, comp := range c.Components() {
		if !anchors[comp.ID()] {
			continue
		}
		for _, p := range comp.Ports() {
			if p.Kind != port.Output || p.Connected.Kind != port.ToPort {
				continue
			}
			peer := c.Port(p.Connected.Peer)
			starts = append(starts, c.OwnerOf(peer))
		}
	}

	for _, start := range starts {
		if visited[start.ID()] || anchors[start.ID()] {
			continue
		}
		chain, exitPort := walk(c, start, anchors, visited)
		if len(chain) < 2 {
			continue
		}
		fuse(c, chain, exitPort, outputLineage)
		fused++
	}
	return fused, outputLineage
}

// prune removes every component with no live connection on any port: it
// contributes nothing to any signal path and would otherwise sit in the
// global system as an isolated, unexcited block.
func prune(c *circuit.Circuit) {
	var dead []component.Component
	for _, comp := range c.Components() {
		alive := false
		for _, p := range comp.Ports() {
			if !p.Connected.IsNone() {
				alive = true
				break
			}
		}
		if !alive {
			dead = append(dead, comp)
		}
	}
	for _, comp := range dead {
		if err := c.Remove(comp); err != nil {
			panic("condense: prune failed to remove a dangling component: " + err.Error())
		}
	}
}

// walk follows the single output wire of each non-anchor component starting
// at start, collecting the maximal run of chain members and the port where
// the chain terminates (into an anchor, a CircuitOutput tap, or dangling).
func walk(c *circuit.Circuit, start component.Component, anchors map[int64]bool, visited map[int64]bool) (chain []component.Component, exitPort *port.Port) {
	cur := start
	for {
		if anchors[cur.ID()] || visited[cur.ID()] {
			return chain, exitPort
		}
		visited[cur.ID()] = true
		chain = append(chain, cur)
		out := cur.Ports()[1] // non-anchor => exactly 1 input, 1 output
		exitPort = out
		if out.Connected.Kind != port.ToPort {
			return chain, exitPort
		}
		cur = c.OwnerOf(c.Port(out.Connected.Peer))
	}
}

// fuse replaces chain (entry to exit order) with a single CondensedComponent
// in c, splicing its boundary connections (upstream wire or CircuitInput
// laser; downstream wire, CircuitOutput tap, or dangling) onto the new
// component's single input/output port.
func fuse(c *circuit.Circuit, chain []component.Component, exitPort *port.Port, outputLineage map[port.Handle]port.Handle) {
	entryPort := chain[0].Ports()[0]

	var entryAnchorComp component.Component
	var entryAnchorIdx int
	entryKind := entryPort.Connected.Kind
	if entryKind == port.ToPort {
		peer := c.Port(entryPort.Connected.Peer)
		entryAnchorComp = c.OwnerOf(peer)
		entryAnchorIdx = peer.Index
	}
	entryLaser, hadLaser := c.InputLaser(entryPort.Self)

	var exitAnchorComp component.Component
	var exitAnchorIdx int
	exitKind := exitPort.Connected.Kind
	if exitKind == port.ToPort {
		peer := c.Port(exitPort.Connected.Peer)
		exitAnchorComp = c.OwnerOf(peer)
		exitAnchorIdx = peer.Index
	}

	for _, member := range chain {
		for _, p := range member.Ports() {
			c.DisconnectPort(p)
		}
	}
	for _, member := range chain {
		if err := c.Remove(member); err != nil {
			panic("condense: failed to remove fused chain member: " + err.Error())
		}
	}

	name := fmt.Sprintf("_chain_%d", chain[0].ID())
	cc := NewCondensedComponent(name, chain)
	if err := c.Add(cc); err != nil {
		panic("condense: failed to install fused chain: " + err.Error())
	}

	switch entryKind {
	case port.ToPort:
		if err := c.Connect(circuit.ByIndex(entryAnchorComp.Name(), entryAnchorIdx+1), circuit.ByIndex(cc.Name(), 1)); err != nil {
			panic("condense: failed to splice chain entry: " + err.Error())
		}
	case port.CircuitInput:
		if hadLaser {
			if err := c.SetInput(entryLaser, circuit.ByIndex(cc.Name(), 1)); err != nil {
				panic("condense: failed to splice circuit input: " + err.Error())
			}
		}
	}

	switch exitKind {
	case port.ToPort:
		if err := c.Connect(circuit.ByIndex(cc.Name(), 2), circuit.ByIndex(exitAnchorComp.Name(), exitAnchorIdx+1)); err != nil {
			panic("condense: failed to splice chain exit: " + err.Error())
		}
	case port.CircuitOutput:
		if err := c.SetOutput(circuit.ByIndex(cc.Name(), 2)); err != nil {
			panic("condense: failed to splice circuit output: " + err.Error())
		}
		outputLineage[cc.Ports()[1].Self] = exitPort.Self
	}
}
