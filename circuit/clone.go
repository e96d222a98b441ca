// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import "github.com/photonlab/gofem-optics/port"

// Clone returns a structural copy of the circuit: every component is
// cloned (fresh port table, same physical parameters), the arena is
// rebuilt, and every connection, laser mapping and output designation is
// remapped onto the new ports. The original circuit is left untouched —
// this is what the scheduler condenses and solves, while caller-visible
// PortRefs keep resolving against the original circuit for result lookup.
func (c *Circuit) Clone() *Circuit {
	nc := New()
	oldToNewPort := make(map[port.Handle]port.Handle, len(c.ports))

	for _, comp := range c.order {
		cloned := comp.Clone()
		if err := nc.Add(cloned); err != nil {
			panic("circuit: clone produced an invalid component: " + err.Error())
		}
		for i, p := range comp.Ports() {
			oldToNewPort[p.Self] = cloned.Ports()[i].Self
		}
	}

	for _, comp := range c.order {
		newComp, _ := nc.Component(comp.Name())
		for i, p := range comp.Ports() {
			newPort := newComp.Ports()[i]
			switch p.Connected.Kind {
			case port.ToPort:
				if p.Self < p.Connected.Peer {
					peerOld := c.ports[p.Connected.Peer]
					peerNewComp := nc.ownerOf(nc.ports[oldToNewPort[peerOld.Self]])
					peerNewPort := nc.ports[oldToNewPort[peerOld.Self]]
					newComp.Connect(newPort, peerNewPort.Self)
					peerNewComp.Connect(peerNewPort, newPort.Self)
				}
			case port.CircuitInput:
				if err := nc.SetInput(c.inputs[p.Self], ByIndex(comp.Name(), p.Index+1)); err != nil {
					panic("circuit: clone failed to re-establish circuit input: " + err.Error())
				}
			case port.CircuitOutput:
				if err := nc.SetOutput(ByIndex(comp.Name(), p.Index+1)); err != nil {
					panic("circuit: clone failed to re-establish circuit output: " + err.Error())
				}
			}
		}
	}
	return nc
}
