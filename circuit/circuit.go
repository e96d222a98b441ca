// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circuit implements the graph/ownership model binding
// components, ports, connections and circuit-level inputs/outputs, with
// the structural invariants from the builder API (mirrors gofem's
// fem.Domain as the owner of elements/nodes, generalized to optical
// components/ports).
package circuit

import (
	"sync/atomic"

	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/laser"
	"github.com/photonlab/gofem-optics/port"
)

var nextCircuitID int64

// Circuit owns a set of components by name, the wiring between their
// ports, and the circuit-level laser inputs and detector outputs.
type Circuit struct {
	id int64

	order  []component.Component // insertion order
	byName map[string]component.Component
	byID   map[int64]component.Component

	ports          map[port.Handle]*port.Port // every port across every component, by global handle
	nextPortHandle port.Handle

	inputs      map[port.Handle]laser.Laser
	inputsOrder []port.Handle // SetInput order, as returned by Inputs()

	outputs []port.Handle // ordered list of circuit-output ports
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{
		id:     atomic.AddInt64(&nextCircuitID, 1),
		byName: make(map[string]component.Component),
		byID:   make(map[int64]component.Component),
		ports:  make(map[port.Handle]*port.Port),
		inputs: make(map[port.Handle]laser.Laser),
	}
}

// ID returns the circuit's stable id.
func (c *Circuit) ID() int64 { return c.id }

// Components returns the components in insertion order. The slice is
// owned by the circuit; callers must not mutate it.
func (c *Circuit) Components() []component.Component { return c.order }

// Component looks up a component by name.
func (c *Circuit) Component(name string) (component.Component, bool) {
	comp, ok := c.byName[name]
	return comp, ok
}

// Add installs a component, assigning global port handles and setting its
// circuit back-pointer. Fails with DuplicateComponent if the same identity
// (by ID) is already present, or DuplicateComponentName if a different
// component already uses the name.
func (c *Circuit) Add(comp component.Component) error {
	if existing, ok := c.byName[comp.Name()]; ok {
		if existing.ID() == comp.ID() {
			return errkind.New(errkind.DuplicateComponent, "circuit: component %q already added", comp.Name())
		}
		return errkind.New(errkind.DuplicateComponentName, "circuit: name %q already used by a different component", comp.Name())
	}
	if _, ok := c.byID[comp.ID()]; ok {
		return errkind.New(errkind.DuplicateComponent, "circuit: component %q already added", comp.Name())
	}
	for _, p := range comp.Ports() {
		p.Self = c.nextPortHandle
		c.nextPortHandle++
		c.ports[p.Self] = p
	}
	comp.SetOwner(c)
	c.byName[comp.Name()] = comp
	c.byID[comp.ID()] = comp
	c.order = append(c.order, comp)
	return nil
}

// Remove uninstalls a component. It is a precondition that the component
// has no live connections (ComponentStillConnected otherwise) — cascading
// disconnect is not implemented.
func (c *Circuit) Remove(comp component.Component) error {
	if _, ok := c.byName[comp.Name()]; !ok {
		return errkind.New(errkind.MissingComponent, "circuit: no such component %q", comp.Name())
	}
	for _, p := range comp.Ports() {
		if !p.Connected.IsNone() {
			return errkind.New(errkind.ComponentStillConnected, "circuit: component %q still has live connections on port %d", comp.Name(), p.Index+1)
		}
	}
	for _, p := range comp.Ports() {
		delete(c.ports, p.Self)
	}
	delete(c.byName, comp.Name())
	delete(c.byID, comp.ID())
	for i, existing := range c.order {
		if existing.ID() == comp.ID() {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	comp.ClearOwner()
	return nil
}

// resolve resolves a PortRef into its owning component and port.
func (c *Circuit) resolve(ref PortRef) (component.Component, *port.Port, error) {
	comp, ok := c.byName[ref.Component]
	if !ok {
		return nil, nil, errkind.New(errkind.MissingComponent, "circuit: no such component %q", ref.Component)
	}
	if ref.Alias != "" {
		p, err := comp.Search(ref.Alias)
		return comp, p, err
	}
	p, err := comp.Port(ref.Index)
	return comp, p, err
}

// demote clears a CircuitInput/CircuitOutput tag on p (removing the laser
// mapping or output-list entry) before the port is reconnected elsewhere.
// No-op if p is not currently tagged.
func (c *Circuit) demote(owner component.Component, p *port.Port) {
	switch p.Connected.Kind {
	case port.CircuitInput:
		delete(c.inputs, p.Self)
		c.inputsOrder = removeHandle(c.inputsOrder, p.Self)
	case port.CircuitOutput:
		c.outputs = removeHandle(c.outputs, p.Self)
	default:
		return
	}
	owner.Disconnect(p)
}

// disconnectWired fully clears a ToPort wire on both sides, decrementing
// both owners' degree counters. No-op if p is not currently wired.
func (c *Circuit) disconnectWired(owner component.Component, p *port.Port) {
	if p.Connected.Kind != port.ToPort {
		return
	}
	peer := c.ports[p.Connected.Peer]
	peerOwner := c.ownerOf(peer)
	owner.Disconnect(p)
	if peerOwner != nil {
		peerOwner.Disconnect(peer)
	}
}

// ownerOf returns the component owning p. Ports do not store a direct
// component pointer (only the raw numeric owner id) to keep the port
// package free of an import on component.
func (c *Circuit) ownerOf(p *port.Port) component.Component {
	return c.byID[int64(p.Owner)]
}

// Connect installs a symmetric internal wire between src and dst. If
// either port currently holds a CircuitInput/CircuitOutput tag, it is
// demoted first; if either port is already wired elsewhere, that wire is
// fully torn down first so invariant 2 (ToPort is always symmetric) never
// breaks.
func (c *Circuit) Connect(src, dst PortRef) error {
	srcComp, srcPort, err := c.resolve(src)
	if err != nil {
		return err
	}
	dstComp, dstPort, err := c.resolve(dst)
	if err != nil {
		return err
	}
	if srcPort.Self == dstPort.Self {
		return errkind.New(errkind.SelfConnection, "circuit: cannot connect %q to itself", src.Component)
	}
	c.demote(srcComp, srcPort)
	c.demote(dstComp, dstPort)
	c.disconnectWired(srcComp, srcPort)
	c.disconnectWired(dstComp, dstPort)
	srcComp.Connect(srcPort, dstPort.Self)
	dstComp.Connect(dstPort, srcPort.Self)
	return nil
}

// Disconnect clears the connection on the referenced port. If it was an
// internal ToPort wire, the peer is cleared too and both degree counters
// are decremented; if it was a CircuitInput/CircuitOutput tag, the
// corresponding laser mapping or output-list entry is removed.
func (c *Circuit) Disconnect(ref PortRef) error {
	comp, p, err := c.resolve(ref)
	if err != nil {
		return err
	}
	switch p.Connected.Kind {
	case port.ToPort:
		c.disconnectWired(comp, p)
	case port.CircuitInput, port.CircuitOutput:
		c.demote(comp, p)
	}
	return nil
}

// SetInput designates ref as a circuit-level laser injection site. Fails
// with ConflictingConnection if ref is already a CircuitOutput.
func (c *Circuit) SetInput(las laser.Laser, ref PortRef) error {
	comp, p, err := c.resolve(ref)
	if err != nil {
		return err
	}
	if p.Connected.Kind == port.CircuitOutput {
		return errkind.New(errkind.ConflictingConnection, "circuit: port is already a circuit output")
	}
	c.disconnectWired(comp, p)
	if _, already := c.inputs[p.Self]; !already {
		c.inputsOrder = append(c.inputsOrder, p.Self)
	}
	c.inputs[p.Self] = las
	comp.SetTag(p, port.CircuitInput)
	return nil
}

// SetOutput designates ref as a circuit-level detector tap. Fails with
// ConflictingConnection if ref is already a CircuitInput.
func (c *Circuit) SetOutput(ref PortRef) error {
	comp, p, err := c.resolve(ref)
	if err != nil {
		return err
	}
	if p.Connected.Kind == port.CircuitInput {
		return errkind.New(errkind.ConflictingConnection, "circuit: port is already a circuit input")
	}
	c.disconnectWired(comp, p)
	already := false
	for _, h := range c.outputs {
		if h == p.Self {
			already = true
			break
		}
	}
	if !already {
		c.outputs = append(c.outputs, p.Self)
	}
	comp.SetTag(p, port.CircuitOutput)
	return nil
}

// Inputs returns the circuit-input ports in stable insertion order, paired
// with their laser.
func (c *Circuit) Inputs() []struct {
	Port  *port.Port
	Laser laser.Laser
} {
	out := make([]struct {
		Port  *port.Port
		Laser laser.Laser
	}, 0, len(c.inputsOrder))
	for _, h := range c.inputsOrder {
		out = append(out, struct {
			Port  *port.Port
			Laser laser.Laser
		}{c.ports[h], c.inputs[h]})
	}
	return out
}

// Outputs returns the circuit-output ports in designation order.
func (c *Circuit) Outputs() []*port.Port {
	out := make([]*port.Port, 0, len(c.outputs))
	for _, h := range c.outputs {
		out = append(out, c.ports[h])
	}
	return out
}

// Port looks up a port by its global handle.
func (c *Circuit) Port(h port.Handle) *port.Port { return c.ports[h] }

// OwnerOf returns the component owning p. Exported for the condense package,
// which walks the port graph directly rather than through PortRef.
func (c *Circuit) OwnerOf(p *port.Port) component.Component { return c.ownerOf(p) }

// InputLaser returns the laser mapped to a CircuitInput port, if any.
func (c *Circuit) InputLaser(h port.Handle) (laser.Laser, bool) {
	l, ok := c.inputs[h]
	return l, ok
}

// DisconnectPort clears whatever connection p currently holds, the same way
// Disconnect(ref) does but addressed by port identity instead of PortRef —
// used by the condense pass, which walks the port graph directly. No-op if
// p has no owner (already removed) or is already dangling.
func (c *Circuit) DisconnectPort(p *port.Port) {
	comp := c.ownerOf(p)
	if comp == nil {
		return
	}
	switch p.Connected.Kind {
	case port.ToPort:
		c.disconnectWired(comp, p)
	case port.CircuitInput, port.CircuitOutput:
		c.demote(comp, p)
	}
}

// ResolvePort exposes ref resolution for packages (assembler, result) that
// need to map an external PortRef to the internal port without going
// through a mutating builder call.
func (c *Circuit) ResolvePort(ref PortRef) (*port.Port, error) {
	_, p, err := c.resolve(ref)
	return p, err
}

func removeHandle(hs []port.Handle, h port.Handle) []port.Handle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
