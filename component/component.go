// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package component defines the component registry: the capability set
// every optical device must implement (ports in/out, a pure per-wavelength
// scattering matrix), the common port/alias/degree bookkeeping shared by
// every concrete device (embedded as Base), and a factory keyed by type
// name mirroring gofem's ele.SetAllocator/ele.New registry.
package component

import (
	"sync/atomic"

	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/port"
)

// Component is the capability set every device in the library implements:
// a fixed number of input/output ports and a linear, wavelength-only
// scattering function, agnostic of the circuit graph it is wired into.
type Component interface {
	ID() int64
	Name() string
	NumInputs() int
	NumOutputs() int

	// SMatrix returns the dense 2N x 2N complex scattering matrix at the
	// given wavelength (meters). Row/col 2k is the H-mode of port k, 2k+1
	// is the V-mode; inputs occupy [0, 2*NumInputs), outputs follow. Every
	// concrete device in the library is a pure closed-form function of
	// wavelength and never errors; the error return exists for
	// CondensedComponent, whose Redheffer re-fold at a new wavelength can
	// hit a singular chain interior (errkind.IllConditionedChain).
	SMatrix(wavelengthMeters float64) ([][]complex128, error)

	// Ports returns the full port list, inputs first.
	Ports() []*port.Port
	// Port resolves a 1-based external port index.
	Port(index1Based int) (*port.Port, error)
	// SetAlias installs an alias for the 1-based port index.
	SetAlias(index1Based int, alias string) error
	// Search resolves a port by its installed alias.
	Search(alias string) (*port.Port, error)

	InDegree() int
	OutDegree() int

	// Clone returns a fresh copy of this component (same physical
	// parameters, same port count/kind) with an unconnected port table and
	// no owner. Used by circuit.Clone to build the private working copy a
	// simulation run condenses.
	Clone() Component

	// Connect/Disconnect/SetTag mutate one side of a port's connection and
	// its owner's degree counters; the circuit package is responsible for
	// the symmetric update on the peer.
	Connect(p *port.Port, peer port.Handle)
	Disconnect(p *port.Port)
	SetTag(p *port.Port, kind port.ConnKind)

	// Owner/SetOwner/ClearOwner implement the circuit back-pointer (weak
	// reference: the owning *circuit.Circuit type-erased as interface{}, to
	// avoid an import cycle). Only the circuit package is expected to call
	// SetOwner/ClearOwner.
	Owner() (owner interface{}, owned bool)
	SetOwner(owner interface{})
	ClearOwner()
}

var nextID int64

func newID() int64 { return atomic.AddInt64(&nextID, 1) }

// Base implements the common port table, alias map, degree counters and
// circuit back-pointer shared by every concrete component. Concrete types
// embed Base and supply NumInputs/NumOutputs/SMatrix themselves.
type Base struct {
	id       int64
	name     string
	ports    []*port.Port
	aliases  map[string]*port.Port
	inDeg    int
	outDeg   int
	owner    interface{}
	hasOwner bool
}

// NewBase allocates a component's port table: numIn input ports (index
// 0..numIn-1) followed by numOut output ports.
func NewBase(name string, numIn, numOut int) *Base {
	b := &Base{
		id:      newID(),
		name:    name,
		aliases: make(map[string]*port.Port),
	}
	for i := 0; i < numIn; i++ {
		b.ports = append(b.ports, port.NewPort(port.Handle(i), int(b.id), port.Input, i))
	}
	for i := 0; i < numOut; i++ {
		b.ports = append(b.ports, port.NewPort(port.Handle(numIn+i), int(b.id), port.Output, numIn+i))
	}
	return b
}

func (b *Base) ID() int64   { return b.id }
func (b *Base) Name() string { return b.name }

func (b *Base) Ports() []*port.Port { return b.ports }

// Port resolves a 1-based external port index into the internal port table.
func (b *Base) Port(index1Based int) (*port.Port, error) {
	i := index1Based - 1
	if i < 0 || i >= len(b.ports) {
		return nil, errkind.New(errkind.MissingPort, "component %q has no port #%d", b.name, index1Based)
	}
	return b.ports[i], nil
}

// SetAlias installs alias for the 1-based port index. Aliases are unique
// within a component across both port directions.
func (b *Base) SetAlias(index1Based int, alias string) error {
	if _, dup := b.aliases[alias]; dup {
		return errkind.New(errkind.DuplicateAlias, "component %q already has alias %q", b.name, alias)
	}
	p, err := b.Port(index1Based)
	if err != nil {
		return err
	}
	if p.Alias != "" {
		delete(b.aliases, p.Alias)
	}
	p.Alias = alias
	b.aliases[alias] = p
	return nil
}

// Search resolves alias to its port.
func (b *Base) Search(alias string) (*port.Port, error) {
	p, ok := b.aliases[alias]
	if !ok {
		return nil, errkind.New(errkind.MissingAlias, "component %q has no alias %q", b.name, alias)
	}
	return p, nil
}

func (b *Base) InDegree() int  { return b.inDeg }
func (b *Base) OutDegree() int { return b.outDeg }

// connect installs a ToPort connection on p (one side only); the caller
// (component.Connect or circuit.Connect) is responsible for the symmetric
// update on the peer. The degree counter only increments when the prior
// connection was None.
func (b *Base) connect(p *port.Port, peer port.Handle) {
	wasNone := p.Connected.IsNone()
	p.Connected = port.Connection{Kind: port.ToPort, Peer: peer}
	if wasNone {
		b.bump(p.Kind, 1)
	}
}

// setTag installs a CircuitInput/CircuitOutput tag on p, incrementing the
// degree counter only if the prior connection was None.
func (b *Base) setTag(p *port.Port, kind port.ConnKind) {
	wasNone := p.Connected.IsNone()
	p.Connected = port.Connection{Kind: kind}
	if wasNone {
		b.bump(p.Kind, 1)
	}
}

// disconnect clears p's connection, decrementing the degree counter if it
// was previously non-None.
func (b *Base) disconnect(p *port.Port) {
	if !p.Connected.IsNone() {
		b.bump(p.Kind, -1)
	}
	p.Connected = port.NoneConn
}

func (b *Base) bump(k port.Kind, delta int) {
	if k == port.Input {
		b.inDeg += delta
	} else {
		b.outDeg += delta
	}
}

func (b *Base) Owner() (interface{}, bool) { return b.owner, b.hasOwner }
func (b *Base) SetOwner(owner interface{}) { b.owner = owner; b.hasOwner = true }
func (b *Base) ClearOwner()                { b.hasOwner = false; b.owner = nil }

// Connect installs a ToPort connection from the local port (by 1-based
// index or alias resolved by the caller) to peer, updating the local side
// only. Exported so the circuit package can drive both sides of a wire.
func (b *Base) Connect(p *port.Port, peer port.Handle) { b.connect(p, peer) }

// SetTag installs a CircuitInput/CircuitOutput tag on p.
func (b *Base) SetTag(p *port.Port, kind port.ConnKind) { b.setTag(p, kind) }

// Disconnect clears p's connection and decrements its degree counter.
func (b *Base) Disconnect(p *port.Port) { b.disconnect(p) }
