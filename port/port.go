// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package port implements port identity and the Connection tagged union
// that records what a port is wired to: nothing, another port, a circuit
// laser injection site, or a circuit detector tap.
package port

import "fmt"

// Kind distinguishes input ports (where light arrives at a component) from
// output ports (where it leaves).
type Kind int

const (
	Input Kind = iota
	Output
)

func (k Kind) String() string {
	if k == Input {
		return "input"
	}
	return "output"
}

// ConnKind tags the variant held by a Connection.
type ConnKind int

const (
	// None: the port is dangling.
	None ConnKind = iota
	// ToPort: internal wire to another port, identified by a stable handle.
	ToPort
	// CircuitInput: this port is a circuit-level laser injection site.
	CircuitInput
	// CircuitOutput: this port is a circuit-level detector tap.
	CircuitOutput
)

// Handle is a stable arena index identifying a port across a circuit's
// lifetime. It is never reused while the owning port is live.
type Handle int

// Invalid is the sentinel for an unset Handle. It is -1, not the zero
// value: Handle 0 is a valid arena index.
const Invalid Handle = -1

// Connection is a tagged union: exactly one of its fields is meaningful,
// selected by Kind. There is no shared identity object for the
// CircuitInput/CircuitOutput tags — they are unit variants.
type Connection struct {
	Kind ConnKind
	Peer Handle // valid only when Kind == ToPort
}

// NoneConn is the dangling connection.
var NoneConn = Connection{Kind: None}

// IsWired reports whether the connection is an internal ToPort wire.
func (c Connection) IsWired() bool { return c.Kind == ToPort }

// IsTag reports whether the connection is a CircuitInput/CircuitOutput tag.
func (c Connection) IsTag() bool { return c.Kind == CircuitInput || c.Kind == CircuitOutput }

// IsNone reports whether the connection is dangling.
func (c Connection) IsNone() bool { return c.Kind == None }

func (c Connection) String() string {
	switch c.Kind {
	case None:
		return "none"
	case ToPort:
		return fmt.Sprintf("->%d", c.Peer)
	case CircuitInput:
		return "circuit-input"
	case CircuitOutput:
		return "circuit-output"
	}
	return "?"
}

// Port carries a stable identity, its owning component's ID, its kind,
// an optional alias, and the connection currently installed on it.
type Port struct {
	Self      Handle // this port's own handle within the circuit arena
	Owner     int    // owning component's ID (component.Component.ID() as an int)
	Kind      Kind
	Alias     string // "" if unaliased
	Index     int    // 0-based position within the owning component's port list
	Connected Connection
}

// NewPort creates a fresh, dangling port.
func NewPort(self Handle, owner int, kind Kind, index int) *Port {
	return &Port{Self: self, Owner: owner, Kind: kind, Index: index, Connected: NoneConn}
}
