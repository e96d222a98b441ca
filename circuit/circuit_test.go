// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/photonlab/gofem-optics/component"
	"github.com/photonlab/gofem-optics/errkind"
	"github.com/photonlab/gofem-optics/field"
	"github.com/photonlab/gofem-optics/laser"
	"github.com/photonlab/gofem-optics/port"
)

func Test_add_duplicate_name(tst *testing.T) {

	//verbose()
	chk.PrintTitle("add_duplicate_name")

	c := New()
	bs1 := component.NewBeamSplitter("bs", 0.5)
	bs2 := component.NewBeamSplitter("bs", 0.5)
	mustAdd(tst, c, bs1)
	err := c.Add(bs2)
	if k, ok := errkind.Of(err); !ok || k != errkind.DuplicateComponentName {
		tst.Fatalf("expected DuplicateComponentName, got %v", err)
	}
}

func Test_add_same_identity(tst *testing.T) {

	//verbose()
	chk.PrintTitle("add_same_identity")

	c := New()
	bs := component.NewBeamSplitter("bs", 0.5)
	mustAdd(tst, c, bs)
	err := c.Add(bs)
	if k, ok := errkind.Of(err); !ok || k != errkind.DuplicateComponent {
		tst.Fatalf("expected DuplicateComponent, got %v", err)
	}
}

func Test_connect_then_disconnect_restores_none(tst *testing.T) {

	//verbose()
	chk.PrintTitle("connect_then_disconnect_restores_none")

	c := New()
	bs1 := component.NewBeamSplitter("bs1", 0.5)
	bs2 := component.NewBeamSplitter("bs2", 0.5)
	mustAdd(tst, c, bs1)
	mustAdd(tst, c, bs2)

	src := ByIndex("bs1", 3) // output
	dst := ByIndex("bs2", 1) // input
	mustOK(tst, c.Connect(src, dst))
	p1, _ := c.ResolvePort(src)
	p2, _ := c.ResolvePort(dst)
	chk.IntAssert(int(p1.Connected.Kind), int(port.ToPort))
	chk.IntAssert(int(p2.Connected.Kind), int(port.ToPort))
	chk.IntAssert(bs1.OutDegree(), 1)
	chk.IntAssert(bs2.InDegree(), 1)

	mustOK(tst, c.Disconnect(src))
	chk.IntAssert(int(p1.Connected.Kind), int(port.None))
	chk.IntAssert(int(p2.Connected.Kind), int(port.None))
	chk.IntAssert(bs1.OutDegree(), 0)
	chk.IntAssert(bs2.InDegree(), 0)
}

func Test_self_connection_rejected(tst *testing.T) {

	//verbose()
	chk.PrintTitle("self_connection_rejected")

	c := New()
	bs := component.NewBeamSplitter("bs", 0.5)
	mustAdd(tst, c, bs)
	err := c.Connect(ByIndex("bs", 1), ByIndex("bs", 1))
	if k, ok := errkind.Of(err); !ok || k != errkind.SelfConnection {
		tst.Fatalf("expected SelfConnection, got %v", err)
	}
}

func Test_duplicate_alias_rejected(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duplicate_alias_rejected")

	bs := component.NewBeamSplitter("bs", 0.5)
	mustOK(tst, bs.SetAlias(1, "in"))
	err := bs.SetAlias(2, "in")
	if k, ok := errkind.Of(err); !ok || k != errkind.DuplicateAlias {
		tst.Fatalf("expected DuplicateAlias, got %v", err)
	}
}

func Test_unknown_alias_rejected(tst *testing.T) {

	//verbose()
	chk.PrintTitle("unknown_alias_rejected")

	bs := component.NewBeamSplitter("bs", 0.5)
	_, err := bs.Search("missing")
	if k, ok := errkind.Of(err); !ok || k != errkind.MissingAlias {
		tst.Fatalf("expected MissingAlias, got %v", err)
	}
}

func Test_set_input_conflicts_with_output(tst *testing.T) {

	//verbose()
	chk.PrintTitle("set_input_conflicts_with_output")

	c := New()
	bs := component.NewBeamSplitter("bs", 0.5)
	mustAdd(tst, c, bs)
	mustOK(tst, c.SetOutput(ByIndex("bs", 3)))
	l := laser.Monochromatic(field.JonesVec{EH: 1}, 1550e-9)
	err := c.SetInput(l, ByIndex("bs", 3))
	if k, ok := errkind.Of(err); !ok || k != errkind.ConflictingConnection {
		tst.Fatalf("expected ConflictingConnection, got %v", err)
	}
}

func Test_remove_requires_no_connections(tst *testing.T) {

	//verbose()
	chk.PrintTitle("remove_requires_no_connections")

	c := New()
	bs1 := component.NewBeamSplitter("bs1", 0.5)
	bs2 := component.NewBeamSplitter("bs2", 0.5)
	mustAdd(tst, c, bs1)
	mustAdd(tst, c, bs2)
	mustOK(tst, c.Connect(ByIndex("bs1", 3), ByIndex("bs2", 1)))
	err := c.Remove(bs1)
	if k, ok := errkind.Of(err); !ok || k != errkind.ComponentStillConnected {
		tst.Fatalf("expected ComponentStillConnected, got %v", err)
	}
	mustOK(tst, c.Disconnect(ByIndex("bs1", 3)))
	mustOK(tst, c.Remove(bs1))
	if _, ok := c.Component("bs1"); ok {
		tst.Fatalf("removed component should not be found by name")
	}
}

func Test_add_remove_is_noop_on_list(tst *testing.T) {

	//verbose()
	chk.PrintTitle("add_remove_is_noop_on_list")

	c := New()
	bs := component.NewBeamSplitter("bs", 0.5)
	mustAdd(tst, c, bs)
	before := len(c.Components())
	mustOK(tst, c.Remove(bs))
	chk.IntAssert(len(c.Components()), before-1)
	if _, ok := c.Component("bs"); ok {
		tst.Fatalf("name map should forget removed component")
	}
}

func Test_connect_demotes_existing_tag(tst *testing.T) {

	//verbose()
	chk.PrintTitle("connect_demotes_existing_tag")

	c := New()
	bs1 := component.NewBeamSplitter("bs1", 0.5)
	bs2 := component.NewBeamSplitter("bs2", 0.5)
	mustAdd(tst, c, bs1)
	mustAdd(tst, c, bs2)
	l := laser.Monochromatic(field.JonesVec{EH: 1}, 1550e-9)
	mustOK(tst, c.SetInput(l, ByIndex("bs1", 1)))
	mustOK(tst, c.Connect(ByIndex("bs1", 1), ByIndex("bs2", 1)))
	chk.IntAssert(len(c.Inputs()), 0)
	p, _ := c.ResolvePort(ByIndex("bs1", 1))
	chk.IntAssert(int(p.Connected.Kind), int(port.ToPort))
}

func Test_clone_preserves_topology(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clone_preserves_topology")

	c := New()
	bs1 := component.NewBeamSplitter("bs1", 0.5)
	bs2 := component.NewBeamSplitter("bs2", 0.5)
	mustAdd(tst, c, bs1)
	mustAdd(tst, c, bs2)
	l := laser.Monochromatic(field.JonesVec{EH: 1}, 1550e-9)
	mustOK(tst, c.SetInput(l, ByIndex("bs1", 1)))
	mustOK(tst, c.Connect(ByIndex("bs1", 3), ByIndex("bs2", 1)))
	mustOK(tst, c.SetOutput(ByIndex("bs2", 3)))

	clone := c.Clone()
	chk.IntAssert(len(clone.Components()), 2)
	chk.IntAssert(len(clone.Inputs()), 1)
	chk.IntAssert(len(clone.Outputs()), 1)
	p, err := clone.ResolvePort(ByIndex("bs2", 1))
	if err != nil {
		tst.Fatalf("resolve: %v", err)
	}
	chk.IntAssert(int(p.Connected.Kind), int(port.ToPort))

	// mutating the original must not affect the clone
	mustOK(tst, c.Disconnect(ByIndex("bs1", 3)))
	p2, _ := clone.ResolvePort(ByIndex("bs2", 1))
	chk.IntAssert(int(p2.Connected.Kind), int(port.ToPort))
}

func mustAdd(tst *testing.T, c *Circuit, comp component.Component) {
	tst.Helper()
	if err := c.Add(comp); err != nil {
		tst.Fatalf("add %s: %v", comp.Name(), err)
	}
}

func mustOK(tst *testing.T, err error) {
	tst.Helper()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}
