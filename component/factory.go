// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package component

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/photonlab/gofem-optics/errkind"
)

// AllocatorFunc builds a Component from a name and a named parameter list,
// the JSON/declarative-load counterpart to the typed NewXxx constructors.
// Mirrors ele.AllocatorType / ele.SetAllocator.
type AllocatorFunc func(name string, prms dbf.Params) (Component, error)

var allocators = make(map[string]AllocatorFunc)

// Register installs the allocator for a type name; called from each
// concrete component's init().
func Register(typeName string, fn AllocatorFunc) {
	if _, dup := allocators[typeName]; dup {
		panic("component: duplicate registration for type " + typeName)
	}
	allocators[typeName] = fn
}

// FromParams builds a Component of the given registered type from a named
// parameter list, for declarative (JSON-loaded) topologies.
func FromParams(typeName, name string, prms dbf.Params) (Component, error) {
	fn, ok := allocators[typeName]
	if !ok {
		return nil, errkind.New(errkind.MissingComponent, "component: no type registered as %q", typeName)
	}
	c, err := fn(name, prms)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errkind.New(errkind.MissingComponent, "component: allocator for %q returned nil", typeName)
	}
	return c, nil
}

// findF64 returns the value of the named float parameter, or def if absent.
func findF64(prms dbf.Params, name string, def float64) float64 {
	for _, p := range prms {
		if p.N == name {
			return p.V
		}
	}
	return def
}
