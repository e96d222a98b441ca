// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condense

import "github.com/photonlab/gofem-optics/component"

// CondensedComponent stands in for a maximal chain of 1-in/1-out devices
// fused by the Redheffer star product. It keeps the original chain (rather
// than a cached matrix) so the scheduler can re-evaluate the fused 4x4 at
// any wavelength without repeating chain discovery.
type CondensedComponent struct {
	*component.Base
	Chain []component.Component
}

// NewCondensedComponent wraps chain (at least 2 components, entry to exit
// order) behind a single 1-in/1-out component identity.
func NewCondensedComponent(name string, chain []component.Component) *CondensedComponent {
	cc := &CondensedComponent{Base: component.NewBase(name, 1, 1), Chain: chain}
	return cc
}

func (c *CondensedComponent) NumInputs() int  { return 1 }
func (c *CondensedComponent) NumOutputs() int { return 1 }

// SMatrix re-folds the chain at wavelengthMeters on every call rather than
// caching: a varying-wavelength sweep needs the fold redone per sample
// anyway, and a constant-wavelength run only pays for it once since the
// scheduler builds S a single time for such a run.
func (c *CondensedComponent) SMatrix(wavelengthMeters float64) ([][]complex128, error) {
	return Fold(c.Chain, wavelengthMeters)
}

// Clone deep-clones every component in the fused chain, independent of the
// original chain members (which, by the time a CondensedComponent exists,
// have already been removed from the working circuit).
func (c *CondensedComponent) Clone() component.Component {
	chain := make([]component.Component, len(c.Chain))
	for i, member := range c.Chain {
		chain[i] = member.Clone()
	}
	return NewCondensedComponent(c.Name(), chain)
}
