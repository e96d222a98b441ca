// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

// PortRef identifies a port in the external API as (component name, port
// name-or-1-based-index). Exactly one of Alias or Index should be set;
// Index is used when Alias == "".
type PortRef struct {
	Component string
	Alias     string // port alias, if non-empty
	Index     int    // 1-based port index, used when Alias == ""
}

// ByIndex builds a PortRef addressing a port by its 1-based index.
func ByIndex(component string, index1Based int) PortRef {
	return PortRef{Component: component, Index: index1Based}
}

// ByAlias builds a PortRef addressing a port by its alias.
func ByAlias(component, alias string) PortRef {
	return PortRef{Component: component, Alias: alias}
}
