// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace is a thin verbose-logging wrapper over gosl/io's colored
// Pf family, mirroring how fem.Domain gates its own io.Pf calls behind a
// Verbose flag rather than introducing a leveled logger.
package trace

import "github.com/cpmech/gosl/io"

// Tracer gates a circuit run's diagnostic output behind Verbose, the same
// switch fem.Domain carries.
type Tracer struct {
	Verbose bool
}

// Pf prints a plain trace line if Verbose is set.
func (t Tracer) Pf(format string, args ...interface{}) {
	if t.Verbose {
		io.Pf(format, args...)
	}
}

// Stage announces entry into a named phase of the solve (condense, assemble,
// select, solve), orange per gofem's informational convention.
func (t Tracer) Stage(format string, args ...interface{}) {
	if t.Verbose {
		io.Pforan(format, args...)
	}
}

// Warn prints a yellow warning line regardless of Verbose (a caller that
// wants to be warned about a degraded condition should see it either way).
func (t Tracer) Warn(format string, args ...interface{}) {
	io.Pfyel(format, args...)
}
