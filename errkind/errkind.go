// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errkind classifies the errors raised by the circuit builder and
// solver so callers can distinguish them with errors.Is, the way a caller
// of gofem distinguishes a missing-material error from a singular-Jacobian
// error without parsing message text.
package errkind

import "fmt"

// Kind names one of the error categories from the structural, physical,
// configuration and numeric families.
type Kind string

const (
	DuplicateComponent     Kind = "DuplicateComponent"
	DuplicateComponentName Kind = "DuplicateComponentName"
	MissingComponent       Kind = "MissingComponent"
	MissingAlias           Kind = "MissingAlias"
	DuplicateAlias         Kind = "DuplicateAlias"
	MissingPort            Kind = "MissingPort"
	SelfConnection         Kind = "SelfConnection"
	ConflictingConnection  Kind = "ConflictingConnection"
	ComponentStillConnected Kind = "ComponentStillConnected"

	Passivity Kind = "Passivity"

	InvalidLightFunction Kind = "InvalidLightFunction"
	InvalidLightType     Kind = "InvalidLightType"
	EmptyInterface       Kind = "EmptyInterface"

	IllConditionedChain Kind = "IllConditionedChain"
	SingularSystem      Kind = "SingularSystem"
)

// Error is a formatted error tagged with a Kind. Callers test the kind with
// errors.Is(err, errkind.Sentinel(kind)) or by comparing the Kind returned
// by Of(err).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is reports whether target carries the same Kind, so errors.Is(err,
// errkind.Sentinel(DuplicateAlias)) works without string matching.
func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	if !ok {
		return false
	}
	return o.Kind == e.Kind
}

// New builds a Kind-tagged error with a chk.Err-style formatted message.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel returns a bare Error carrying only kind, suitable as the target
// of errors.Is to test which kind an error belongs to.
func Sentinel(kind Kind) error {
	return &Error{Kind: kind}
}

// Of extracts the Kind from err, returning ("", false) if err is not one of
// ours (e.g. it is a bare numeric error from the linear-algebra layer).
func Of(err error) (Kind, bool) {
	e, ok := err.(*Error)
	if !ok {
		return "", false
	}
	return e.Kind, true
}
