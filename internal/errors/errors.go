// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package errors provides error handling for schemagen.
//
// It re-exports github.com/cockroachdb/errors and defines the error kinds
// reported while building a target model:
//
//	if errors.Is(err, errors.ErrUnsupportedSchema) {
//	    // the schema uses a construct that has no static type
//	}
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Error kinds. Use errors.Is to test for them; At wraps them with the
// schema position the error was detected at.
var (
	// ErrUnsupportedSchema indicates a boolean schema, a negation or a
	// non-allOf composition where a concrete type is required.
	ErrUnsupportedSchema = New("unsupported schema")

	// ErrDuplicateConstraint indicates an exclusive validator declared more
	// than once for one position with conflicting values.
	ErrDuplicateConstraint = New("duplicate constraint")

	// ErrUnresolvedReference indicates a $ref that matches no node or target.
	ErrUnresolvedReference = New("unresolved reference")

	// ErrInvalidDefaultValue indicates a default whose shape does not match
	// the declared type. It is recovered by discarding the default.
	ErrInvalidDefaultValue = New("invalid default value")

	// ErrNameCollision indicates two targets with the same name in one namespace.
	ErrNameCollision = New("name collision")

	// ErrInvalidOutputLocation indicates the output destination is not writable.
	ErrInvalidOutputLocation = New("invalid output location")
)

// At wraps kind with a message qualified by the schema position uri.
func At(kind error, uri string, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if uri == "" {
		return crdb.Wrap(kind, msg)
	}
	return crdb.Wrapf(kind, "%s: %s", uri, msg)
}

// Kind returns the error kind err wraps, or nil if it wraps none of them.
func Kind(err error) error {
	for _, kind := range []error{
		ErrUnsupportedSchema,
		ErrDuplicateConstraint,
		ErrUnresolvedReference,
		ErrInvalidDefaultValue,
		ErrNameCollision,
		ErrInvalidOutputLocation,
	} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}
