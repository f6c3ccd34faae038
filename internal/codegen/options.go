// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegen builds the target model from parsed schemas: it accumulates
// the constraints of every schema position, classifies them, detects single
// inheritance, applies custom-class overrides and assembles one Target per
// top-level schema.
package codegen

import (
	"go.uber.org/zap"

	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// Options configure a Generator. The zero value generates Kotlin into the
// root package.
type Options struct {
	// BasePackage is the package of every target.
	BasePackage string
	// DerivePackages appends the input sub-directory to BasePackage.
	DerivePackages bool
	Profile        Profile
	CustomClasses  []CustomClass
	// BaseURI resolves relative URIs of custom classes. Defaults to "file:///".
	BaseURI string
	// KeepGoing collects per-target failures instead of aborting the run.
	KeepGoing bool
	Logger    *zap.SugaredLogger
}

// Input is one top-level schema to generate a target from.
type Input struct {
	Schema *jschema.Schema
	// ClassName overrides the name derived from Source.
	ClassName string
	// SubDir is the directory of the schema relative to the input root.
	SubDir string
	// Source is the originating file, empty for in-memory schemas.
	Source string
}

// Failure is a target that could not be generated.
type Failure struct {
	Input Input
	Err   error
}

// Result is the outcome of a generation run.
type Result struct {
	// Targets holds the generated targets in input order.
	Targets  []*model.Target
	Failures []Failure
}

// ExpandDefinitions returns one input per $defs or definitions entry of in,
// named after the entry.
func ExpandDefinitions(in Input) []Input {
	if in.Schema == nil {
		return nil
	}
	out := make([]Input, 0, len(in.Schema.Defs))
	for _, def := range in.Schema.Defs {
		out = append(out, Input{
			Schema:    def.Schema,
			ClassName: ToClassName(def.Name),
			SubDir:    in.SubDir,
			Source:    in.Source,
		})
	}
	return out
}
