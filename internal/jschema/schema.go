// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides the parsed schema tree read by the generator,
// together with loading, $ref resolution and traversal utilities.
//
// A Schema is a node holding an ordered list of Elements. Element is a closed
// set of types; consumers switch over it exhaustively.
package jschema

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Type is a primitive kind named by the "type" keyword.
type Type string

// Primitive kinds.
const (
	TypeNull    Type = "null"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
)

// ParseType returns the Type named by s.
func ParseType(s string) (Type, bool) {
	switch t := Type(s); t {
	case TypeNull, TypeBoolean, TypeObject, TypeArray, TypeNumber, TypeString, TypeInteger:
		return t, true
	}
	return "", false
}

// Schema is one node of a parsed schema document.
type Schema struct {
	// URI is the absolute origin of the node, including the JSON pointer
	// fragment, e.g. "file:///person.schema.json#/properties/name".
	URI         string
	Title       string
	Description string

	// Bool is set for the boolean-literal schemas true and false.
	Bool *bool

	// Elements holds the keywords of the node in declaration order.
	Elements []Element

	// Defs holds the entries of $defs and definitions.
	Defs []Property
}

// Element is a keyword of a schema node.
type Element interface {
	element()
}

// Combination keywords.
const (
	AllOf = "allOf"
	AnyOf = "anyOf"
	OneOf = "oneOf"
)

// Not is the negation keyword.
type Not struct {
	Schema *Schema
}

// Combination is allOf, anyOf or oneOf.
type Combination struct {
	Keyword string
	Schemas []*Schema
}

// Ref is a $ref. Target is bound by the loader.
type Ref struct {
	URI    string
	Target *Schema
}

// Property is a named subschema.
type Property struct {
	Name   string
	Schema *Schema
}

// Properties is the properties keyword, in declaration order.
type Properties struct {
	Properties []Property
}

// Items is the items keyword. Tuple is set for the array form.
type Items struct {
	Schema *Schema
	Tuple  []*Schema
}

// Required is the required keyword.
type Required struct {
	Names []string
}

// TypeValidator is the type keyword.
type TypeValidator struct {
	Types []Type
}

// Format is the format keyword.
type Format struct {
	Name string
}

// Pattern is the pattern keyword, holding the uncompiled source.
type Pattern struct {
	Source string
}

// Enum is the enum keyword.
type Enum struct {
	Values []any
}

// Const is the const keyword.
type Const struct {
	Value any
}

// NumberKeyword names a numeric bound.
type NumberKeyword string

// Numeric bound keywords.
const (
	Minimum          NumberKeyword = "minimum"
	ExclusiveMinimum NumberKeyword = "exclusiveMinimum"
	Maximum          NumberKeyword = "maximum"
	ExclusiveMaximum NumberKeyword = "exclusiveMaximum"
	MultipleOf       NumberKeyword = "multipleOf"
)

// NumberBound is a numeric bound keyword.
type NumberBound struct {
	Keyword NumberKeyword
	Value   decimal.Decimal
}

// LengthKeyword names a string or array length limit.
type LengthKeyword string

// Length keywords.
const (
	MinLength LengthKeyword = "minLength"
	MaxLength LengthKeyword = "maxLength"
	MinItems  LengthKeyword = "minItems"
	MaxItems  LengthKeyword = "maxItems"
)

// LengthBound is a length limit keyword.
type LengthBound struct {
	Keyword LengthKeyword
	Value   int
}

// Default is the default keyword.
type Default struct {
	Value any
}

// Extension is an "x-" prefixed annotation keyword.
type Extension struct {
	Name  string
	Value any
}

// UniqueItems is the uniqueItems keyword.
type UniqueItems struct {
	Value bool
}

func (*Not) element()           {}
func (*Combination) element()   {}
func (*Ref) element()           {}
func (*Properties) element()    {}
func (*Items) element()         {}
func (*Required) element()      {}
func (*TypeValidator) element() {}
func (*Format) element()        {}
func (*Pattern) element()       {}
func (*Enum) element()          {}
func (*Const) element()         {}
func (*NumberBound) element()   {}
func (*LengthBound) element()   {}
func (*Default) element()       {}
func (*Extension) element()     {}
func (*UniqueItems) element()   {}

// BareRef returns the reference when the node consists of a single $ref and
// nothing else (annotations aside).
func (s *Schema) BareRef() *Ref {
	if s == nil || s.Bool != nil || len(s.Elements) != 1 {
		return nil
	}
	ref, _ := s.Elements[0].(*Ref)
	return ref
}

// Extension returns the value of the named extension declared directly on the node.
func (s *Schema) Extension(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	for _, e := range s.Elements {
		if ext, ok := e.(*Extension); ok && ext.Name == name {
			return ext.Value, true
		}
	}
	return nil, false
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#")
}

// IsInternalRef returns true if ref points into the current document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#")
}
