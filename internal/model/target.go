// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package model

import (
	"slices"
	"strings"
)

// InMemorySource is the Source of targets built from schemas that were not
// read from a file.
const InMemorySource = "<in-memory>"

// Kind distinguishes classes from enumerations.
type Kind int

// Target kinds.
const (
	KindClass Kind = iota
	KindEnum
)

func (k Kind) String() string {
	if k == KindEnum {
		return "enum"
	}
	return "class"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ClassRef is a fully qualified class name.
type ClassRef struct {
	Package string
	Name    string
}

// ParseClassRef splits a dotted qualified name at its last dot.
func ParseClassRef(qualified string) ClassRef {
	i := strings.LastIndex(qualified, ".")
	if i < 0 {
		return ClassRef{Name: qualified}
	}
	return ClassRef{Package: qualified[:i], Name: qualified[i+1:]}
}

// String returns the qualified name.
func (r ClassRef) String() string {
	if r.Package == "" {
		return r.Name
	}
	return r.Package + "." + r.Name
}

// Target is one generated class or enumeration.
type Target struct {
	Name        string
	Package     string
	Kind        Kind
	FileSuffix  string
	Source      string
	URI         string
	Description string

	// Nested holds the helper types owned by this target.
	Nested []*Target
	// Imports holds qualified names, sorted and without duplicates.
	Imports []string
	Base    *Target
	// Parent is the target owning a nested target, nil at top level.
	Parent *Target
	// Statics holds the constants shared by this target and its nested types.
	Statics    []StaticField
	EnumValues []string

	Constraints *Constraints
}

// Ref returns the qualified name of the target.
func (t *Target) Ref() ClassRef {
	return ClassRef{Package: t.Package, Name: t.Name}
}

// QualifiedName returns the package-qualified class name.
func (t *Target) QualifiedName() string {
	return t.Ref().String()
}

// AddImport records a qualified import.
func (t *Target) AddImport(qualified string) {
	i, found := slices.BinarySearch(t.Imports, qualified)
	if found {
		return
	}
	t.Imports = slices.Insert(t.Imports, i, qualified)
}

// Properties returns every property position of the target.
func (t *Target) Properties() []*Constraints {
	if t.Constraints == nil {
		return nil
	}
	return t.Constraints.Properties
}

// OwnProperties returns the properties declared by the target itself,
// excluding those inherited from Base.
func (t *Target) OwnProperties() []*Constraints {
	var out []*Constraints
	for _, p := range t.Properties() {
		if !p.Inherited {
			out = append(out, p)
		}
	}
	return out
}

// InheritedProperties returns the properties provided by Base.
func (t *Target) InheritedProperties() []*Constraints {
	var out []*Constraints
	for _, p := range t.Properties() {
		if p.Inherited {
			out = append(out, p)
		}
	}
	return out
}

// LocalPath returns the name of the target as seen from the top-level target
// that owns it: "Line" for a direct helper, "Line.Discount" one level deeper.
// Top-level targets return their own name.
func (t *Target) LocalPath() string {
	if t.Parent == nil {
		return t.Name
	}
	path := t.Name
	for p := t.Parent; p.Parent != nil; p = p.Parent {
		path = p.Name + "." + path
	}
	return path
}

// Root returns the top-level target owning t.
func (t *Target) Root() *Target {
	for t.Parent != nil {
		t = t.Parent
	}
	return t
}

// FindNested returns the nested target with the given name.
func (t *Target) FindNested(name string) (*Target, bool) {
	for _, n := range t.Nested {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}
