// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package model

import (
	"slices"

	"github.com/dlclark/regexp2"

	"github.com/dacolabs/schemagen/internal/jschema"
)

// Pattern is a pattern validator with its ECMAScript-compiled expression.
type Pattern struct {
	Source string
	Regexp *regexp2.Regexp
}

// Constraints is the merged validation and shape record of one schema
// position: a top-level target, a named property or an array item.
type Constraints struct {
	// Name is the property name, or the class name for a root position.
	Name        string
	Title       string
	Description string

	// Schema is the first node accumulated into this position.
	Schema *jschema.Schema

	// Types holds the declared primitive kinds. Empty means infer from shape.
	Types    []jschema.Type
	Nullable bool

	Bounds    Bounds
	MinLength *int
	MaxLength *int
	Format    Format
	Pattern   *Pattern

	MinItems    *int
	MaxItems    *int
	UniqueItems bool

	Enum     []any
	HasEnum  bool
	Const    any
	HasConst bool

	Default    any
	HasDefault bool

	// Properties are the child positions in first-seen order.
	Properties []*Constraints
	// Required holds the names of required properties.
	Required []string

	// ArrayItems describes array elements. TupleItems is set instead for the
	// tuple form, which has no single element schema.
	ArrayItems *Constraints
	TupleItems bool

	// Extensions holds "x-" annotations, first declaration wins.
	Extensions map[string]any

	// Ref is the node a bare $ref at this position points to. SelfRef is set
	// when that node was already being accumulated and was not expanded.
	Ref     *jschema.Schema
	SelfRef bool

	// IntRange is the plain integer range of the target language.
	IntRange IntRange

	// Resolution results.
	Category    Category
	SystemClass SystemClass
	LocalType   *Target
	CustomClass *ClassRef
	Inherited   bool
	Validations []Validation
}

// NewConstraints creates an empty record for a language with plain integer
// range r.
func NewConstraints(name string, r IntRange) *Constraints {
	return &Constraints{Name: name, IntRange: r}
}

// Property returns the child record for name, creating it on first use.
func (c *Constraints) Property(name string) *Constraints {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	p := NewConstraints(name, c.IntRange)
	c.Properties = append(c.Properties, p)
	return p
}

// Lookup returns the child record for name, if present.
func (c *Constraints) Lookup(name string) (*Constraints, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Items returns the array element record, creating it on first use.
func (c *Constraints) Items() *Constraints {
	if c.ArrayItems == nil {
		c.ArrayItems = NewConstraints(c.Name, c.IntRange)
	}
	return c.ArrayItems
}

// Requires reports whether the named property is required.
func (c *Constraints) Requires(name string) bool {
	return slices.Contains(c.Required, name)
}

// AddRequired records required property names once each.
func (c *Constraints) AddRequired(names ...string) {
	for _, n := range names {
		if !c.Requires(n) {
			c.Required = append(c.Required, n)
		}
	}
}

// Declares reports whether t is among the declared types.
func (c *Constraints) Declares(t jschema.Type) bool {
	return slices.Contains(c.Types, t)
}

// ConcreteTypes returns the declared types other than null.
func (c *Constraints) ConcreteTypes() []jschema.Type {
	var out []jschema.Type
	for _, t := range c.Types {
		if t != jschema.TypeNull {
			out = append(out, t)
		}
	}
	return out
}

// IsObject reports whether the position holds an object. Before
// classification it falls back to shape: non-empty properties.
func (c *Constraints) IsObject() bool {
	if c.Category != CategoryUnresolved {
		return c.Category == CategoryObject
	}
	return len(c.ConcreteTypes()) == 0 && len(c.Properties) > 0
}

// IsArray reports whether the position holds an array. Before classification
// it falls back to shape: an items schema.
func (c *Constraints) IsArray() bool {
	if c.Category != CategoryUnresolved {
		return c.Category == CategoryArray
	}
	return len(c.ConcreteTypes()) == 0 && (c.ArrayItems != nil || c.TupleItems)
}

func (c *Constraints) IsString() bool  { return c.Category == CategoryString }
func (c *Constraints) IsBoolean() bool { return c.Category == CategoryBoolean }
func (c *Constraints) IsInt() bool     { return c.Category == CategoryInt }
func (c *Constraints) IsLong() bool    { return c.Category == CategoryLong }
func (c *Constraints) IsDecimal() bool { return c.Category == CategoryDecimal }

// IsEnum reports whether the position is typed by a generated enumeration.
func (c *Constraints) IsEnum() bool {
	return c.LocalType != nil && c.LocalType.Kind == KindEnum
}

// AddValidation appends a validation to the position.
func (c *Constraints) AddValidation(kind ValidationKind, value any, static string) {
	c.Validations = append(c.Validations, Validation{Kind: kind, Value: value, Static: static})
}
