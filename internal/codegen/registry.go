// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"net/url"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// unit is one top-level input and the output unit generated from it.
type unit struct {
	input       Input
	target      *model.Target
	constraints *model.Constraints
	pool        *StaticPool
	// nested maps defining schema nodes to the helper targets generated for
	// them inside this unit.
	nested map[*jschema.Schema]*model.Target
	// generated is set once the root classifies as a class or enumeration.
	generated bool
	err       error
}

// registry holds every top-level target of a run. It is filled before any
// property is analyzed so references can point at targets in any order.
type registry struct {
	units  []*unit
	byNode map[*jschema.Schema]*unit
	byURI  map[string]*unit
	byName map[string]*unit
}

func newRegistry() *registry {
	return &registry{
		byNode: make(map[*jschema.Schema]*unit),
		byURI:  make(map[string]*unit),
		byName: make(map[string]*unit),
	}
}

func (r *registry) add(u *unit) error {
	key := u.target.QualifiedName()
	if other, exists := r.byName[key]; exists {
		return errors.WithHint(
			errors.At(errors.ErrNameCollision, "", "class %q is generated from both %s and %s",
				key, origin(other), origin(u)),
			"set an explicit class name or place the schemas in different packages")
	}
	r.byName[key] = u
	r.units = append(r.units, u)

	if s := u.input.Schema; s != nil {
		if _, exists := r.byNode[s]; !exists {
			r.byNode[s] = u
		}
		if s.URI != "" {
			if parsed, err := url.Parse(s.URI); err == nil {
				if _, exists := r.byURI[normalizeURI(parsed)]; !exists {
					r.byURI[normalizeURI(parsed)] = u
				}
			}
		}
	}
	return nil
}

func origin(u *unit) string {
	if u.input.Source != "" {
		return u.input.Source
	}
	if u.input.Schema != nil && u.input.Schema.URI != "" {
		return u.input.Schema.URI
	}
	return model.InMemorySource
}

// lookup finds the unit generated from node, following bare references.
// Nodes are matched by identity first and by origin URI second.
func (r *registry) lookup(node *jschema.Schema) *unit {
	seen := make(map[*jschema.Schema]bool)
	for node != nil && !seen[node] {
		seen[node] = true
		if u, ok := r.byNode[node]; ok {
			return u
		}
		if node.URI != "" {
			if parsed, err := url.Parse(node.URI); err == nil {
				if u, ok := r.byURI[normalizeURI(parsed)]; ok {
					return u
				}
			}
		}
		ref := node.BareRef()
		if ref == nil {
			return nil
		}
		node = ref.Target
	}
	return nil
}
