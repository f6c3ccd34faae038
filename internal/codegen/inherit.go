// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// baseOf returns the registered unit an object node extends. The node extends
// a unit when the keywords before its properties hold an allOf with a single
// member that is a bare reference to that unit's schema.
func (r *registry) baseOf(node *jschema.Schema) *unit {
	if node == nil {
		return nil
	}
	for _, e := range node.Elements {
		switch v := e.(type) {
		case *jschema.Properties:
			return nil
		case *jschema.Combination:
			if v.Keyword != jschema.AllOf || len(v.Schemas) != 1 {
				return nil
			}
			ref := v.Schemas[0].BareRef()
			if ref == nil {
				return nil
			}
			return r.lookup(ref.Target)
		}
	}
	return nil
}

// inherit marks the properties of c that the base target declares.
func inherit(c *model.Constraints, base *model.Target) {
	for _, p := range c.Properties {
		if _, ok := base.Constraints.Lookup(p.Name); ok {
			p.Inherited = true
		}
	}
}
