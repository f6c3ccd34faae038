// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// classify sets the category and system class of an accumulated position.
// A declared type wins over shape. Without one, properties mean object, an
// items schema means array, string validators or an all-string enum mean
// string. Anything else stays unresolved and is typed as SystemAny.
func classify(c *model.Constraints) {
	c.Category = categoryOf(c)
	c.SystemClass = model.SystemNone
	switch c.Category {
	case model.CategoryUnresolved:
		c.SystemClass = model.SystemAny
	case model.CategoryString:
		c.SystemClass = c.Format.SystemClass()
	}
}

func categoryOf(c *model.Constraints) model.Category {
	types := c.ConcreteTypes()
	switch len(types) {
	case 0:
		if len(c.Types) > 0 {
			// only null
			return model.CategoryUnresolved
		}
		return inferCategory(c)
	case 1:
	default:
		return model.CategoryUnresolved
	}

	switch types[0] {
	case jschema.TypeObject:
		return model.CategoryObject
	case jschema.TypeArray:
		return model.CategoryArray
	case jschema.TypeString:
		return model.CategoryString
	case jschema.TypeBoolean:
		return model.CategoryBoolean
	case jschema.TypeInteger:
		return model.ClassifyNumber(c.Bounds, true, c.IntRange)
	case jschema.TypeNumber:
		return model.ClassifyNumber(c.Bounds, false, c.IntRange)
	}
	return model.CategoryUnresolved
}

func inferCategory(c *model.Constraints) model.Category {
	switch {
	case len(c.Properties) > 0:
		return model.CategoryObject
	case c.ArrayItems != nil || c.TupleItems:
		return model.CategoryArray
	case c.Format != model.FormatNone || c.Pattern != nil || c.MinLength != nil || c.MaxLength != nil:
		return model.CategoryString
	case c.HasEnum && allStrings(c.Enum):
		return model.CategoryString
	}
	return model.CategoryUnresolved
}

func allStrings(values []any) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}

// enumMembers returns the member names when a string position can be
// generated as an enumeration: every value is an identifier-safe string.
func enumMembers(c *model.Constraints, p Profile) ([]string, bool) {
	if c.Category != model.CategoryString || !c.HasEnum || !allStrings(c.Enum) {
		return nil, false
	}
	members := make([]string, 0, len(c.Enum))
	for _, v := range c.Enum {
		s := v.(string)
		if !isIdentifierSafe(s, p) {
			return nil, false
		}
		members = append(members, s)
	}
	return members, true
}
