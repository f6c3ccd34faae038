// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// Traverse returns an iterator over all schemas in the tree.
// It handles cycles by tracking visited schemas.
// If followRefs is set, it follows bound $ref links to their targets.
func Traverse(schema *Schema, followRefs bool) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		visited := make(map[*Schema]struct{})
		traverseWithVisited(schema, followRefs, false, yield, visited)
	}
}

// Composition returns an iterator over the schema and every node merged into
// its position: allOf/anyOf/oneOf members and $ref targets, recursively.
// Properties and items are not entered.
func Composition(schema *Schema) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		visited := make(map[*Schema]struct{})
		traverseWithVisited(schema, true, true, yield, visited)
	}
}

func traverseWithVisited(schema *Schema, followRefs, compositionOnly bool, yield func(*Schema) bool, visited map[*Schema]struct{}) bool {
	if schema == nil {
		return true
	}
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(schema) {
		return false
	}

	for _, e := range schema.Elements {
		var children []*Schema
		switch v := e.(type) {
		case *Ref:
			if followRefs {
				children = []*Schema{v.Target}
			}
		case *Combination:
			children = v.Schemas
		case *Not:
			if !compositionOnly {
				children = []*Schema{v.Schema}
			}
		case *Properties:
			if !compositionOnly {
				for _, p := range v.Properties {
					children = append(children, p.Schema)
				}
			}
		case *Items:
			if !compositionOnly {
				children = append(children, v.Schema)
				children = append(children, v.Tuple...)
			}
		}
		for _, child := range children {
			if !traverseWithVisited(child, followRefs, compositionOnly, yield, visited) {
				return false
			}
		}
	}

	if compositionOnly {
		return true
	}
	for _, def := range schema.Defs {
		if !traverseWithVisited(def.Schema, followRefs, compositionOnly, yield, visited) {
			return false
		}
	}
	return true
}
