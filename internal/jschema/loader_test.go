// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"
	"testing/fstest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/errors"
)

func element[T Element](s *Schema) T {
	for _, e := range s.Elements {
		if v, ok := e.(T); ok {
			return v
		}
	}
	var zero T
	return zero
}

func TestLoadFile_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(`{
  "type": "object",
  "properties": {
    "zeta": {"type": "string"},
    "alpha": {"type": "integer", "maximum": 12345678901234567890.5}
  },
  "required": ["zeta"]
}`)},
	}
	loader := NewLoader(fsys)
	schema, err := loader.LoadFile("person.schema.json")
	require.NoError(t, err)

	assert.Equal(t, "file:///person.schema.json#", schema.URI)
	types := element[*TypeValidator](schema)
	require.NotNil(t, types)
	assert.Equal(t, []Type{TypeObject}, types.Types)

	props := element[*Properties](schema)
	require.NotNil(t, props)
	require.Len(t, props.Properties, 2)
	assert.Equal(t, "zeta", props.Properties[0].Name)
	assert.Equal(t, "alpha", props.Properties[1].Name)
	assert.Equal(t, "file:///person.schema.json#/properties/alpha", props.Properties[1].Schema.URI)

	bound := element[*NumberBound](props.Properties[1].Schema)
	require.NotNil(t, bound)
	assert.Equal(t, Maximum, bound.Keyword)
	assert.Equal(t, "12345678901234567890.5", bound.Value.String())

	assert.Equal(t, []string{"zeta"}, element[*Required](schema).Names)
}

func TestLoadFile_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"simple.yaml": &fstest.MapFile{Data: []byte(`
type: object
description: A simple schema
properties:
  name:
    type: string
    minLength: 1
    pattern: "^[A-Z]"
  age:
    type: integer
    minimum: 0
  tags:
    type: array
    items:
      type: string
    x-kind: labels
`)},
	}
	loader := NewLoader(fsys)
	schema, err := loader.LoadFile("simple.yaml")
	require.NoError(t, err)

	assert.Equal(t, "A simple schema", schema.Description)
	props := element[*Properties](schema).Properties
	require.Len(t, props, 3)
	assert.Equal(t, []string{"name", "age", "tags"}, []string{props[0].Name, props[1].Name, props[2].Name})

	assert.Equal(t, 1, element[*LengthBound](props[0].Schema).Value)
	assert.Equal(t, "^[A-Z]", element[*Pattern](props[0].Schema).Source)
	assert.True(t, decimal.Zero.Equal(element[*NumberBound](props[1].Schema).Value))

	items := element[*Items](props[2].Schema)
	require.NotNil(t, items)
	require.NotNil(t, items.Schema)
	value, ok := props[2].Schema.Extension("x-kind")
	assert.True(t, ok)
	assert.Equal(t, "labels", value)
}

func TestLoadFile_NotFound(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})
	_, err := loader.LoadFile("nonexistent.yaml")
	require.Error(t, err)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"invalid.yaml": &fstest.MapFile{Data: []byte("{{invalid yaml")},
	}
	_, err := NewLoader(fsys).LoadFile("invalid.yaml")
	require.Error(t, err)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"invalid.json": &fstest.MapFile{Data: []byte("{invalid json}")},
	}
	_, err := NewLoader(fsys).LoadFile("invalid.json")
	require.Error(t, err)
}

func TestLoadFile_InvalidKeyword(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json": &fstest.MapFile{Data: []byte(`{"type": "object", "minLength": -1}`)},
	}
	_, err := NewLoader(fsys).LoadFile("bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minLength")
}

func TestLoadFile_Draft04ExclusiveBounds(t *testing.T) {
	fsys := fstest.MapFS{
		"n.json": &fstest.MapFile{Data: []byte(`{"type": "integer", "minimum": 0, "exclusiveMinimum": true, "maximum": 10}`)},
	}
	schema, err := NewLoader(fsys).LoadFile("n.json")
	require.NoError(t, err)

	var keywords []NumberKeyword
	for _, e := range schema.Elements {
		if b, ok := e.(*NumberBound); ok {
			keywords = append(keywords, b.Keyword)
		}
	}
	assert.Equal(t, []NumberKeyword{ExclusiveMinimum, Maximum}, keywords)
}

func TestLoadFile_BooleanSchema(t *testing.T) {
	fsys := fstest.MapFS{
		"b.json": &fstest.MapFile{Data: []byte(`{"properties": {"anything": true}}`)},
	}
	schema, err := NewLoader(fsys).LoadFile("b.json")
	require.NoError(t, err)

	prop := element[*Properties](schema).Properties[0].Schema
	require.NotNil(t, prop.Bool)
	assert.True(t, *prop.Bool)
}

func TestResolveRefs_SameDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"order.json": &fstest.MapFile{Data: []byte(`{
  "type": "object",
  "properties": {
    "billing": {"$ref": "#/$defs/address"},
    "shipping": {"$ref": "#/$defs/address"}
  },
  "$defs": {
    "address": {"type": "object", "properties": {"street": {"type": "string"}}}
  }
}`)},
	}
	schema, err := NewLoader(fsys).LoadFile("order.json")
	require.NoError(t, err)

	props := element[*Properties](schema).Properties
	billing := props[0].Schema.BareRef()
	shipping := props[1].Schema.BareRef()
	require.NotNil(t, billing)
	require.NotNil(t, shipping)
	require.NotNil(t, billing.Target)
	assert.Same(t, billing.Target, shipping.Target)
	assert.Same(t, schema.Defs[0].Schema, billing.Target)
	assert.Equal(t, "file:///order.json#/$defs/address", billing.Target.URI)
}

func TestResolveRefs_FileRef(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/main.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  parent:
    $ref: "../common/parent.yaml"
  child:
    $ref: "../common/parent.yaml#/properties/id"
`)},
		"common/parent.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  id:
    type: string
`)},
	}
	loader := NewLoader(fsys)
	schema, err := loader.LoadFile("schemas/main.yaml")
	require.NoError(t, err)

	props := element[*Properties](schema).Properties
	parent := props[0].Schema.BareRef().Target
	require.NotNil(t, parent)
	assert.Equal(t, "file:///common/parent.yaml#", parent.URI)

	loaded, err := loader.LoadFile("common/parent.yaml")
	require.NoError(t, err)
	assert.Same(t, loaded, parent)

	id := props[1].Schema.BareRef().Target
	assert.Same(t, element[*Properties](parent).Properties[0].Schema, id)
}

func TestResolveRefs_Cycle(t *testing.T) {
	fsys := fstest.MapFS{
		"node.json": &fstest.MapFile{Data: []byte(`{
  "type": "object",
  "properties": {"next": {"$ref": "#"}}
}`)},
	}
	schema, err := NewLoader(fsys).LoadFile("node.json")
	require.NoError(t, err)

	next := element[*Properties](schema).Properties[0].Schema.BareRef()
	assert.Same(t, schema, next.Target)
}

func TestResolveRefs_RootFromDefinition(t *testing.T) {
	fsys := fstest.MapFS{
		"tree.json": &fstest.MapFile{Data: []byte(`{
  "properties": {"first": {"$ref": "#/$defs/node"}},
  "$defs": {"node": {"properties": {"up": {"$ref": "#"}}}}
}`)},
	}
	schema, err := NewLoader(fsys).LoadFile("tree.json")
	require.NoError(t, err)

	node := schema.Defs[0].Schema
	up := element[*Properties](node).Properties[0].Schema.BareRef()
	require.NotNil(t, up)
	assert.Same(t, schema, up.Target)
	assert.Equal(t, "file:///tree.json#", up.Target.URI)
}

func TestResolveRefs_ArbitraryPointer(t *testing.T) {
	fsys := fstest.MapFS{
		"api.json": &fstest.MapFile{Data: []byte(`{
  "properties": {"user": {"$ref": "#/components/schemas/User"}},
  "components": {"schemas": {"User": {"type": "object", "properties": {"self": {"$ref": "#/components/schemas/User"}}}}}
}`)},
	}
	schema, err := NewLoader(fsys).LoadFile("api.json")
	require.NoError(t, err)

	user := element[*Properties](schema).Properties[0].Schema.BareRef().Target
	require.NotNil(t, user)
	self := element[*Properties](user).Properties[0].Schema.BareRef()
	assert.Same(t, user, self.Target)
}

func TestResolveRefs_Missing(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing file", `{"properties": {"x": {"$ref": "./does-not-exist.yaml"}}}`},
		{"missing pointer", `{"properties": {"x": {"$ref": "#/$defs/nothing"}}}`},
		{"remote", `{"properties": {"x": {"$ref": "https://example.com/s.json"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"schema.json": &fstest.MapFile{Data: []byte(tt.data)}}
			_, err := NewLoader(fsys).LoadFile("schema.json")
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnresolvedReference))
		})
	}
}

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/a.schema.json":     &fstest.MapFile{Data: []byte(`{"type": "object"}`)},
		"schemas/sub/b.schema.yaml": &fstest.MapFile{Data: []byte(`type: object`)},
		"schemas/sub/deep/c.yml":    &fstest.MapFile{Data: []byte(`type: string`)},
		"schemas/README.md":         &fstest.MapFile{Data: []byte(`# not a schema`)},
	}
	files, err := NewLoader(fsys).LoadDir("schemas")
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "schemas/a.schema.json", files[0].Path)
	assert.Equal(t, "", files[0].Dir)
	assert.Equal(t, "sub", files[1].Dir)
	assert.Equal(t, "sub/deep", files[2].Dir)
}
