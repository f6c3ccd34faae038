// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

func TestAccumulate_TightestBoundWins(t *testing.T) {
	c, err := accumulateSchema(t, `{
  "type": "integer",
  "allOf": [
    {"minimum": 5, "maximum": 100, "exclusiveMaximum": 90},
    {"minimum": 10, "maximum": 50, "exclusiveMaximum": 95}
  ]
}`)
	require.NoError(t, err)

	assert.Equal(t, "10", c.Bounds.Minimum.String())
	assert.Equal(t, "50", c.Bounds.Maximum.String())
	assert.Equal(t, "90", c.Bounds.ExclusiveMaximum.String())
}

func TestAccumulate_LengthNarrowing(t *testing.T) {
	c, err := accumulateSchema(t, `{
  "allOf": [
    {"minLength": 2, "maxLength": 10, "minItems": 1, "maxItems": 8},
    {"minLength": 4, "maxLength": 20, "minItems": 3, "maxItems": 5}
  ]
}`)
	require.NoError(t, err)

	assert.Equal(t, 4, *c.MinLength)
	assert.Equal(t, 10, *c.MaxLength)
	assert.Equal(t, 3, *c.MinItems)
	assert.Equal(t, 5, *c.MaxItems)
}

func TestAccumulate_MultipleOf(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    string
		wantErr bool
	}{
		{"multiple of the other", "2", "6", "6", false},
		{"other is a multiple", "6", "2", "6", false},
		{"integral lcm", "4", "6", "12", false},
		{"decimal multiple", "0.5", "1.5", "1.5", false},
		{"incompatible decimals", "0.5", "0.3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := accumulateSchema(t, `{"allOf": [{"multipleOf": `+tt.a+`}, {"multipleOf": `+tt.b+`}]}`)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrDuplicateConstraint))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Bounds.MultipleOf.String())
		})
	}
}

func TestAccumulate_DuplicateConstraint(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"format", `{"allOf": [{"format": "email"}, {"format": "hostname"}]}`},
		{"pattern", `{"allOf": [{"pattern": "^a"}, {"pattern": "^b"}]}`},
		{"const", `{"allOf": [{"const": "a"}, {"const": "b"}]}`},
		{"disjoint enums", `{"allOf": [{"enum": ["a", "b"]}, {"enum": ["c"]}]}`},
		{"disjoint types", `{"allOf": [{"type": "string"}, {"type": "integer"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accumulateSchema(t, tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrDuplicateConstraint))
			assert.Contains(t, err.Error(), "file:///test.json#/allOf/1")
		})
	}
}

func TestAccumulate_IdenticalDuplicatesAllowed(t *testing.T) {
	c, err := accumulateSchema(t, `{"allOf": [
  {"format": "email", "pattern": "@", "const": "a@b"},
  {"format": "email", "pattern": "@", "const": "a@b"}
]}`)
	require.NoError(t, err)
	assert.Equal(t, model.FormatEmail, c.Format)
	assert.Equal(t, "@", c.Pattern.Source)
	assert.Equal(t, "a@b", c.Const)
}

func TestAccumulate_EnumIntersection(t *testing.T) {
	c, err := accumulateSchema(t, `{"allOf": [{"enum": ["RED", "GREEN", "BLUE"]}, {"enum": ["BLUE", "RED"]}]}`)
	require.NoError(t, err)
	assert.Equal(t, []any{"RED", "BLUE"}, c.Enum)
}

func TestAccumulate_TypeIntersection(t *testing.T) {
	c, err := accumulateSchema(t, `{"allOf": [{"type": ["string", "null"]}, {"type": "string"}]}`)
	require.NoError(t, err)
	assert.Equal(t, []jschema.Type{jschema.TypeString}, c.Types)
	assert.False(t, c.Nullable)

	c, err = accumulateSchema(t, `{"allOf": [{"type": ["number", "null"]}, {"type": ["integer", "null"]}]}`)
	require.NoError(t, err)
	assert.Equal(t, []jschema.Type{jschema.TypeInteger, jschema.TypeNull}, c.Types)
	assert.True(t, c.Nullable)
}

func TestAccumulate_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"oneOf", `{"oneOf": [{"type": "string"}, {"type": "integer"}]}`},
		{"anyOf", `{"anyOf": [{"type": "string"}]}`},
		{"not", `{"not": {"type": "string"}}`},
		{"boolean property", `{"properties": {"anything": true}}`},
		{"nested oneOf", `{"allOf": [{"properties": {"x": {"oneOf": [{"type": "string"}]}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accumulateSchema(t, tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnsupportedSchema))
		})
	}
}

func TestAccumulate_PropertiesMergeByName(t *testing.T) {
	c, err := accumulateSchema(t, `{
  "properties": {"name": {"type": "string"}, "age": {"type": "integer"}},
  "allOf": [{"properties": {"name": {"minLength": 1}, "email": {"format": "email"}}, "required": ["name"]}]
}`)
	require.NoError(t, err)

	require.Len(t, c.Properties, 3)
	assert.Equal(t, []string{"name", "age", "email"}, []string{c.Properties[0].Name, c.Properties[1].Name, c.Properties[2].Name})
	assert.Equal(t, []jschema.Type{jschema.TypeString}, c.Properties[0].Types)
	assert.Equal(t, 1, *c.Properties[0].MinLength)
	assert.Equal(t, []string{"name"}, c.Required)
}

func TestAccumulate_SelfReferenceTerminates(t *testing.T) {
	c, err := accumulateSchema(t, `{
  "type": "object",
  "properties": {
    "value": {"type": "string"},
    "next": {"$ref": "#"},
    "children": {"type": "array", "items": {"$ref": "#/$defs/child"}}
  },
  "$defs": {"child": {"allOf": [{"$ref": "#"}]}}
}`)
	require.NoError(t, err)

	next, ok := c.Lookup("next")
	require.True(t, ok)
	assert.True(t, next.SelfRef)
	assert.Same(t, c.Schema, next.Ref)
	assert.Empty(t, next.Properties)

	children, _ := c.Lookup("children")
	require.NotNil(t, children.ArrayItems)
	assert.True(t, children.ArrayItems.SelfRef)
}

func TestAccumulate_RefInlined(t *testing.T) {
	c, err := accumulateSchema(t, `{
  "properties": {"billing": {"$ref": "#/$defs/address"}},
  "$defs": {"address": {"type": "object", "properties": {"street": {"type": "string"}}}}
}`)
	require.NoError(t, err)

	billing, _ := c.Lookup("billing")
	assert.False(t, billing.SelfRef)
	assert.Equal(t, "file:///test.json#/$defs/address", billing.Ref.URI)
	_, ok := billing.Lookup("street")
	assert.True(t, ok)
}

func TestAccumulate_RefChain(t *testing.T) {
	c, err := accumulateSchema(t, `{
  "properties": {
    "alias": {"$ref": "#/$defs/link"},
    "derived": {"allOf": [{"$ref": "#/$defs/address"}], "properties": {"zip": {"type": "string"}}}
  },
  "$defs": {
    "link": {"$ref": "#/$defs/address"},
    "address": {"type": "object", "properties": {"street": {"type": "string"}}}
  }
}`)
	require.NoError(t, err)

	alias, _ := c.Lookup("alias")
	require.NotNil(t, alias.Ref)
	assert.Equal(t, "file:///test.json#/$defs/link", alias.Ref.URI)

	derived, _ := c.Lookup("derived")
	assert.Nil(t, derived.Ref)
	_, ok := derived.Lookup("street")
	assert.True(t, ok)
	_, ok = derived.Lookup("zip")
	assert.True(t, ok)
}

func TestAccumulate_FirstItemsWins(t *testing.T) {
	c, err := accumulateSchema(t, `{"allOf": [
  {"items": {"type": "string"}},
  {"items": {"type": "integer"}}
]}`)
	require.NoError(t, err)
	assert.Equal(t, []jschema.Type{jschema.TypeString}, c.ArrayItems.Types)
}

func TestAccumulate_ObjectDefaultDiscarded(t *testing.T) {
	c, err := accumulateSchema(t, `{"type": "object", "default": {"a": 1}}`)
	require.NoError(t, err)
	assert.False(t, c.HasDefault)
}

func TestAccumulate_UnknownFormatIgnored(t *testing.T) {
	c, err := accumulateSchema(t, `{"type": "string", "format": "credit-card"}`)
	require.NoError(t, err)
	assert.Equal(t, model.FormatNone, c.Format)
}

func TestAccumulate_InvalidPattern(t *testing.T) {
	_, err := accumulateSchema(t, `{"type": "string", "pattern": "(unclosed"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestAccumulate_ECMAScriptPattern(t *testing.T) {
	c, err := accumulateSchema(t, `{"type": "string", "pattern": "^\\d{3}-(?=\\w)"}`)
	require.NoError(t, err)

	ok, err := c.Pattern.Regexp.MatchString("123-a")
	require.NoError(t, err)
	assert.True(t, ok)
}
