// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   model.Category
		system model.SystemClass
	}{
		{"declared object", `{"type": "object"}`, model.CategoryObject, model.SystemNone},
		{"properties without type", `{"properties": {"a": {}}}`, model.CategoryObject, model.SystemNone},
		{"declared type wins over shape", `{"type": "string", "properties": {"a": {}}}`, model.CategoryString, model.SystemNone},
		{"items without type", `{"items": {"type": "string"}}`, model.CategoryArray, model.SystemNone},
		{"tuple items", `{"items": [{"type": "string"}]}`, model.CategoryArray, model.SystemNone},
		{"pattern without type", `{"pattern": "^a"}`, model.CategoryString, model.SystemNone},
		{"maxLength without type", `{"maxLength": 3}`, model.CategoryString, model.SystemNone},
		{"string enum without type", `{"enum": ["a", "b"]}`, model.CategoryString, model.SystemNone},
		{"mixed enum without type", `{"enum": ["a", 1]}`, model.CategoryUnresolved, model.SystemAny},
		{"empty schema", `{}`, model.CategoryUnresolved, model.SystemAny},
		{"only null", `{"type": "null"}`, model.CategoryUnresolved, model.SystemAny},
		{"several types", `{"type": ["string", "integer"]}`, model.CategoryUnresolved, model.SystemAny},
		{"nullable string", `{"type": ["string", "null"]}`, model.CategoryString, model.SystemNone},
		{"boolean", `{"type": "boolean"}`, model.CategoryBoolean, model.SystemNone},
		{"unbounded integer", `{"type": "integer"}`, model.CategoryLong, model.SystemNone},
		{"bounded integer", `{"type": "integer", "minimum": 0, "maximum": 100}`, model.CategoryInt, model.SystemNone},
		{"number", `{"type": "number"}`, model.CategoryDecimal, model.SystemNone},
		{"integral number", `{"type": "number", "multipleOf": 1, "minimum": 1, "maximum": 12}`, model.CategoryInt, model.SystemNone},
		{"date-time", `{"type": "string", "format": "date-time"}`, model.CategoryString, model.SystemDateTime},
		{"uuid without type", `{"format": "uuid"}`, model.CategoryString, model.SystemUUID},
		{"uri-reference", `{"type": "string", "format": "uri-reference"}`, model.CategoryString, model.SystemURI},
		{"email stays string", `{"type": "string", "format": "email"}`, model.CategoryString, model.SystemNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := accumulateSchema(t, tt.data)
			require.NoError(t, err)
			classify(c)
			assert.Equal(t, tt.want, c.Category)
			assert.Equal(t, tt.system, c.SystemClass)
		})
	}
}

func TestEnumMembers(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
		ok   bool
	}{
		{"identifier values", `{"type": "string", "enum": ["RED", "GREEN", "dark_blue"]}`, []string{"RED", "GREEN", "dark_blue"}, true},
		{"value with space", `{"type": "string", "enum": ["RED", "LIGHT BLUE"]}`, nil, false},
		{"leading digit", `{"enum": ["1st", "2nd"]}`, nil, false},
		{"keyword", `{"enum": ["class", "object"]}`, nil, false},
		{"integer enum", `{"type": "integer", "enum": [1, 2]}`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := accumulateSchema(t, tt.data)
			require.NoError(t, err)
			classify(c)
			members, ok := enumMembers(c, Kotlin)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, members)
		})
	}
}
