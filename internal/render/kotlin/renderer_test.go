// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package kotlin

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/codegen"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

func generate(t *testing.T, files map[string]string, paths ...string) []*model.Target {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	loader := jschema.NewLoader(fsys)

	var inputs []codegen.Input
	for _, p := range paths {
		s, err := loader.LoadFile(p)
		require.NoError(t, err)
		inputs = append(inputs, codegen.Input{Schema: s, Source: p})
	}
	g, err := codegen.NewGenerator(codegen.Options{BasePackage: "com.example"})
	require.NoError(t, err)
	res, err := g.Build(inputs)
	require.NoError(t, err)
	require.Empty(t, res.Failures)
	return res.Targets
}

func render(t *testing.T, target *model.Target) string {
	t.Helper()
	r := &Renderer{}
	out, err := r.Render(target)
	require.NoError(t, err)
	return string(out)
}

func TestRenderer_Metadata(t *testing.T) {
	r := &Renderer{}
	assert.Equal(t, "kotlin", r.Name())
	assert.Equal(t, ".kt", r.FileExtension())
}

func TestRender_Class(t *testing.T) {
	targets := generate(t, map[string]string{
		"person.json": `{
  "type": "object",
  "description": "A person",
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "age": {"type": "integer", "minimum": 0, "maximum": 150}
  },
  "required": ["name"]
}`,
	}, "person.json")

	out := render(t, targets[0])
	assert.True(t, strings.HasPrefix(out, "// Code generated by schemagen from person.json. DO NOT EDIT.\n"))
	assert.Contains(t, out, "\npackage com.example\n")
	assert.Contains(t, out, "/** A person */\n")
	assert.Contains(t, out, "open class Person(\n    val name: String,\n    val age: Int? = null\n) {")
	assert.Contains(t, out, `require(name.length >= 1) { "name: min-length" }`)
	assert.Contains(t, out, `require(age == null || age >= 0) { "age: min-int" }`)
	assert.Contains(t, out, `require(age == null || age <= 150) { "age: max-int" }`)
	assert.NotContains(t, out, "companion object")
	assert.NotContains(t, out, "import ")
}

func TestRender_NestedEnumAndStatics(t *testing.T) {
	targets := generate(t, map[string]string{
		"palette.json": `{
  "type": "object",
  "properties": {
    "primary": {"type": "string", "enum": ["RED", "GREEN"], "default": "RED"},
    "code": {"type": "string", "pattern": "^[A-Z]{3}$"},
    "tags": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`,
	}, "palette.json")

	out := render(t, targets[0])
	assert.Contains(t, out, "val primary: Primary? = Primary.RED,")
	assert.Contains(t, out, "    enum class Primary {\n        RED, GREEN\n    }")
	assert.Contains(t, out, "val tags: List<String>? = null\n")
	assert.Contains(t, out, `require(code == null || cg_regex0.containsMatchIn(code)) { "code: pattern" }`)
	assert.Contains(t, out, `require(tags == null || tags.all { e0 -> e0.length >= 1 }) { "tags: invalid item" }`)
	assert.Contains(t, out, "    companion object {\n        val cg_regex0 = Regex(\"^[A-Z]{3}\\$\")\n    }")
}

func TestRender_Inheritance(t *testing.T) {
	targets := generate(t, map[string]string{
		"person.json": `{
  "type": "object",
  "properties": {"id": {"type": "string"}, "name": {"type": "string"}},
  "required": ["id"]
}`,
		"employee.json": `{
  "type": "object",
  "allOf": [{"$ref": "person.json"}],
  "properties": {"salary": {"type": "number"}}
}`,
	}, "person.json", "employee.json")

	out := render(t, targets[1])
	assert.Contains(t, out, "import java.math.BigDecimal\n")
	assert.Contains(t, out, "    id: String,\n    name: String? = null,\n")
	assert.Contains(t, out, "    val salary: BigDecimal? = null\n")
	assert.Contains(t, out, ") : Person(id = id, name = name) {")
}

func TestRender_SystemTypes(t *testing.T) {
	targets := generate(t, map[string]string{
		"event.json": `{
  "type": "object",
  "properties": {
    "at": {"type": "string", "format": "date-time"},
    "id": {"type": "string", "format": "uuid"}
  },
  "required": ["at", "id"]
}`,
	}, "event.json")

	out := render(t, targets[0])
	assert.Contains(t, out, "import java.time.OffsetDateTime\nimport java.util.UUID\n")
	assert.Contains(t, out, "val at: OffsetDateTime,")
	assert.Contains(t, out, "val id: UUID\n")
}

func TestRender_NestedTargetRejected(t *testing.T) {
	parent := &model.Target{Name: "Order"}
	_, err := (&Renderer{}).Render(&model.Target{Name: "Line", Parent: parent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested target Line is rendered with its parent")
}

func TestStatic(t *testing.T) {
	imports := &importSet{}
	tests := []struct {
		field model.StaticField
		want  string
	}{
		{model.StaticField{Name: "cg_str0", Kind: model.StaticString, Value: `a"b`}, `const val cg_str0 = "a\"b"`},
		{model.StaticField{Name: "cg_array0", Kind: model.StaticStringArray, Value: []string{"x", "y"}}, `val cg_array0 = setOf("x", "y")`},
		{model.StaticField{Name: "cg_array1", Kind: model.StaticStringArray, Value: []string{}}, `val cg_array1 = emptySet<String>()`},
		{model.StaticField{Name: "cg_int_array0", Kind: model.StaticIntArray, Value: []int64{1, 2}}, `val cg_int_array0 = setOf(1L, 2L)`},
		{model.StaticField{Name: "cg_dec0", Kind: model.StaticDecimal, Value: decimal.RequireFromString("0.5")}, `val cg_dec0 = BigDecimal("0.5")`},
	}
	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			got, err := static(tt.field, imports)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, []string{"java.math.BigDecimal"}, imports.sorted())

	_, err := static(model.StaticField{Name: "bad", Kind: model.StaticDecimal, Value: "1"}, imports)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constant bad has unexpected")
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "name", identifier("name"))
	assert.Equal(t, "`val`", identifier("val"))
	assert.Equal(t, "`first-name`", identifier("first-name"))
	assert.Equal(t, "`1st`", identifier("1st"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"price: \$5\n"`, quote("price: $5\n"))
	assert.Equal(t, `"a\\b"`, quote(`a\b`))
}
