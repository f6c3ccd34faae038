// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dacolabs/schemagen/internal/errors"
)

// document is one parsed schema file. Nodes are cached by JSON pointer so that
// every position is built once and references share node identity.
type document struct {
	path  string
	uri   string
	raw   any
	root  *Schema
	nodes map[string]*Schema
}

func newDocument(filePath string, raw any) *document {
	return &document{
		path:  filePath,
		uri:   DocumentURI(filePath),
		raw:   raw,
		nodes: make(map[string]*Schema),
	}
}

// DocumentURI returns the file URI used as origin for nodes of the file at path.
func DocumentURI(filePath string) string {
	return "file:///" + strings.TrimPrefix(filePath, "/")
}

// lookup returns the node at pointer, building it from the raw document when
// the pointer addresses a position that was not reached by parsing.
func (d *document) lookup(pointer string) (*Schema, bool, error) {
	if n, ok := d.nodes[pointer]; ok {
		return n, false, nil
	}
	raw, ok := rawAt(d.raw, pointer)
	if !ok {
		return nil, false, nil
	}
	n, err := d.node(raw, pointer)
	return n, true, err
}

func rawAt(raw any, pointer string) (any, bool) {
	if pointer == "" {
		return raw, true
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, false
	}
	for _, seg := range strings.Split(pointer[1:], "/") {
		seg = unescapePointer(seg)
		switch v := raw.(type) {
		case *Object:
			next, ok := v.Get(seg)
			if !ok {
				return nil, false
			}
			raw = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			raw = v[i]
		default:
			return nil, false
		}
	}
	return raw, true
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func unescapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}

func (d *document) node(raw any, pointer string) (*Schema, error) {
	if n, ok := d.nodes[pointer]; ok {
		return n, nil
	}
	s := &Schema{URI: d.uri + "#" + pointer}
	d.nodes[pointer] = s

	switch v := raw.(type) {
	case bool:
		s.Bool = &v
		return s, nil
	case *Object:
		if err := d.keywords(s, v, pointer); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.Newf("%s: schema must be an object or a boolean", s.URI)
}

func (d *document) keywords(s *Schema, obj *Object, pointer string) error {
	// draft-04 boolean exclusiveMinimum/exclusiveMaximum modify the plain bound
	var exclusiveMin, exclusiveMax bool

	for _, key := range obj.Keys {
		value := obj.Values[key]
		at := pointer + "/" + escapePointer(key)

		switch key {
		case "title":
			s.Title, _ = value.(string)
		case "description":
			s.Description, _ = value.(string)
		case "$ref":
			ref, ok := value.(string)
			if !ok {
				return d.invalid(at, "$ref must be a string")
			}
			s.Elements = append(s.Elements, &Ref{URI: ref})
		case AllOf, AnyOf, OneOf:
			schemas, err := d.schemaArray(value, at)
			if err != nil {
				return err
			}
			s.Elements = append(s.Elements, &Combination{Keyword: key, Schemas: schemas})
		case "not":
			n, err := d.node(value, at)
			if err != nil {
				return err
			}
			s.Elements = append(s.Elements, &Not{Schema: n})
		case "properties":
			props, err := d.schemaMap(value, at)
			if err != nil {
				return err
			}
			s.Elements = append(s.Elements, &Properties{Properties: props})
		case "items":
			if _, ok := value.([]any); ok {
				tuple, err := d.schemaArray(value, at)
				if err != nil {
					return err
				}
				s.Elements = append(s.Elements, &Items{Tuple: tuple})
				continue
			}
			n, err := d.node(value, at)
			if err != nil {
				return err
			}
			s.Elements = append(s.Elements, &Items{Schema: n})
		case "prefixItems":
			tuple, err := d.schemaArray(value, at)
			if err != nil {
				return err
			}
			s.Elements = append(s.Elements, &Items{Tuple: tuple})
		case "required":
			names, err := stringArray(value)
			if err != nil {
				return d.invalid(at, "required must be an array of strings")
			}
			s.Elements = append(s.Elements, &Required{Names: names})
		case "type":
			types, err := parseTypes(value)
			if err != nil {
				return d.invalid(at, "%v", err)
			}
			s.Elements = append(s.Elements, &TypeValidator{Types: types})
		case "format":
			name, ok := value.(string)
			if !ok {
				return d.invalid(at, "format must be a string")
			}
			s.Elements = append(s.Elements, &Format{Name: name})
		case "pattern":
			src, ok := value.(string)
			if !ok {
				return d.invalid(at, "pattern must be a string")
			}
			s.Elements = append(s.Elements, &Pattern{Source: src})
		case "enum":
			values, ok := value.([]any)
			if !ok {
				return d.invalid(at, "enum must be an array")
			}
			s.Elements = append(s.Elements, &Enum{Values: values})
		case "const":
			s.Elements = append(s.Elements, &Const{Value: value})
		case "default":
			s.Elements = append(s.Elements, &Default{Value: value})
		case "exclusiveMinimum", "exclusiveMaximum":
			if b, ok := value.(bool); ok {
				if key == "exclusiveMinimum" {
					exclusiveMin = b
				} else {
					exclusiveMax = b
				}
				continue
			}
			fallthrough
		case "minimum", "maximum", "multipleOf":
			n, ok := value.(decimal.Decimal)
			if !ok {
				return d.invalid(at, "%s must be a number", key)
			}
			if key == "multipleOf" && n.Sign() <= 0 {
				return d.invalid(at, "multipleOf must be greater than zero")
			}
			s.Elements = append(s.Elements, &NumberBound{Keyword: NumberKeyword(key), Value: n})
		case "minLength", "maxLength", "minItems", "maxItems":
			n, ok := value.(decimal.Decimal)
			if !ok || !n.IsInteger() || n.Sign() < 0 {
				return d.invalid(at, "%s must be a non-negative integer", key)
			}
			s.Elements = append(s.Elements, &LengthBound{Keyword: LengthKeyword(key), Value: int(n.IntPart())})
		case "uniqueItems":
			b, ok := value.(bool)
			if !ok {
				return d.invalid(at, "uniqueItems must be a boolean")
			}
			s.Elements = append(s.Elements, &UniqueItems{Value: b})
		case "$defs", "definitions":
			defs, err := d.schemaMap(value, at)
			if err != nil {
				return err
			}
			s.Defs = append(s.Defs, defs...)
		default:
			if strings.HasPrefix(key, "x-") {
				s.Elements = append(s.Elements, &Extension{Name: key, Value: value})
			}
		}
	}

	if exclusiveMin || exclusiveMax {
		for _, e := range s.Elements {
			b, ok := e.(*NumberBound)
			if !ok {
				continue
			}
			if exclusiveMin && b.Keyword == Minimum {
				b.Keyword = ExclusiveMinimum
			}
			if exclusiveMax && b.Keyword == Maximum {
				b.Keyword = ExclusiveMaximum
			}
		}
	}
	return nil
}

func (d *document) schemaArray(value any, pointer string) ([]*Schema, error) {
	arr, ok := value.([]any)
	if !ok {
		return nil, d.invalid(pointer, "expected an array of schemas")
	}
	schemas := make([]*Schema, 0, len(arr))
	for i, item := range arr {
		n, err := d.node(item, pointer+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, n)
	}
	return schemas, nil
}

func (d *document) schemaMap(value any, pointer string) ([]Property, error) {
	obj, ok := value.(*Object)
	if !ok {
		return nil, d.invalid(pointer, "expected an object of schemas")
	}
	props := make([]Property, 0, len(obj.Keys))
	for _, name := range obj.Keys {
		n, err := d.node(obj.Values[name], pointer+"/"+escapePointer(name))
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Name: name, Schema: n})
	}
	return props, nil
}

func (d *document) invalid(pointer, format string, args ...any) error {
	return errors.Wrapf(errors.Newf(format, args...), "%s#%s", d.uri, pointer)
}

func parseTypes(value any) ([]Type, error) {
	names, err := stringArray(value)
	if err != nil {
		if name, ok := value.(string); ok {
			names = []string{name}
		} else {
			return nil, errors.New("type must be a string or an array of strings")
		}
	}
	types := make([]Type, 0, len(names))
	for _, name := range names {
		t, ok := ParseType(name)
		if !ok {
			return nil, errors.Newf("unknown type %q", name)
		}
		types = append(types, t)
	}
	return types, nil
}

func stringArray(value any) ([]string, error) {
	arr, ok := value.([]any)
	if !ok {
		return nil, errors.New("expected an array")
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("expected an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}
