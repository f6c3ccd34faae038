// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"math/big"
	"net/url"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// CustomClass replaces the generated type of matching properties with an
// existing class. Exactly one of URI, Extension or Format is set.
type CustomClass struct {
	Class model.ClassRef

	// URI matches a schema by origin, e.g. "money.schema.json#/$defs/amount".
	URI string

	// Extension and Value match any node in the composition of a schema that
	// carries the extension with exactly this value.
	Extension string
	Value     any

	// Format matches string schemas with this format.
	Format string
}

// ByURI overrides schemas whose origin is uri.
func ByURI(class, uri string) CustomClass {
	return CustomClass{Class: model.ParseClassRef(class), URI: uri}
}

// ByExtension overrides schemas carrying extension name with value.
func ByExtension(class, name string, value any) CustomClass {
	return CustomClass{Class: model.ParseClassRef(class), Extension: name, Value: value}
}

// ByFormat overrides strings with the given format.
func ByFormat(class, format string) CustomClass {
	return CustomClass{Class: model.ParseClassRef(class), Format: format}
}

// overrides holds custom classes grouped by match rule, each group in
// registration order.
type overrides struct {
	byExtension []CustomClass
	byURI       map[string]model.ClassRef
	uriOrder    []string
	byFormat    map[string]model.ClassRef
}

func newOverrides(list []CustomClass, baseURI string) (*overrides, error) {
	if baseURI == "" {
		baseURI = "file:///"
	}
	base, err := url.Parse(baseURI)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URI %q", baseURI)
	}

	o := &overrides{
		byURI:    make(map[string]model.ClassRef),
		byFormat: make(map[string]model.ClassRef),
	}
	for _, cc := range list {
		if cc.Class.Name == "" {
			return nil, errors.New("custom class without a class name")
		}
		switch {
		case cc.Extension != "":
			cc.Value = literal(cc.Value)
			o.byExtension = append(o.byExtension, cc)
		case cc.URI != "":
			ref, err := url.Parse(cc.URI)
			if err != nil {
				return nil, errors.Wrapf(err, "custom class %s: invalid URI %q", cc.Class, cc.URI)
			}
			key := normalizeURI(base.ResolveReference(ref))
			if _, exists := o.byURI[key]; !exists {
				o.byURI[key] = cc.Class
				o.uriOrder = append(o.uriOrder, key)
			}
		case cc.Format != "":
			if _, exists := o.byFormat[cc.Format]; !exists {
				o.byFormat[cc.Format] = cc.Class
			}
		default:
			return nil, errors.Newf("custom class %s has no match rule", cc.Class)
		}
	}
	return o, nil
}

// match returns the override for a position. Extension matches take
// precedence over URI matches, which take precedence over format matches.
func (o *overrides) match(c *model.Constraints) (model.ClassRef, bool) {
	if c.Schema == nil {
		return model.ClassRef{}, false
	}
	for _, cc := range o.byExtension {
		for node := range jschema.Composition(c.Schema) {
			if v, ok := node.Extension(cc.Extension); ok && jschema.Equal(v, cc.Value) {
				return cc.Class, true
			}
		}
	}
	if len(o.byURI) > 0 {
		for _, uri := range originURIs(c) {
			if class, ok := o.byURI[uri]; ok {
				return class, true
			}
		}
	}
	if c.Format != model.FormatNone {
		if class, ok := o.byFormat[string(c.Format)]; ok {
			return class, true
		}
	}
	return model.ClassRef{}, false
}

// originURIs returns the normalized origins of a position: its own node and
// every node reached through a chain of bare references.
func originURIs(c *model.Constraints) []string {
	var uris []string
	seen := make(map[*jschema.Schema]bool)
	for node := c.Schema; node != nil && !seen[node]; {
		seen[node] = true
		if u, err := url.Parse(node.URI); err == nil {
			uris = append(uris, normalizeURI(u))
		}
		ref := node.BareRef()
		if ref == nil {
			break
		}
		node = ref.Target
	}
	return uris
}

// normalizeURI drops an empty fragment so "a.json" and "a.json#" compare equal.
func normalizeURI(u *url.URL) string {
	n := *u
	if n.Fragment == "" {
		n.RawFragment = ""
	}
	return n.String()
}

// literal converts configuration values to the literal representation used
// by parsed schemas.
func literal(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(rv.Float())
	}
	return v
}
