// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Literal values found in enum, const, default and extension keywords are
// one of: nil, bool, string, decimal.Decimal, []any or *Object.

// Object is a JSON object literal that keeps its key order.
type Object struct {
	Keys   []string
	Values map[string]any
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{Values: make(map[string]any)}
}

// Set adds or replaces a member, keeping first-seen key order.
func (o *Object) Set(key string, value any) {
	if _, exists := o.Values[key]; !exists {
		o.Keys = append(o.Keys, key)
	}
	o.Values[key] = value
}

// Get returns the member named key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// Equal reports whether two literal values are equal. Numbers compare by value,
// so 1 and 1.0 are equal.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			v, ok := bv.Values[k]
			if !ok || !Equal(av.Values[k], v) {
				return false
			}
		}
		return true
	}
	return false
}

// Canonical renders a literal as compact JSON text. Equal values render
// identically.
func Canonical(v any) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, v any) {
	switch tv := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		sb.WriteString(strconv.FormatBool(tv))
	case string:
		sb.WriteString(strconv.Quote(tv))
	case decimal.Decimal:
		sb.WriteString(tv.String())
	case []any:
		sb.WriteByte('[')
		for i, item := range tv {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, item)
		}
		sb.WriteByte(']')
	case *Object:
		sb.WriteByte('{')
		for i, k := range tv.Keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			writeCanonical(sb, tv.Values[k])
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("null")
	}
}

// TypeOf returns the primitive kind of a literal. Integral numbers report
// TypeInteger.
func TypeOf(v any) Type {
	switch tv := v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	case decimal.Decimal:
		if tv.IsInteger() {
			return TypeInteger
		}
		return TypeNumber
	case []any:
		return TypeArray
	case *Object:
		return TypeObject
	}
	return ""
}

// parseNumber converts JSON or YAML number text to a decimal, accepting the
// YAML hexadecimal and octal integer forms.
func parseNumber(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err == nil {
		return d, nil
	}
	if i, ierr := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 0, 64); ierr == nil {
		return decimal.NewFromInt(i), nil
	}
	return decimal.Decimal{}, err
}
