// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"math/big"
	"slices"

	"github.com/dlclark/regexp2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

// maxRefDepth bounds chains of nested references.
const maxRefDepth = 64

// accumulator folds the validators of a schema node, its composition members
// and reference targets into one Constraints record per position.
type accumulator struct {
	log       *zap.SugaredLogger
	resolving map[*jschema.Schema]bool
	depth     int
}

func newAccumulator(log *zap.SugaredLogger) *accumulator {
	return &accumulator{
		log:       log,
		resolving: make(map[*jschema.Schema]bool),
	}
}

func (a *accumulator) accumulate(s *jschema.Schema, c *model.Constraints) error {
	if s == nil {
		return nil
	}
	if s.Bool != nil {
		return errors.At(errors.ErrUnsupportedSchema, s.URI, "boolean schema %t has no static type", *s.Bool)
	}
	if c.Schema == nil {
		c.Schema = s
	}
	if c.Title == "" {
		c.Title = s.Title
	}
	if c.Description == "" {
		c.Description = s.Description
	}

	a.resolving[s] = true
	defer delete(a.resolving, s)

	for _, e := range s.Elements {
		var err error
		switch v := e.(type) {
		case *jschema.Not:
			err = errors.At(errors.ErrUnsupportedSchema, s.URI, "not is not supported")
		case *jschema.Combination:
			err = a.combination(s, v, c)
		case *jschema.Ref:
			err = a.ref(s, v, c)
		case *jschema.Properties:
			for _, p := range v.Properties {
				if err = a.accumulate(p.Schema, c.Property(p.Name)); err != nil {
					break
				}
			}
		case *jschema.Items:
			err = a.items(s, v, c)
		case *jschema.Required:
			c.AddRequired(v.Names...)
		case *jschema.TypeValidator:
			err = a.types(s, v.Types, c)
		case *jschema.Format:
			err = a.format(s, v.Name, c)
		case *jschema.Pattern:
			err = a.pattern(s, v.Source, c)
		case *jschema.Enum:
			err = a.enum(s, v.Values, c)
		case *jschema.Const:
			if c.HasConst && !jschema.Equal(c.Const, v.Value) {
				err = errors.At(errors.ErrDuplicateConstraint, s.URI, "const %s conflicts with %s",
					jschema.Canonical(v.Value), jschema.Canonical(c.Const))
				break
			}
			c.Const, c.HasConst = v.Value, true
		case *jschema.NumberBound:
			err = a.number(s, v, c)
		case *jschema.LengthBound:
			a.length(v, c)
		case *jschema.Default:
			a.defaultValue(s, v.Value, c)
		case *jschema.Extension:
			if c.Extensions == nil {
				c.Extensions = make(map[string]any)
			}
			if _, exists := c.Extensions[v.Name]; !exists {
				c.Extensions[v.Name] = v.Value
			}
		case *jschema.UniqueItems:
			c.UniqueItems = c.UniqueItems || v.Value
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *accumulator) combination(s *jschema.Schema, v *jschema.Combination, c *model.Constraints) error {
	if v.Keyword != jschema.AllOf {
		return errors.At(errors.ErrUnsupportedSchema, s.URI, "%s is not supported", v.Keyword)
	}
	for _, member := range v.Schemas {
		if err := a.accumulate(member, c); err != nil {
			return err
		}
	}
	return nil
}

func (a *accumulator) ref(s *jschema.Schema, v *jschema.Ref, c *model.Constraints) error {
	if v.Target == nil {
		return errors.At(errors.ErrUnresolvedReference, s.URI, "$ref %q is not bound", v.URI)
	}
	if c.Ref == nil && onRefChain(c.Schema, s) {
		c.Ref = v.Target
	}
	if a.resolving[v.Target] {
		// a reference back into a position being accumulated is typed by
		// the class generated for that node
		c.Ref = v.Target
		c.SelfRef = true
		return nil
	}
	if a.depth >= maxRefDepth {
		return errors.At(errors.ErrUnsupportedSchema, s.URI, "reference chain deeper than %d", maxRefDepth)
	}
	a.depth++
	defer func() { a.depth-- }()
	return a.accumulate(v.Target, c)
}

// onRefChain reports whether s is the position node itself or is reached from
// it through bare references only. A reference inside allOf is merged into the
// position and does not name its type.
func onRefChain(from, s *jschema.Schema) bool {
	for n := 0; from != nil && n <= maxRefDepth; n++ {
		ref := from.BareRef()
		if ref == nil {
			return false
		}
		if from == s {
			return true
		}
		from = ref.Target
	}
	return false
}

func (a *accumulator) items(s *jschema.Schema, v *jschema.Items, c *model.Constraints) error {
	if v.Schema == nil {
		c.TupleItems = true
		return nil
	}
	if c.ArrayItems != nil && c.ArrayItems.Schema != nil && c.ArrayItems.Schema != v.Schema {
		a.log.Debugw("ignoring additional items schema", "uri", s.URI)
		return nil
	}
	return a.accumulate(v.Schema, c.Items())
}

// types intersects the declared types with those already accumulated.
// Integer is a subset of number.
func (a *accumulator) types(s *jschema.Schema, declared []jschema.Type, c *model.Constraints) error {
	if c.Types == nil {
		for _, t := range declared {
			if !slices.Contains(c.Types, t) {
				c.Types = append(c.Types, t)
			}
		}
		c.Nullable = c.Declares(jschema.TypeNull)
		return nil
	}

	var merged []jschema.Type
	add := func(t jschema.Type) {
		if !slices.Contains(merged, t) {
			merged = append(merged, t)
		}
	}
	for _, t := range c.Types {
		switch {
		case slices.Contains(declared, t):
			add(t)
		case t == jschema.TypeInteger && slices.Contains(declared, jschema.TypeNumber):
			add(jschema.TypeInteger)
		case t == jschema.TypeNumber && slices.Contains(declared, jschema.TypeInteger):
			add(jschema.TypeInteger)
		}
	}
	if len(merged) == 0 {
		return errors.At(errors.ErrDuplicateConstraint, s.URI, "type %v conflicts with %v", declared, c.Types)
	}
	c.Types = merged
	c.Nullable = c.Declares(jschema.TypeNull)
	return nil
}

func (a *accumulator) format(s *jschema.Schema, name string, c *model.Constraints) error {
	f, ok := model.ParseFormat(name)
	if !ok {
		a.log.Infow("ignoring unknown format", "uri", s.URI, "format", name)
		return nil
	}
	if c.Format != model.FormatNone && c.Format != f {
		return errors.At(errors.ErrDuplicateConstraint, s.URI, "format %q conflicts with %q", f, c.Format)
	}
	c.Format = f
	return nil
}

func (a *accumulator) pattern(s *jschema.Schema, source string, c *model.Constraints) error {
	if c.Pattern != nil {
		if c.Pattern.Source == source {
			return nil
		}
		return errors.At(errors.ErrDuplicateConstraint, s.URI, "pattern %q conflicts with %q", source, c.Pattern.Source)
	}
	re, err := regexp2.Compile(source, regexp2.ECMAScript)
	if err != nil {
		return errors.Wrapf(err, "%s: invalid pattern %q", s.URI, source)
	}
	c.Pattern = &model.Pattern{Source: source, Regexp: re}
	return nil
}

// enum narrows to the values allowed by every declaration.
func (a *accumulator) enum(s *jschema.Schema, values []any, c *model.Constraints) error {
	if !c.HasEnum {
		c.Enum, c.HasEnum = slices.Clone(values), true
		return nil
	}
	var common []any
	for _, v := range c.Enum {
		if slices.ContainsFunc(values, func(w any) bool { return jschema.Equal(v, w) }) {
			common = append(common, v)
		}
	}
	if len(common) == 0 {
		return errors.At(errors.ErrDuplicateConstraint, s.URI, "enum declarations have no value in common")
	}
	c.Enum = common
	return nil
}

func (a *accumulator) number(s *jschema.Schema, v *jschema.NumberBound, c *model.Constraints) error {
	b := &c.Bounds
	switch v.Keyword {
	case jschema.Minimum:
		b.Minimum = tighter(b.Minimum, v.Value, decimal.Decimal.GreaterThan)
	case jschema.ExclusiveMinimum:
		b.ExclusiveMinimum = tighter(b.ExclusiveMinimum, v.Value, decimal.Decimal.GreaterThan)
	case jschema.Maximum:
		b.Maximum = tighter(b.Maximum, v.Value, decimal.Decimal.LessThan)
	case jschema.ExclusiveMaximum:
		b.ExclusiveMaximum = tighter(b.ExclusiveMaximum, v.Value, decimal.Decimal.LessThan)
	case jschema.MultipleOf:
		m, err := narrowMultiple(b.MultipleOf, v.Value)
		if err != nil {
			return errors.At(errors.ErrDuplicateConstraint, s.URI, "%v", err)
		}
		b.MultipleOf = m
	}
	return nil
}

// tighter returns the stricter of an existing bound and v.
func tighter(existing *decimal.Decimal, v decimal.Decimal, stricter func(decimal.Decimal, decimal.Decimal) bool) *decimal.Decimal {
	if existing == nil || stricter(v, *existing) {
		return &v
	}
	return existing
}

// narrowMultiple combines two multipleOf declarations into one that implies
// both.
func narrowMultiple(existing *decimal.Decimal, v decimal.Decimal) (*decimal.Decimal, error) {
	if existing == nil {
		return &v, nil
	}
	switch {
	case v.Mod(*existing).IsZero():
		return &v, nil
	case existing.Mod(v).IsZero():
		return existing, nil
	case v.IsInteger() && existing.IsInteger():
		x, y := existing.BigInt(), v.BigInt()
		gcd := new(big.Int).GCD(nil, nil, x, y)
		lcm := new(big.Int).Mul(new(big.Int).Quo(x, gcd), y)
		m := decimal.NewFromBigInt(lcm, 0)
		return &m, nil
	}
	return nil, errors.Newf("multipleOf %s conflicts with %s", v, existing)
}

func (a *accumulator) length(v *jschema.LengthBound, c *model.Constraints) {
	switch v.Keyword {
	case jschema.MinLength:
		c.MinLength = atLeast(c.MinLength, v.Value)
	case jschema.MaxLength:
		c.MaxLength = atMost(c.MaxLength, v.Value)
	case jschema.MinItems:
		c.MinItems = atLeast(c.MinItems, v.Value)
	case jschema.MaxItems:
		c.MaxItems = atMost(c.MaxItems, v.Value)
	}
}

func atLeast(existing *int, v int) *int {
	if existing == nil || v > *existing {
		return &v
	}
	return existing
}

func atMost(existing *int, v int) *int {
	if existing == nil || v < *existing {
		return &v
	}
	return existing
}

func (a *accumulator) defaultValue(s *jschema.Schema, v any, c *model.Constraints) {
	if _, ok := v.(*jschema.Object); ok {
		a.log.Warnw("discarding default value",
			"error", errors.At(errors.ErrInvalidDefaultValue, s.URI, "object defaults are not supported"))
		return
	}
	if c.HasDefault {
		if !jschema.Equal(c.Default, v) {
			a.log.Infow("ignoring additional default value", "uri", s.URI, "default", jschema.Canonical(v))
		}
		return
	}
	c.Default, c.HasDefault = v, true
}
