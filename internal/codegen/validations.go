// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

func (b *build) stringValidations(u *unit, p *model.Constraints) error {
	if p.MinLength != nil {
		p.AddValidation(model.ValidateMinLength, *p.MinLength, "")
	}
	if p.MaxLength != nil {
		p.AddValidation(model.ValidateMaxLength, *p.MaxLength, "")
	}
	if p.Pattern != nil {
		name, err := u.pool.Add(model.StaticPattern, p.Pattern.Source)
		if err != nil {
			return err
		}
		p.AddValidation(model.ValidatePattern, nil, name)
	}
	if p.Format.Validated() {
		p.AddValidation(model.ValidateFormat, p.Format, "")
	}
	if p.HasEnum {
		var values []string
		for _, v := range p.Enum {
			if s, ok := v.(string); ok {
				values = append(values, s)
			}
		}
		name, err := u.pool.Add(model.StaticStringArray, values)
		if err != nil {
			return err
		}
		p.AddValidation(model.ValidateEnumString, nil, name)
	}
	if s, ok := p.Const.(string); ok && p.HasConst {
		name, err := u.pool.Add(model.StaticString, s)
		if err != nil {
			return err
		}
		p.AddValidation(model.ValidateConstString, nil, name)
	}
	return nil
}

func (b *build) numberValidations(u *unit, p *model.Constraints) error {
	bounds := []struct {
		bound model.NumericBound
		value *decimal.Decimal
		round func(decimal.Decimal) decimal.Decimal
	}{
		{model.BoundMin, p.Bounds.Minimum, decimal.Decimal.Ceil},
		{model.BoundMax, p.Bounds.Maximum, decimal.Decimal.Floor},
		{model.BoundExclusiveMin, p.Bounds.ExclusiveMinimum, decimal.Decimal.Floor},
		{model.BoundExclusiveMax, p.Bounds.ExclusiveMaximum, decimal.Decimal.Ceil},
		{model.BoundMultipleOf, p.Bounds.MultipleOf, nil},
	}

	for _, bd := range bounds {
		if bd.value == nil {
			continue
		}
		v := *bd.value
		category := p.Category
		if category != model.CategoryDecimal && bd.bound == model.BoundMultipleOf && !v.IsInteger() {
			category = model.CategoryDecimal
		}
		kind, _ := model.NumericValidation(bd.bound, category)
		if category == model.CategoryDecimal {
			name, err := u.pool.Add(model.StaticDecimal, v)
			if err != nil {
				return err
			}
			p.AddValidation(kind, nil, name)
			continue
		}
		if bd.round != nil {
			v = bd.round(v)
		}
		if !fitsInt64(v) {
			b.log.Debugw("bound outside the 64-bit range is not validated", "uri", p.Schema.URI, "value", v)
			continue
		}
		p.AddValidation(kind, v.IntPart(), "")
	}

	if p.HasEnum {
		if p.Category == model.CategoryDecimal {
			b.log.Debugw("decimal enumeration is not validated", "uri", p.Schema.URI)
		} else {
			var values []int64
			for _, v := range p.Enum {
				if d, ok := v.(decimal.Decimal); ok && d.IsInteger() && fitsInt64(d) {
					values = append(values, d.IntPart())
				}
			}
			name, err := u.pool.Add(model.StaticIntArray, values)
			if err != nil {
				return err
			}
			p.AddValidation(model.ValidateEnumInt, nil, name)
		}
	}

	if d, ok := p.Const.(decimal.Decimal); ok && p.HasConst {
		switch {
		case p.Category == model.CategoryDecimal || !d.IsInteger() || !fitsInt64(d):
			name, err := u.pool.Add(model.StaticDecimal, d)
			if err != nil {
				return err
			}
			p.AddValidation(model.ValidateConstDecimal, nil, name)
		case p.Category == model.CategoryInt:
			p.AddValidation(model.ValidateConstInt, d.IntPart(), "")
		default:
			p.AddValidation(model.ValidateConstLong, d.IntPart(), "")
		}
	}
	return nil
}

func arrayValidations(p *model.Constraints) {
	if p.MinItems != nil {
		p.AddValidation(model.ValidateMinItems, *p.MinItems, "")
	}
	if p.MaxItems != nil {
		p.AddValidation(model.ValidateMaxItems, *p.MaxItems, "")
	}
	if p.UniqueItems {
		p.AddValidation(model.ValidateUniqueItems, nil, "")
	}
}

func fitsInt64(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(minInt64) && v.LessThanOrEqual(maxInt64)
}

// checkDefault discards a default value that does not fit the resolved type
// of the position.
func (b *build) checkDefault(p *model.Constraints) {
	if !p.HasDefault || defaultFits(p) {
		return
	}
	b.log.Warnw("discarding default value",
		"error", errors.At(errors.ErrInvalidDefaultValue, p.Schema.URI, "default %s does not match type %s",
			jschema.Canonical(p.Default), p.Category))
	p.Default, p.HasDefault = nil, false
}

func defaultFits(p *model.Constraints) bool {
	if p.Default == nil {
		return p.Nullable || p.Category == model.CategoryUnresolved
	}
	switch p.Category {
	case model.CategoryUnresolved:
		return true
	case model.CategoryString:
		s, ok := p.Default.(string)
		if ok && p.IsEnum() {
			for _, m := range p.LocalType.EnumValues {
				if m == s {
					return true
				}
			}
			return false
		}
		return ok
	case model.CategoryBoolean:
		_, ok := p.Default.(bool)
		return ok
	case model.CategoryInt:
		d, ok := p.Default.(decimal.Decimal)
		return ok && d.IsInteger() && p.IntRange.Contains(d)
	case model.CategoryLong:
		d, ok := p.Default.(decimal.Decimal)
		return ok && d.IsInteger() && fitsInt64(d)
	case model.CategoryDecimal:
		_, ok := p.Default.(decimal.Decimal)
		return ok
	case model.CategoryArray:
		_, ok := p.Default.([]any)
		return ok
	}
	return false
}
