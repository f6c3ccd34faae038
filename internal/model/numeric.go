// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// IntRange is the value range of the plain integer type of a target language.
type IntRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Int32Range is the 32-bit signed integer range.
var Int32Range = IntRange{
	Min: decimal.NewFromInt(math.MinInt32),
	Max: decimal.NewFromInt(math.MaxInt32),
}

// Contains reports whether v lies within the range.
func (r IntRange) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max)
}

// Bounds are the numeric validators of a position. Nil means not declared.
type Bounds struct {
	Minimum          *decimal.Decimal
	ExclusiveMinimum *decimal.Decimal
	Maximum          *decimal.Decimal
	ExclusiveMaximum *decimal.Decimal
	MultipleOf       *decimal.Decimal
}

// IsZero reports whether no bound is declared.
func (b Bounds) IsZero() bool {
	return b.Minimum == nil && b.ExclusiveMinimum == nil && b.Maximum == nil &&
		b.ExclusiveMaximum == nil && b.MultipleOf == nil
}

// IntegerEligible reports whether values can be represented by an integer
// type. Declared integers always are. Declared numbers are when multipleOf is
// integral and every other bound is integral too.
func (b Bounds) IntegerEligible(declaredInteger bool) bool {
	if declaredInteger {
		return true
	}
	if b.MultipleOf == nil || !b.MultipleOf.IsInteger() {
		return false
	}
	for _, v := range []*decimal.Decimal{b.Minimum, b.ExclusiveMinimum, b.Maximum, b.ExclusiveMaximum} {
		if v != nil && !v.IsInteger() {
			return false
		}
	}
	return true
}

// Lower returns the smallest integer allowed by the lower bounds.
func (b Bounds) Lower() (decimal.Decimal, bool) {
	var (
		lower decimal.Decimal
		ok    bool
	)
	if b.Minimum != nil {
		lower, ok = b.Minimum.Ceil(), true
	}
	if b.ExclusiveMinimum != nil {
		v := b.ExclusiveMinimum.Floor().Add(decimal.NewFromInt(1))
		if !ok || v.GreaterThan(lower) {
			lower, ok = v, true
		}
	}
	return lower, ok
}

// Upper returns the largest integer allowed by the upper bounds.
func (b Bounds) Upper() (decimal.Decimal, bool) {
	var (
		upper decimal.Decimal
		ok    bool
	)
	if b.Maximum != nil {
		upper, ok = b.Maximum.Floor(), true
	}
	if b.ExclusiveMaximum != nil {
		v := b.ExclusiveMaximum.Ceil().Sub(decimal.NewFromInt(1))
		if !ok || v.LessThan(upper) {
			upper, ok = v, true
		}
	}
	return upper, ok
}

// ClassifyNumber decides the numeric category of a position. Integer-eligible
// values are CategoryInt only when both effective bounds exist and lie within
// r; a missing bound always means CategoryLong. Everything else is
// CategoryDecimal.
func ClassifyNumber(b Bounds, declaredInteger bool, r IntRange) Category {
	if !b.IntegerEligible(declaredInteger) {
		return CategoryDecimal
	}
	lower, hasLower := b.Lower()
	upper, hasUpper := b.Upper()
	if hasLower && hasUpper && r.Contains(lower) && r.Contains(upper) {
		return CategoryInt
	}
	return CategoryLong
}
