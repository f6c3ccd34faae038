// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package model

// ValidationKind identifies a runtime check on a property.
type ValidationKind int

// Validation kinds. Numeric bounds exist per numeric width.
const (
	ValidateMinInt ValidationKind = iota
	ValidateMaxInt
	ValidateExclusiveMinInt
	ValidateExclusiveMaxInt
	ValidateMultipleOfInt
	ValidateMinLong
	ValidateMaxLong
	ValidateExclusiveMinLong
	ValidateExclusiveMaxLong
	ValidateMultipleOfLong
	ValidateMinDecimal
	ValidateMaxDecimal
	ValidateExclusiveMinDecimal
	ValidateExclusiveMaxDecimal
	ValidateMultipleOfDecimal
	ValidateMinLength
	ValidateMaxLength
	ValidatePattern
	ValidateEnumString
	ValidateEnumInt
	ValidateConstString
	ValidateConstInt
	ValidateConstLong
	ValidateConstDecimal
	ValidateMinItems
	ValidateMaxItems
	ValidateUniqueItems
	ValidateFormat
)

var validationNames = [...]string{
	ValidateMinInt:              "min-int",
	ValidateMaxInt:              "max-int",
	ValidateExclusiveMinInt:     "exclusive-min-int",
	ValidateExclusiveMaxInt:     "exclusive-max-int",
	ValidateMultipleOfInt:       "multiple-of-int",
	ValidateMinLong:             "min-long",
	ValidateMaxLong:             "max-long",
	ValidateExclusiveMinLong:    "exclusive-min-long",
	ValidateExclusiveMaxLong:    "exclusive-max-long",
	ValidateMultipleOfLong:      "multiple-of-long",
	ValidateMinDecimal:          "min-decimal",
	ValidateMaxDecimal:          "max-decimal",
	ValidateExclusiveMinDecimal: "exclusive-min-decimal",
	ValidateExclusiveMaxDecimal: "exclusive-max-decimal",
	ValidateMultipleOfDecimal:   "multiple-of-decimal",
	ValidateMinLength:           "min-length",
	ValidateMaxLength:           "max-length",
	ValidatePattern:             "pattern",
	ValidateEnumString:          "enum-string",
	ValidateEnumInt:             "enum-int",
	ValidateConstString:         "const-string",
	ValidateConstInt:            "const-int",
	ValidateConstLong:           "const-long",
	ValidateConstDecimal:        "const-decimal",
	ValidateMinItems:            "min-items",
	ValidateMaxItems:            "max-items",
	ValidateUniqueItems:         "unique-items",
	ValidateFormat:              "format",
}

func (k ValidationKind) String() string {
	if k < 0 || int(k) >= len(validationNames) {
		return "unknown"
	}
	return validationNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ValidationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NumericBound selects a numeric bound validation independent of width.
type NumericBound int

// Numeric bounds.
const (
	BoundMin NumericBound = iota
	BoundMax
	BoundExclusiveMin
	BoundExclusiveMax
	BoundMultipleOf
)

// NumericValidation returns the validation kind of bound b for a numeric
// category. It reports false for non-numeric categories.
func NumericValidation(b NumericBound, c Category) (ValidationKind, bool) {
	var first ValidationKind
	switch c {
	case CategoryInt:
		first = ValidateMinInt
	case CategoryLong:
		first = ValidateMinLong
	case CategoryDecimal:
		first = ValidateMinDecimal
	default:
		return 0, false
	}
	return first + ValidationKind(b), true
}

// Validation is one runtime check. Value holds an inline literal (int64 for
// integer widths, int for lengths, Format for format checks). Static names the
// StaticField holding the operand when it is not inlined.
type Validation struct {
	Kind   ValidationKind `json:"kind"`
	Value  any            `json:"value,omitempty"`
	Static string         `json:"static,omitempty"`
}

// StaticKind identifies the type of a static constant.
type StaticKind int

// Static constant kinds.
const (
	StaticString StaticKind = iota
	StaticStringArray
	StaticIntArray
	StaticPattern
	StaticDecimal
)

var staticNames = [...]string{
	StaticString:      "string",
	StaticStringArray: "string-array",
	StaticIntArray:    "int-array",
	StaticPattern:     "pattern",
	StaticDecimal:     "decimal",
}

func (k StaticKind) String() string {
	if k < 0 || int(k) >= len(staticNames) {
		return "unknown"
	}
	return staticNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k StaticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// StaticField is a named constant shared by validations of one output unit.
// Value is a string (StaticString, StaticPattern), []string, []int64 or
// decimal.Decimal.
type StaticField struct {
	Name  string     `json:"name"`
	Kind  StaticKind `json:"kind"`
	Value any        `json:"value"`
}
