// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package model holds the language-agnostic description of generated code:
// targets (classes and enumerations), the accumulated constraints of every
// schema position, validations and static constants.
package model

// Category is the semantic type of a schema position.
type Category int

// Categories. Exactly one applies to a resolved position.
const (
	CategoryUnresolved Category = iota
	CategoryObject
	CategoryArray
	CategoryString
	CategoryBoolean
	CategoryInt
	CategoryLong
	CategoryDecimal
)

var categoryNames = [...]string{
	CategoryUnresolved: "unresolved",
	CategoryObject:     "object",
	CategoryArray:      "array",
	CategoryString:     "string",
	CategoryBoolean:    "boolean",
	CategoryInt:        "int",
	CategoryLong:       "long",
	CategoryDecimal:    "decimal",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsNumeric reports whether c is one of the integer or decimal categories.
func (c Category) IsNumeric() bool {
	return c == CategoryInt || c == CategoryLong || c == CategoryDecimal
}

// SystemClass is a platform type a position maps to instead of a primitive
// or generated class.
type SystemClass int

// System classes.
const (
	SystemNone SystemClass = iota
	// SystemAny is the untyped placeholder for positions whose shape cannot be
	// determined.
	SystemAny
	SystemDate
	SystemDateTime
	SystemTime
	SystemDuration
	SystemUUID
	SystemURI
)

var systemClassNames = [...]string{
	SystemNone:     "",
	SystemAny:      "any",
	SystemDate:     "date",
	SystemDateTime: "date-time",
	SystemTime:     "time",
	SystemDuration: "duration",
	SystemUUID:     "uuid",
	SystemURI:      "uri",
}

func (s SystemClass) String() string {
	if s < 0 || int(s) >= len(systemClassNames) {
		return "unknown"
	}
	return systemClassNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s SystemClass) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Format is one of the recognized values of the format keyword.
type Format string

// Recognized formats. Unknown names are ignored by analysis.
const (
	FormatNone         Format = ""
	FormatEmail        Format = "email"
	FormatHostname     Format = "hostname"
	FormatIPv4         Format = "ipv4"
	FormatIPv6         Format = "ipv6"
	FormatDate         Format = "date"
	FormatDateTime     Format = "date-time"
	FormatTime         Format = "time"
	FormatDuration     Format = "duration"
	FormatUUID         Format = "uuid"
	FormatURI          Format = "uri"
	FormatURIReference Format = "uri-reference"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatEmail, FormatHostname, FormatIPv4, FormatIPv6, FormatDate, FormatDateTime,
		FormatTime, FormatDuration, FormatUUID, FormatURI, FormatURIReference:
		return f, true
	}
	return FormatNone, false
}

// SystemClass returns the platform type a string with this format is
// represented by, or SystemNone when the value stays a string.
func (f Format) SystemClass() SystemClass {
	switch f {
	case FormatDate:
		return SystemDate
	case FormatDateTime:
		return SystemDateTime
	case FormatTime:
		return SystemTime
	case FormatDuration:
		return SystemDuration
	case FormatUUID:
		return SystemUUID
	case FormatURI, FormatURIReference:
		return SystemURI
	}
	return SystemNone
}

// Validated reports whether values of this format are checked at runtime
// rather than represented by a system class.
func (f Format) Validated() bool {
	switch f {
	case FormatEmail, FormatHostname, FormatIPv4, FormatIPv6:
		return true
	}
	return false
}
