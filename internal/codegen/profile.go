// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/model"
)

// Profile holds the target-language facts the analysis depends on: the plain
// integer range and the identifiers that cannot be used verbatim.
type Profile struct {
	Name       string
	FileSuffix string
	IntRange   model.IntRange
	Keywords   []string
}

// IsKeyword reports whether s is reserved in the language.
func (p Profile) IsKeyword(s string) bool {
	return slices.Contains(p.Keywords, s)
}

// Kotlin is the default profile.
var Kotlin = Profile{
	Name:       "kotlin",
	FileSuffix: ".kt",
	IntRange:   model.Int32Range,
	Keywords: []string{
		"as", "break", "class", "continue", "do", "else", "false", "for", "fun", "if",
		"in", "interface", "is", "null", "object", "package", "return", "super", "this",
		"throw", "true", "try", "typealias", "typeof", "val", "var", "when", "while",
	},
}

var Java = Profile{
	Name:       "java",
	FileSuffix: ".java",
	IntRange:   model.Int32Range,
	Keywords: []string{
		"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class",
		"const", "continue", "default", "do", "double", "else", "enum", "extends", "final",
		"finally", "float", "for", "goto", "if", "implements", "import", "instanceof", "int",
		"interface", "long", "native", "new", "package", "private", "protected", "public",
		"return", "short", "static", "strictfp", "super", "switch", "synchronized", "this",
		"throw", "throws", "transient", "try", "void", "volatile", "while", "true", "false", "null",
	},
}

// TypeScript numbers are doubles; integers are exact up to 2^53-1.
var TypeScript = Profile{
	Name:       "typescript",
	FileSuffix: ".ts",
	IntRange: model.IntRange{
		Min: decimal.NewFromInt(-(1<<53 - 1)),
		Max: decimal.NewFromInt(1<<53 - 1),
	},
	Keywords: []string{
		"break", "case", "catch", "class", "const", "continue", "debugger", "default", "delete",
		"do", "else", "enum", "export", "extends", "false", "finally", "for", "function", "if",
		"import", "in", "instanceof", "new", "null", "return", "super", "switch", "this",
		"throw", "true", "try", "typeof", "var", "void", "while", "with",
	},
}

var profiles = []Profile{Kotlin, Java, TypeScript}

// ProfileByName returns the profile for a language name.
func ProfileByName(name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, errors.Newf("unknown language profile: %s", name)
}

// ProfileNames returns the names of all profiles.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}
