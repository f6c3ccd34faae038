// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"path"
	"regexp"
	"strings"
)

// schemaSuffixes are stripped from file names before deriving class names.
// Longer suffixes come first.
var schemaSuffixes = []string{
	".schema.json", "-schema.json", "_schema.json",
	".schema.yaml", "-schema.yaml", "_schema.yaml",
	".schema.yml", "-schema.yml", "_schema.yml",
	".json", ".yaml", ".yml",
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ClassNameFromSource derives a class name from a schema origin such as
// "file:///schemas/purchase-order.schema.json" or "purchase-order.yaml".
// It returns "" when nothing usable remains.
func ClassNameFromSource(source string) string {
	if i := strings.Index(source, "#"); i >= 0 {
		source = source[:i]
	}
	base := path.Base(strings.TrimSuffix(source, "/"))
	if base == "." || base == "/" {
		return ""
	}
	lower := strings.ToLower(base)
	for _, suffix := range schemaSuffixes {
		if strings.HasSuffix(lower, suffix) {
			base = base[:len(base)-len(suffix)]
			break
		}
	}
	return ToClassName(base)
}

// ToClassName converts a name with -, _, . or space separated segments into a
// capitalized concatenation holding only ASCII letters and digits. Names
// starting with a digit are prefixed with "C".
func ToClassName(s string) string {
	return sanitizeClassName(ToPascalCase(s))
}

// ToPascalCase capitalizes every -, _, . or space separated segment and joins them.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}

func sanitizeClassName(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIILetter(c) || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
		}
	}
	out := sb.String()
	if out != "" && !isASCIILetter(out[0]) {
		out = "C" + out
	}
	return out
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// singular strips one trailing "s" from an array property name.
func singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return name[:len(name)-1]
	}
	return name
}

// PackageName returns the package of a target: base, extended by the
// sanitized segments of subDir when derive is set.
func PackageName(base, subDir string, derive bool, p Profile) string {
	if !derive || subDir == "" {
		return base
	}
	segments := []string{}
	if base != "" {
		segments = append(segments, base)
	}
	for _, seg := range strings.Split(path.Clean(subDir), "/") {
		seg = sanitizePackageSegment(seg, p)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, ".")
}

func sanitizePackageSegment(seg string, p Profile) string {
	var sb strings.Builder
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case isASCIILetter(c):
			sb.WriteByte(c | 0x20)
		case c >= '0' && c <= '9', c == '_':
			sb.WriteByte(c)
		}
	}
	out := sb.String()
	if out == "" || out == "." {
		return ""
	}
	if !isASCIILetter(out[0]) {
		out = "_" + out
	}
	if p.IsKeyword(out) {
		out += "_"
	}
	return out
}

// isIdentifierSafe reports whether v can be used verbatim as an enumeration
// member name.
func isIdentifierSafe(v string, p Profile) bool {
	return identifierPattern.MatchString(v) && !p.IsKeyword(v)
}
