// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package kotlin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dacolabs/schemagen/internal/codegen"
	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/model"
)

var formatPatterns = map[model.Format]string{
	model.FormatEmail:    `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
	model.FormatHostname: `^(?=.{1,253}$)[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`,
	model.FormatIPv4:     `^((25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.){3}(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])$`,
	model.FormatIPv6:     `^[0-9A-Fa-f:.]*:[0-9A-Fa-f:.]*$`,
}

// identifier returns name as a Kotlin identifier, quoted with backticks when
// it is a keyword or contains other characters.
func identifier(name string) string {
	if isPlain(name) && !codegen.Kotlin.IsKeyword(name) {
		return name
	}
	return "`" + name + "`"
}

func isPlain(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// checks returns the init block statements validating property p, bound to
// the parameter name.
func checks(p *model.Constraints, name string, nullable bool) []string {
	label := strings.Trim(name, "`")
	var out []string
	for _, v := range p.Validations {
		cond := condition(p, v, name)
		if nullable {
			cond = name + " == null || " + cond
		}
		out = append(out, fmt.Sprintf("require(%s) { %s }", cond, quote(label+": "+v.Kind.String())))
	}
	if items := p.ArrayItems; items != nil {
		for _, cond := range itemConditions(items, 0) {
			if nullable {
				cond = name + " == null || " + name + ".all { " + cond + " }"
			} else {
				cond = name + ".all { " + cond + " }"
			}
			out = append(out, fmt.Sprintf("require(%s) { %s }", cond, quote(label+": invalid item")))
		}
	}
	return out
}

// itemConditions returns one lambda body per validation of array elements,
// descending into nested arrays.
func itemConditions(items *model.Constraints, depth int) []string {
	v := "e" + strconv.Itoa(depth)
	var out []string
	for _, val := range items.Validations {
		cond := condition(items, val, v)
		if items.Nullable {
			cond = v + " == null || " + cond
		}
		out = append(out, v+" -> "+cond)
	}
	if items.ArrayItems != nil {
		for _, inner := range itemConditions(items.ArrayItems, depth+1) {
			prefix := v
			if items.Nullable {
				prefix = v + " == null || " + v
			}
			out = append(out, v+" -> "+prefix+".all { "+inner+" }")
		}
	}
	return out
}

func condition(p *model.Constraints, v model.Validation, x string) string {
	num := x
	if p.Category != model.CategoryDecimal {
		num = x + ".toBigDecimal()"
	}

	switch v.Kind {
	case model.ValidateMinInt:
		return fmt.Sprintf("%s >= %v", x, v.Value)
	case model.ValidateMaxInt:
		return fmt.Sprintf("%s <= %v", x, v.Value)
	case model.ValidateExclusiveMinInt:
		return fmt.Sprintf("%s > %v", x, v.Value)
	case model.ValidateExclusiveMaxInt:
		return fmt.Sprintf("%s < %v", x, v.Value)
	case model.ValidateMultipleOfInt:
		return fmt.Sprintf("%s %% %v == 0", x, v.Value)
	case model.ValidateMinLong:
		return fmt.Sprintf("%s >= %vL", x, v.Value)
	case model.ValidateMaxLong:
		return fmt.Sprintf("%s <= %vL", x, v.Value)
	case model.ValidateExclusiveMinLong:
		return fmt.Sprintf("%s > %vL", x, v.Value)
	case model.ValidateExclusiveMaxLong:
		return fmt.Sprintf("%s < %vL", x, v.Value)
	case model.ValidateMultipleOfLong:
		return fmt.Sprintf("%s %% %vL == 0L", x, v.Value)
	case model.ValidateMinDecimal:
		return fmt.Sprintf("%s.compareTo(%s) >= 0", num, v.Static)
	case model.ValidateMaxDecimal:
		return fmt.Sprintf("%s.compareTo(%s) <= 0", num, v.Static)
	case model.ValidateExclusiveMinDecimal:
		return fmt.Sprintf("%s.compareTo(%s) > 0", num, v.Static)
	case model.ValidateExclusiveMaxDecimal:
		return fmt.Sprintf("%s.compareTo(%s) < 0", num, v.Static)
	case model.ValidateMultipleOfDecimal:
		return fmt.Sprintf("%s.remainder(%s).signum() == 0", num, v.Static)
	case model.ValidateMinLength:
		return fmt.Sprintf("%s.length >= %v", x, v.Value)
	case model.ValidateMaxLength:
		return fmt.Sprintf("%s.length <= %v", x, v.Value)
	case model.ValidatePattern:
		return fmt.Sprintf("%s.containsMatchIn(%s)", v.Static, x)
	case model.ValidateFormat:
		f, _ := v.Value.(model.Format)
		return fmt.Sprintf("Regex(%s).matches(%s)", quote(formatPatterns[f]), x)
	case model.ValidateEnumString:
		return fmt.Sprintf("%s in %s", x, v.Static)
	case model.ValidateEnumInt:
		if p.Category == model.CategoryInt {
			return fmt.Sprintf("%s.toLong() in %s", x, v.Static)
		}
		return fmt.Sprintf("%s in %s", x, v.Static)
	case model.ValidateConstString:
		return fmt.Sprintf("%s == %s", x, v.Static)
	case model.ValidateConstInt:
		return fmt.Sprintf("%s == %v", x, v.Value)
	case model.ValidateConstLong:
		return fmt.Sprintf("%s == %vL", x, v.Value)
	case model.ValidateConstDecimal:
		return fmt.Sprintf("%s.compareTo(%s) == 0", num, v.Static)
	case model.ValidateMinItems:
		return fmt.Sprintf("%s.size >= %v", x, v.Value)
	case model.ValidateMaxItems:
		return fmt.Sprintf("%s.size <= %v", x, v.Value)
	case model.ValidateUniqueItems:
		return fmt.Sprintf("%s.toSet().size == %s.size", x, x)
	}
	return "true"
}

// static returns the companion object declaration of a shared constant.
func static(s model.StaticField, imports *importSet) (string, error) {
	switch s.Kind {
	case model.StaticString:
		v, ok := s.Value.(string)
		if ok {
			return fmt.Sprintf("const val %s = %s", s.Name, quote(v)), nil
		}
	case model.StaticPattern:
		v, ok := s.Value.(string)
		if ok {
			return fmt.Sprintf("val %s = Regex(%s)", s.Name, quote(v)), nil
		}
	case model.StaticStringArray:
		v, ok := s.Value.([]string)
		if ok {
			if len(v) == 0 {
				return fmt.Sprintf("val %s = emptySet<String>()", s.Name), nil
			}
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = quote(item)
			}
			return fmt.Sprintf("val %s = setOf(%s)", s.Name, strings.Join(items, ", ")), nil
		}
	case model.StaticIntArray:
		v, ok := s.Value.([]int64)
		if ok {
			if len(v) == 0 {
				return fmt.Sprintf("val %s = emptySet<Long>()", s.Name), nil
			}
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = strconv.FormatInt(item, 10) + "L"
			}
			return fmt.Sprintf("val %s = setOf(%s)", s.Name, strings.Join(items, ", ")), nil
		}
	case model.StaticDecimal:
		v, ok := s.Value.(decimal.Decimal)
		if ok {
			imports.add("java.math.BigDecimal")
			return fmt.Sprintf("val %s = BigDecimal(%s)", s.Name, quote(v.String())), nil
		}
	}
	return "", errors.Newf("constant %s has unexpected %s value %T", s.Name, s.Kind, s.Value)
}

// literal returns the Kotlin expression of a default value. It reports false
// when the value has no literal form for the property type.
func literal(p *model.Constraints, value any, imports *importSet) (string, bool) {
	if value == nil {
		return "null", true
	}
	if p.CustomClass != nil || p.SystemClass != model.SystemNone {
		return "", false
	}
	if p.IsEnum() {
		s, ok := value.(string)
		if !ok {
			return "", false
		}
		return typeName(p.LocalType) + "." + s, true
	}

	switch v := value.(type) {
	case string:
		if p.Category == model.CategoryString {
			return quote(v), true
		}
	case bool:
		if p.Category == model.CategoryBoolean {
			return strconv.FormatBool(v), true
		}
	case decimal.Decimal:
		switch p.Category {
		case model.CategoryInt:
			return v.String(), true
		case model.CategoryLong:
			return v.String() + "L", true
		case model.CategoryDecimal:
			imports.add("java.math.BigDecimal")
			return "BigDecimal(" + quote(v.String()) + ")", true
		}
	case []any:
		if len(v) == 0 && p.Category == model.CategoryArray {
			return "emptyList()", true
		}
	}
	return "", false
}

// quote returns s as a Kotlin string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
