// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package kotlin renders targets as Kotlin classes and enumerations.
package kotlin

import (
	"bytes"
	"embed"
	"slices"
	"strings"
	"text/template"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/model"
)

//go:embed kotlin.kt.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"last": func(i int, items []string) bool {
		return i == len(items)-1
	},
	"join": strings.Join,
}).ParseFS(tmplFS, "kotlin.kt.tmpl"))

// Renderer renders Kotlin source files.
type Renderer struct{}

// Name returns the renderer identifier.
func (r *Renderer) Name() string {
	return "kotlin"
}

// FileExtension returns the file extension for Kotlin files.
func (r *Renderer) FileExtension() string {
	return ".kt"
}

// file is the data passed to the template.
type file struct {
	Source  string
	Package string
	Imports []string
	Root    *decl
}

// decl is one class or enumeration declaration.
type decl struct {
	Indent  string
	Doc     string
	Name    string
	Enum    bool
	Members []string
	Params  []string
	Super   string
	Checks  []string
	Nested  []*decl
	Statics []string
}

// Render converts a top-level target into a Kotlin source file.
func (r *Renderer) Render(t *model.Target) ([]byte, error) {
	if t.Parent != nil {
		return nil, errors.Newf("nested target %s is rendered with its parent", t.Name)
	}

	imports := &importSet{names: slices.Clone(t.Imports)}
	root, err := declare(t, "", imports)
	if err != nil {
		return nil, err
	}
	for _, s := range t.Statics {
		line, err := static(s, imports)
		if err != nil {
			return nil, err
		}
		root.Statics = append(root.Statics, line)
	}

	data := file{
		Source:  t.Source,
		Package: t.Package,
		Imports: imports.sorted(),
		Root:    root,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "kotlin.kt.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	return buf.Bytes(), nil
}

func declare(t *model.Target, indent string, imports *importSet) (*decl, error) {
	d := &decl{
		Indent: indent,
		Doc:    docComment(t.Description),
		Name:   t.Name,
	}
	if t.Kind == model.KindEnum {
		d.Enum = true
		d.Members = t.EnumValues
		return d, nil
	}

	c := t.Constraints
	var superArgs []string
	for _, p := range t.Properties() {
		name := identifier(p.Name)
		if p.Inherited {
			resolved, owner := inheritedProperty(t.Base, p.Name)
			if resolved == nil {
				resolved, owner = p, c
			}
			d.Params = append(d.Params, name+": "+parameterType(resolved, owner, imports))
			superArgs = append(superArgs, name+" = "+name)
			continue
		}
		d.Params = append(d.Params, "val "+name+": "+parameterType(p, c, imports))
		d.Checks = append(d.Checks, checks(p, name, optional(p, c))...)
	}
	if t.Base != nil {
		d.Super = typeName(t.Base) + "(" + strings.Join(superArgs, ", ") + ")"
	}

	for _, n := range t.Nested {
		nd, err := declare(n, indent+"    ", imports)
		if err != nil {
			return nil, err
		}
		d.Nested = append(d.Nested, nd)
	}
	return d, nil
}

// inheritedProperty finds the analyzed declaration of a property along the
// base chain together with the constraints of the declaring class.
func inheritedProperty(base *model.Target, name string) (*model.Constraints, *model.Constraints) {
	for b := base; b != nil; b = b.Base {
		if b.Constraints == nil {
			continue
		}
		if p, ok := b.Constraints.Lookup(name); ok && !p.Inherited {
			return p, b.Constraints
		}
	}
	return nil, nil
}

func optional(p, parent *model.Constraints) bool {
	return p.Nullable || !parent.Requires(p.Name)
}

func parameterType(p, parent *model.Constraints, imports *importSet) string {
	typ := kotlinType(p, imports)
	opt := optional(p, parent)
	if opt {
		typ += "?"
	}
	if p.HasDefault {
		if lit, ok := literal(p, p.Default, imports); ok {
			return typ + " = " + lit
		}
	}
	if opt {
		return typ + " = null"
	}
	return typ
}

func typeName(t *model.Target) string {
	return t.LocalPath()
}

var systemTypes = map[model.SystemClass]struct{ name, pkg string }{
	model.SystemDate:     {"LocalDate", "java.time"},
	model.SystemDateTime: {"OffsetDateTime", "java.time"},
	model.SystemTime:     {"LocalTime", "java.time"},
	model.SystemDuration: {"Duration", "java.time"},
	model.SystemUUID:     {"UUID", "java.util"},
	model.SystemURI:      {"URI", "java.net"},
}

func kotlinType(p *model.Constraints, imports *importSet) string {
	switch {
	case p.CustomClass != nil:
		return p.CustomClass.Name
	case p.LocalType != nil:
		return typeName(p.LocalType)
	}
	if st, ok := systemTypes[p.SystemClass]; ok {
		imports.add(st.pkg + "." + st.name)
		return st.name
	}

	switch p.Category {
	case model.CategoryArray:
		if p.ArrayItems == nil {
			return "List<Any?>"
		}
		elem := kotlinType(p.ArrayItems, imports)
		if p.ArrayItems.Nullable {
			elem += "?"
		}
		return "List<" + elem + ">"
	case model.CategoryString:
		return "String"
	case model.CategoryBoolean:
		return "Boolean"
	case model.CategoryInt:
		return "Int"
	case model.CategoryLong:
		return "Long"
	case model.CategoryDecimal:
		imports.add("java.math.BigDecimal")
		return "BigDecimal"
	}
	return "Any"
}

func docComment(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "*/", "*&#47;")
}

// importSet collects the imports of one file.
type importSet struct {
	names []string
}

func (s *importSet) add(name string) {
	if !slices.Contains(s.names, name) {
		s.names = append(s.names, name)
	}
}

func (s *importSet) sorted() []string {
	out := slices.Clone(s.names)
	slices.Sort(out)
	return slices.Compact(out)
}
