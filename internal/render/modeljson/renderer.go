// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package modeljson renders the analyzed target model as JSON, for tooling
// and for inspecting what a schema resolves to.
package modeljson

import (
	"github.com/goccy/go-json"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
	"github.com/dacolabs/schemagen/internal/version"
)

// Renderer renders targets as JSON documents.
type Renderer struct{}

// Name returns the renderer identifier.
func (r *Renderer) Name() string {
	return "model-json"
}

// FileExtension returns the file extension for JSON files.
func (r *Renderer) FileExtension() string {
	return ".json"
}

type targetDoc struct {
	// Generator is set on the top-level document only.
	Generator   string              `json:"generator,omitempty"`
	Name        string              `json:"name"`
	Package     string              `json:"package,omitempty"`
	Kind        model.Kind          `json:"kind"`
	Source      string              `json:"source,omitempty"`
	URI         string              `json:"uri,omitempty"`
	Description string              `json:"description,omitempty"`
	Base        string              `json:"base,omitempty"`
	Imports     []string            `json:"imports,omitempty"`
	EnumValues  []string            `json:"enumValues,omitempty"`
	Properties  []*propertyDoc      `json:"properties,omitempty"`
	Statics     []model.StaticField `json:"statics,omitempty"`
	Nested      []*targetDoc        `json:"nested,omitempty"`
}

type propertyDoc struct {
	Name        string             `json:"name"`
	Category    model.Category     `json:"category"`
	SystemClass model.SystemClass  `json:"systemClass,omitempty"`
	Type        string             `json:"type,omitempty"`
	Required    bool               `json:"required"`
	Nullable    bool               `json:"nullable,omitempty"`
	Inherited   bool               `json:"inherited,omitempty"`
	Default     json.RawMessage    `json:"default,omitempty"`
	Items       *propertyDoc       `json:"items,omitempty"`
	Validations []model.Validation `json:"validations,omitempty"`
}

// Render converts a top-level target into an indented JSON document.
func (r *Renderer) Render(t *model.Target) ([]byte, error) {
	if t.Parent != nil {
		return nil, errors.Newf("nested target %s is rendered with its parent", t.Name)
	}
	doc := document(t)
	doc.Generator = version.Generator()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", t.Name)
	}
	return append(data, '\n'), nil
}

func document(t *model.Target) *targetDoc {
	doc := &targetDoc{
		Name:        t.Name,
		Package:     t.Package,
		Kind:        t.Kind,
		URI:         t.URI,
		Description: t.Description,
		Imports:     t.Imports,
		EnumValues:  t.EnumValues,
		Statics:     t.Statics,
	}
	if t.Parent == nil {
		doc.Source = t.Source
	}
	if t.Base != nil {
		doc.Base = t.Base.QualifiedName()
	}
	for _, p := range t.Properties() {
		doc.Properties = append(doc.Properties, property(p, t.Constraints.Requires(p.Name)))
	}
	for _, n := range t.Nested {
		doc.Nested = append(doc.Nested, document(n))
	}
	return doc
}

func property(p *model.Constraints, required bool) *propertyDoc {
	doc := &propertyDoc{
		Name:        p.Name,
		Category:    p.Category,
		SystemClass: p.SystemClass,
		Required:    required,
		Nullable:    p.Nullable,
		Inherited:   p.Inherited,
		Validations: p.Validations,
	}
	switch {
	case p.CustomClass != nil:
		doc.Type = p.CustomClass.String()
	case p.LocalType != nil:
		doc.Type = p.LocalType.LocalPath()
		if p.LocalType.Parent == nil {
			doc.Type = p.LocalType.QualifiedName()
		}
	}
	if p.HasDefault {
		doc.Default = json.RawMessage(jschema.Canonical(p.Default))
	}
	if p.ArrayItems != nil {
		doc.Items = property(p.ArrayItems, false)
	}
	return doc
}
