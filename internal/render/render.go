// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package render is the boundary between the target model and source text.
// Renderers turn one top-level target, together with its nested targets, into
// the content of one file.
package render

import (
	"sort"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/model"
)

// Renderer defines the interface all output languages must implement.
type Renderer interface {
	// Name returns the renderer's identifier (e.g., "kotlin", "model-json")
	Name() string

	// FileExtension returns the appropriate file extension (e.g., ".kt")
	FileExtension() string

	// Render produces the file content for a top-level target.
	Render(t *model.Target) ([]byte, error)
}

var renderers = make(map[string]Renderer)

// Register adds a renderer to the registry.
func Register(r Renderer) {
	renderers[r.Name()] = r
}

// Get retrieves a renderer by name.
func Get(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, errors.WithHintf(errors.Newf("unknown renderer: %s", name),
			"available renderers: %v", Available())
	}
	return r, nil
}

// Available returns all registered renderer names, sorted.
func Available() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
