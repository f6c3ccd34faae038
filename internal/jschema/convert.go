// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/schemagen/internal/errors"
)

// AddSchema registers an in-memory schema under filePath and binds its refs.
// Relative file refs resolve against filePath within the loader filesystem.
// Properties of in-memory schemas are ordered by name.
func (l *Loader) AddSchema(filePath string, s *jsonschema.Schema) (*Schema, error) {
	if s == nil {
		return nil, errors.New("nil schema")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize schema")
	}
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read serialized schema")
	}

	filePath = path.Clean(strings.TrimPrefix(filePath, "/"))
	if _, exists := l.docs[filePath]; exists {
		return nil, errors.Newf("schema %s is already loaded", filePath)
	}
	doc, err := l.add(filePath, raw)
	if err != nil {
		return nil, err
	}
	return doc.root, nil
}

// FromJSONSchema converts a schema built with github.com/google/jsonschema-go.
// Only refs into the schema itself ("#/$defs/...") can be resolved.
func FromJSONSchema(s *jsonschema.Schema, filePath string) (*Schema, error) {
	return NewLoader(emptyFS{}).AddSchema(filePath, s)
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
