// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/dacolabs/schemagen/internal/errors"
)

// File is a schema file found by LoadDir.
type File struct {
	// Path is the file path within the loader filesystem.
	Path string
	// Dir is the directory of the file relative to the directory that was loaded.
	Dir    string
	Schema *Schema
}

// Loader loads schemas from a filesystem. Each file is parsed once; nodes of
// a file are shared by every schema that references it.
type Loader struct {
	fsys fs.FS
	docs map[string]*document
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys: fsys,
		docs: make(map[string]*document),
	}
}

// LoadFile loads and parses a schema file and binds every $ref reachable from it.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Schema, error) {
	doc, err := l.load(filePath)
	if err != nil {
		return nil, err
	}
	return doc.root, nil
}

// LoadDir loads every .json, .yaml and .yml file below dir, in lexical order.
func (l *Loader) LoadDir(dir string) ([]File, error) {
	dir = path.Clean(dir)
	var files []File
	err := fs.WalkDir(l.fsys, dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isSchemaFile(p) {
			return nil
		}
		s, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		rel := path.Dir(p)
		switch {
		case rel == ".":
			rel = ""
		case dir != ".":
			rel = strings.TrimPrefix(rel, dir)
		}
		files = append(files, File{
			Path:   p,
			Dir:    strings.Trim(rel, "/"),
			Schema: s,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isSchemaFile(p string) bool {
	switch path.Ext(p) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func (l *Loader) load(filePath string) (*document, error) {
	filePath = path.Clean(strings.TrimPrefix(filePath, "/"))
	if doc, ok := l.docs[filePath]; ok {
		return doc, nil
	}

	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}
	raw, err := decode(data, EncodingFromPath(filePath))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filePath)
	}
	return l.add(filePath, raw)
}

// add registers already decoded document content under filePath.
func (l *Loader) add(filePath string, raw any) (*document, error) {
	doc := newDocument(filePath, raw)
	l.docs[filePath] = doc
	root, err := doc.node(raw, "")
	if err != nil {
		return nil, err
	}
	doc.root = root

	if err := l.ResolveRefs(root); err != nil {
		return nil, err
	}
	return doc, nil
}

// ResolveRefs binds the Target of every $ref in the schema tree. Refs may point
// into the same document or into other files relative to the referencing one.
func (l *Loader) ResolveRefs(schema *Schema) error {
	for s := range Traverse(schema, false) {
		for _, e := range s.Elements {
			ref, ok := e.(*Ref)
			if !ok || ref.Target != nil {
				continue
			}
			target, err := l.resolve(ref.URI, s.URI)
			if err != nil {
				return err
			}
			ref.Target = target
		}
	}
	return nil
}

func (l *Loader) resolve(ref, from string) (*Schema, error) {
	base, err := url.Parse(from)
	if err != nil {
		return nil, errors.At(errors.ErrUnresolvedReference, from, "invalid origin URI")
	}
	// "#" names the document root, not the referencing node
	base.Fragment, base.RawFragment = "", ""
	r, err := url.Parse(ref)
	if err != nil {
		return nil, errors.At(errors.ErrUnresolvedReference, from, "invalid $ref %q", ref)
	}
	abs := base.ResolveReference(r)
	if abs.Scheme != "file" {
		return nil, errors.At(errors.ErrUnresolvedReference, from, "$ref %q is not a local file", ref)
	}

	doc, err := l.load(abs.Path)
	if err != nil {
		return nil, errors.Wrap(errors.At(errors.ErrUnresolvedReference, from, "$ref %q", ref), err.Error())
	}
	target, built, err := doc.lookup(abs.Fragment)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.At(errors.ErrUnresolvedReference, from, "$ref %q matches no schema", ref)
	}
	if built {
		if err := l.ResolveRefs(target); err != nil {
			return nil, err
		}
	}
	return target, nil
}
