// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/model"
)

// Output resolves where rendered targets are written.
type Output struct {
	// Dir is the output root directory.
	Dir string
	// Packages places files in sub-directories following the package path.
	Packages bool
}

// Path returns the file path of a top-level target.
func (o Output) Path(t *model.Target, ext string) string {
	dir := o.Dir
	if o.Packages && t.Package != "" {
		dir = filepath.Join(dir, filepath.FromSlash(strings.ReplaceAll(t.Package, ".", "/")))
	}
	return filepath.Join(dir, t.Name+ext)
}

// Write renders t and writes it below Dir, creating directories as needed.
// It returns the written path.
func (o Output) Write(t *model.Target, r Renderer) (string, error) {
	if t.Parent != nil {
		return "", errors.Newf("nested target %s is rendered with its parent", t.Name)
	}
	if o.Dir == "" {
		return "", errors.At(errors.ErrInvalidOutputLocation, "", "no output directory")
	}
	if info, err := os.Stat(o.Dir); err == nil && !info.IsDir() {
		return "", errors.At(errors.ErrInvalidOutputLocation, o.Dir, "not a directory")
	}

	content, err := r.Render(t)
	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s", t.QualifiedName())
	}

	path := o.Path(t, r.FileExtension())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.At(errors.ErrInvalidOutputLocation, filepath.Dir(path), "%v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.At(errors.ErrInvalidOutputLocation, path, "%v", err)
	}
	return path, nil
}
