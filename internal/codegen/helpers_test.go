// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/model"
)

func loadSchema(t *testing.T, data string) *jschema.Schema {
	t.Helper()
	fsys := fstest.MapFS{"test.json": &fstest.MapFile{Data: []byte(data)}}
	s, err := jschema.NewLoader(fsys).LoadFile("test.json")
	require.NoError(t, err)
	return s
}

func accumulateSchema(t *testing.T, data string) (*model.Constraints, error) {
	t.Helper()
	c := model.NewConstraints("Test", model.Int32Range)
	err := newAccumulator(zap.NewNop().Sugar()).accumulate(loadSchema(t, data), c)
	return c, err
}

// buildFiles loads every file of files and generates targets for the named
// paths, using each path's directory as sub-directory.
func buildFiles(t *testing.T, opts Options, files map[string]string, paths ...string) (*Result, error) {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	loader := jschema.NewLoader(fsys)

	var inputs []Input
	for _, p := range paths {
		s, err := loader.LoadFile(p)
		require.NoError(t, err)
		dir := ""
		if i := lastSlash(p); i >= 0 {
			dir = p[:i]
		}
		inputs = append(inputs, Input{Schema: s, SubDir: dir, Source: p})
	}

	g, err := NewGenerator(opts)
	require.NoError(t, err)
	return g.Build(inputs)
}

func lastSlash(p string) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return i
		}
	}
	return -1
}

func property(t *testing.T, target *model.Target, name string) *model.Constraints {
	t.Helper()
	p, ok := target.Constraints.Lookup(name)
	require.True(t, ok, "property %s", name)
	return p
}

func kinds(p *model.Constraints) []model.ValidationKind {
	var out []model.ValidationKind
	for _, v := range p.Validations {
		out = append(out, v.Kind)
	}
	return out
}
