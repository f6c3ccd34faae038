// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/render"
)

func TestRegisterRenderers(t *testing.T) {
	RegisterRenderers()
	assert.Subset(t, render.Available(), []string{"kotlin", "model-json"})
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "color.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"type": "string", "enum": ["RED", "GREEN"]}`), 0o600))

	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"schemagen", "generate", schema, "--lang", "kotlin", "--output", filepath.Join(dir, "out"), "--flat"}

	require.NoError(t, Run(context.Background(), func(string) string { return "" }))

	data, err := os.ReadFile(filepath.Join(dir, "out", "Color.kt")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "enum class Color {\n    RED, GREEN\n}")
}
