// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/schemagen/internal/commands"
	"github.com/dacolabs/schemagen/internal/render"
	"github.com/dacolabs/schemagen/internal/render/kotlin"
	"github.com/dacolabs/schemagen/internal/render/modeljson"
)

// RegisterRenderers adds every output language to the render registry.
func RegisterRenderers() {
	render.Register(&kotlin.Renderer{})
	render.Register(&modeljson.Renderer{})
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	RegisterRenderers()
	rootCmd := commands.NewRootCmd()
	return rootCmd.ExecuteContext(ctx)
}
