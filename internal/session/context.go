// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dacolabs/schemagen/internal/config"
	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/logger"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the logger of one invocation.
type Context struct {
	// Config is the loaded schemagen.yaml, or defaults when Path is empty.
	Config *config.Config
	// Path is the configuration file that was loaded.
	Path string
	// Dir is the directory relative paths of the configuration resolve against.
	Dir    string
	Logger *zap.SugaredLogger
}

// Load reads schemagen.yaml from dir when present and returns a new
// context.Context with the session stored in it. A missing file is not an
// error: the session then carries the default configuration.
func Load(ctx context.Context, dir string, log *zap.SugaredLogger) (context.Context, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Context{
		Config: &config.Config{Version: config.CurrentConfigVersion},
		Dir:    dir,
		Logger: log,
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid configuration"), ErrInvalidConfig)
		}
		if err := cfg.Validate(); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "invalid configuration %s", configPath), ErrInvalidConfig)
		}
		s.Config = cfg
		s.Path = configPath
		log.Debugw("loaded configuration", "path", configPath)
	}

	return context.WithValue(ctx, contextKey{}, s), nil
}

// Resolve returns p relative to the session directory unless it is absolute.
func (s *Context) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Dir, p)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}
