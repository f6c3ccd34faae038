// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles schemagen project configuration.
package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/schemagen/internal/codegen"
	"github.com/dacolabs/schemagen/internal/errors"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "schemagen.yaml"

// DefaultLanguage is the renderer used when none is configured.
const DefaultLanguage = "kotlin"

// Config represents the schemagen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Language selects the renderer.
	Language string `yaml:"language,omitempty"`
	// Profile selects identifier and integer rules. Defaults to the profile
	// named like Language, or kotlin.
	Profile        string `yaml:"profile,omitempty"`
	Package        string `yaml:"package,omitempty"`
	DerivePackages bool   `yaml:"derivePackages,omitempty"`
	// Input is a schema file or a directory of schema files.
	Input       string        `yaml:"input,omitempty"`
	Output      string        `yaml:"output,omitempty"`
	BaseURI     string        `yaml:"baseURI,omitempty"`
	Definitions bool          `yaml:"definitions,omitempty"`
	KeepGoing   bool          `yaml:"keepGoing,omitempty"`
	Custom      []CustomClass `yaml:"customClasses,omitempty"`
}

// CustomClass maps schemas to an existing class. Exactly one of URI,
// Extension or Format must be set.
type CustomClass struct {
	Class     string `yaml:"class"`
	URI       string `yaml:"uri,omitempty"`
	Extension string `yaml:"extension,omitempty"`
	Value     any    `yaml:"value,omitempty"`
	Format    string `yaml:"format,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Profile != "" {
		if _, err := codegen.ProfileByName(c.Profile); err != nil {
			return err
		}
	}
	for i, cc := range c.Custom {
		if cc.Class == "" {
			return errors.Newf("customClasses[%d]: class is required", i)
		}
		matchers := 0
		for _, set := range []bool{cc.URI != "", cc.Extension != "", cc.Format != ""} {
			if set {
				matchers++
			}
		}
		if matchers != 1 {
			return errors.Newf("customClasses[%d]: exactly one of uri, extension or format is required", i)
		}
	}
	return nil
}

// LanguageOrDefault returns the configured renderer name.
func (c *Config) LanguageOrDefault() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}

// ProfileOrDefault resolves the language profile.
func (c *Config) ProfileOrDefault() (codegen.Profile, error) {
	if c.Profile != "" {
		return codegen.ProfileByName(c.Profile)
	}
	if p, err := codegen.ProfileByName(c.LanguageOrDefault()); err == nil {
		return p, nil
	}
	return codegen.Kotlin, nil
}

// Options converts the configuration into generator options.
func (c *Config) Options(log *zap.SugaredLogger) (codegen.Options, error) {
	profile, err := c.ProfileOrDefault()
	if err != nil {
		return codegen.Options{}, err
	}

	opts := codegen.Options{
		BasePackage:    c.Package,
		DerivePackages: c.DerivePackages,
		Profile:        profile,
		BaseURI:        c.BaseURI,
		KeepGoing:      c.KeepGoing,
		Logger:         log,
	}
	for _, cc := range c.Custom {
		switch {
		case cc.URI != "":
			opts.CustomClasses = append(opts.CustomClasses, codegen.ByURI(cc.Class, cc.URI))
		case cc.Extension != "":
			opts.CustomClasses = append(opts.CustomClasses, codegen.ByExtension(cc.Class, cc.Extension, cc.Value))
		case cc.Format != "":
			opts.CustomClasses = append(opts.CustomClasses, codegen.ByFormat(cc.Class, cc.Format))
		}
	}
	return opts, nil
}
