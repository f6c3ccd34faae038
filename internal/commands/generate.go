// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/codegen"
	"github.com/dacolabs/schemagen/internal/config"
	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/prompts"
	"github.com/dacolabs/schemagen/internal/render"
)

const defaultOutput = "generated"

type generateOptions struct {
	language       string
	profile        string
	pkg            string
	derivePackages bool
	output         string
	baseURI        string
	className      string
	definitions    bool
	keepGoing      bool
	flat           bool
	nonInteractive bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [schema-file-or-dir]",
		Short: "Generate classes from JSON Schema files",
		Long: fmt.Sprintf(`Generate one class or enumeration per top-level schema.

The schema path defaults to "input" from schemagen.yaml. Flags override the
configuration file.

Available languages: %s`, strings.Join(render.Available(), ", ")),
		Example: `  # Generate Kotlin classes for every schema in a directory
  schemagen generate ./schemas --lang kotlin --package com.example.model

  # Derive sub-packages from sub-directories
  schemagen generate ./schemas --package com.example --derive-packages

  # Also generate every $defs entry and keep going past failing schemas
  schemagen generate ./schemas/api.json --definitions --keep-going

  # Inspect the analyzed model
  schemagen generate ./schemas --lang model-json --output model`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", fmt.Sprintf("Output language (%s)", strings.Join(render.Available(), ", ")))
	cmd.Flags().StringVar(&opts.profile, "profile", "", fmt.Sprintf("Naming and integer profile (%s)", strings.Join(codegen.ProfileNames(), ", ")))
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Base package of generated classes")
	cmd.Flags().BoolVar(&opts.derivePackages, "derive-packages", false, "Append schema sub-directories to the base package")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default \""+defaultOutput+"\")")
	cmd.Flags().StringVar(&opts.baseURI, "base-uri", "", "Base URI for custom class URIs")
	cmd.Flags().StringVar(&opts.className, "class", "", "Class name for a single schema file")
	cmd.Flags().BoolVar(&opts.definitions, "definitions", false, "Also generate a class for every $defs entry")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "Continue past schemas that fail to generate")
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "Write all files into the output directory without package directories")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

// apply overlays the flags the user set onto the configuration.
func (o *generateOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = o.language
	}
	if flags.Changed("profile") {
		cfg.Profile = o.profile
	}
	if flags.Changed("package") {
		cfg.Package = o.pkg
	}
	if flags.Changed("derive-packages") {
		cfg.DerivePackages = o.derivePackages
	}
	if flags.Changed("base-uri") {
		cfg.BaseURI = o.baseURI
	}
	if flags.Changed("definitions") {
		cfg.Definitions = o.definitions
	}
	if flags.Changed("keep-going") {
		cfg.KeepGoing = o.keepGoing
	}
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	s, err := requireSession(cmd)
	if err != nil {
		return err
	}
	cfg := *s.Config
	opts.apply(cmd, &cfg)

	input := s.Resolve(cfg.Input)
	if len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return errors.WithHint(errors.New("no schema path given"),
			"pass a schema file or directory, or set input in "+config.FileName)
	}

	if cfg.Language == "" && !opts.nonInteractive {
		cfg.Language = config.DefaultLanguage
		if err := prompts.RunGenerateForm(render.Available(), &cfg.Language, &cfg.Package); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r, err := render.Get(cfg.LanguageOrDefault())
	if err != nil {
		return err
	}
	genOpts, err := cfg.Options(s.Logger)
	if err != nil {
		return err
	}

	inputs, err := loadInputs(input, opts.className, cfg.Definitions)
	if err != nil {
		return err
	}
	s.Logger.Infow("loaded schemas", "path", input, "count", len(inputs))

	g, err := codegen.NewGenerator(genOpts)
	if err != nil {
		return err
	}
	res, err := g.Build(inputs)
	if err != nil {
		return err
	}

	// flag paths are relative to the working directory, config paths to the project
	outputDir := opts.output
	if !cmd.Flags().Changed("output") {
		outputDir = cfg.Output
		if outputDir == "" {
			outputDir = defaultOutput
		}
		outputDir = s.Resolve(outputDir)
	}
	out := render.Output{Dir: outputDir, Packages: !opts.flat}

	var written, failed []prompts.ResultField
	for _, t := range res.Targets {
		path, err := out.Write(t, r)
		if err != nil {
			if !cfg.KeepGoing {
				return err
			}
			failed = append(failed, prompts.ResultField{Label: t.QualifiedName(), Value: err.Error()})
			continue
		}
		written = append(written, prompts.ResultField{Label: t.QualifiedName(), Value: path})
	}
	for _, f := range res.Failures {
		label := f.Input.Source
		if f.Input.ClassName != "" {
			label += "#" + f.Input.ClassName
		}
		failed = append(failed, prompts.ResultField{Label: label, Value: f.Err.Error()})
	}

	prompts.PrintResult(written, fmt.Sprintf("Generated %d file(s) in %s", len(written), outputDir))
	if len(failed) > 0 {
		prompts.PrintFailures(failed)
		return errors.Newf("failed to generate %d target(s)", len(failed))
	}
	return nil
}

// loadInputs reads a schema file or every schema file below a directory.
// Refs resolve within the directory loaded, or the directory of the file.
func loadInputs(input, className string, definitions bool) ([]codegen.Input, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, errors.Wrap(err, "schema path")
	}

	var files []jschema.File
	if info.IsDir() {
		if className != "" {
			return nil, errors.New("--class requires a single schema file")
		}
		files, err = jschema.NewLoader(os.DirFS(input)).LoadDir(".")
		if err != nil {
			return nil, err
		}
	} else {
		name := filepath.Base(input)
		schema, err := jschema.NewLoader(os.DirFS(filepath.Dir(input))).LoadFile(name)
		if err != nil {
			return nil, err
		}
		files = []jschema.File{{Path: name, Schema: schema}}
	}

	var inputs []codegen.Input
	for _, f := range files {
		in := codegen.Input{
			Schema:    f.Schema,
			ClassName: className,
			SubDir:    f.Dir,
			Source:    f.Path,
		}
		inputs = append(inputs, in)
		if definitions {
			inputs = append(inputs, codegen.ExpandDefinitions(in)...)
		}
	}
	return inputs, nil
}
