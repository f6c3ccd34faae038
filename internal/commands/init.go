// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/config"
	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/prompts"
	"github.com/dacolabs/schemagen/internal/render"
)

type initOptions struct {
	answers        prompts.InitAnswers
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a schemagen.yaml configuration file",
		Long: `Create a schemagen.yaml configuration file in the project directory.
Values from the file are used by generate when the matching flag is not set.`,
		Example: `  # Interactive mode
  schemagen init

  # Non-interactive
  schemagen init --input ./schemas --package com.example.model --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.answers.Language, "lang", "l", config.DefaultLanguage, "Output language")
	cmd.Flags().StringVarP(&opts.answers.Package, "package", "p", "", "Base package of generated classes")
	cmd.Flags().BoolVar(&opts.answers.DerivePackages, "derive-packages", false, "Append schema sub-directories to the base package")
	cmd.Flags().StringVarP(&opts.answers.Input, "input", "i", "./schemas", "Schema file or directory")
	cmd.Flags().StringVarP(&opts.answers.Output, "output", "o", "./"+defaultOutput, "Output directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	s, err := requireSession(cmd)
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(s.Dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.Newf("%s already exists; project already initialized", config.FileName)
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(render.Available(), &opts.answers); err != nil {
			return err
		}
	}
	if _, err := render.Get(opts.answers.Language); err != nil {
		return err
	}

	cfg := config.Config{
		Version:        config.CurrentConfigVersion,
		Language:       opts.answers.Language,
		Package:        opts.answers.Package,
		DerivePackages: opts.answers.DerivePackages,
		Input:          opts.answers.Input,
		Output:         opts.answers.Output,
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if err := cfg.Save(cfgPath); err != nil {
		return errors.Wrapf(err, "failed to write %s", config.FileName)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Language", Value: cfg.Language},
		{Label: "Input", Value: cfg.Input},
		{Label: "Output", Value: cfg.Output},
	}, "Initialization completed")
	return nil
}
