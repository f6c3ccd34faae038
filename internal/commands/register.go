// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/errors"
	"github.com/dacolabs/schemagen/internal/logger"
	"github.com/dacolabs/schemagen/internal/session"
	"github.com/dacolabs/schemagen/internal/version"
)

type rootOptions struct {
	dir string
	log logger.Options
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "schemagen",
		Short: "Generate typed classes from JSON Schema",
		Long: `Generate typed classes from JSON Schema documents.

Every top-level schema becomes one class or enumeration. Constraints merged
through allOf and $ref are checked at construction time by the generated code.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: opts.load,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if s := session.From(cmd.Context()); s != nil {
				_ = s.Logger.Sync()
			}
		},
	}
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", "Project directory containing schemagen.yaml (default: current directory)")
	rootCmd.PersistentFlags().CountVarP(&opts.log.Verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&opts.log.JSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load builds the logger and stores the project session in the command context.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(o.log)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	dir := o.dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return errors.Wrap(err, "failed to get current directory")
		}
	}

	ctx, err := session.Load(cmd.Context(), dir, log)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

func requireSession(cmd *cobra.Command) (*session.Context, error) {
	s := session.From(cmd.Context())
	if s == nil {
		return nil, errors.New("project context not loaded")
	}
	return s, nil
}
