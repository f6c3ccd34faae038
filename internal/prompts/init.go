// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// InitAnswers holds the values collected by RunInitForm.
type InitAnswers struct {
	Language       string
	Package        string
	DerivePackages bool
	Input          string
	Output         string
}

// RunInitForm runs the interactive form for the init command.
// It fills answers with user input, keeping the values already set as defaults.
func RunInitForm(languages []string, answers *InitAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file or directory").
				Placeholder("./schemas").
				Validate(requiredValidator("schema path")).
				Value(&answers.Input),
			huh.NewInput().
				Title("Output directory").
				Placeholder("./generated").
				Validate(requiredValidator("output directory")).
				Value(&answers.Output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output language").
				Options(languageOptions(languages)...).
				Value(&answers.Language),
			huh.NewInput().
				Title("Base package").
				Placeholder("com.example.model").
				Validate(packageValidator).
				Value(&answers.Package),
			huh.NewConfirm().
				Title("Derive packages from sub-directories?").
				Affirmative("Yes").
				Negative("No").
				Value(&answers.DerivePackages),
		),
	).WithTheme(Theme()).Run()
}
