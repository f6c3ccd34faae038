// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm asks for the output language and the base package when
// neither a flag nor the configuration provided them.
func RunGenerateForm(languages []string, language, pkg *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output language").
				Options(languageOptions(languages)...).
				Value(language),
			huh.NewInput().
				Title("Base package").
				Placeholder("com.example.model").
				Validate(packageValidator).
				Value(pkg),
		),
	).WithTheme(Theme()).Run()
}
