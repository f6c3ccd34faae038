// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	fmt.Print(FormatResult(fields, successMsg))
}

// FormatResult renders the summary printed by PrintResult.
func FormatResult(fields []ResultField, successMsg string) string {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	var b strings.Builder
	b.WriteString("\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}
	if successMsg != "" {
		b.WriteString(success.Render("\n"+successMsg) + "\n")
	}
	return b.String()
}

// PrintFailures prints failed targets in red below a result summary.
func PrintFailures(fields []ResultField) {
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f56"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	cross := failure.Render("✗")
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", cross, label.Render(f.Label+":"), f.Value)
	}
}

// packageValidator accepts dotted package names made of identifiers. The
// empty package is allowed.
func packageValidator(s string) error {
	if s == "" {
		return nil
	}
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return errors.New("package segments must not be empty")
		}
		for i, r := range seg {
			if i == 0 && !unicode.IsLetter(r) && r != '_' {
				return errors.New("segments must start with letter or underscore")
			}
			if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return errors.New("segments must contain only letters, numbers, underscores")
			}
		}
	}
	return nil
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func languageOptions(languages []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(languages))
	for _, l := range languages {
		options = append(options, huh.NewOption(l, l))
	}
	return options
}
