// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"mailmask/internal/core"
	"mailmask/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result core.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	b.WriteString(f.colors["white"].Sprint("Masked text:"))
	b.WriteString("\n")
	b.WriteString(result.MaskedText)
	b.WriteString("\n\n")

	if len(result.Descriptors) == 0 {
		b.WriteString(f.colors["green"].Sprint("No PII detected."))
		b.WriteString("\n")
		return b.String(), nil
	}

	b.WriteString(f.colors["white"].Sprintf("Masked entities (%d):", len(result.Descriptors)))
	b.WriteString("\n")

	for _, d := range result.Descriptors {
		position := fmt.Sprintf("[%d:%d]", d.Position[0], d.Position[1])
		line := fmt.Sprintf("  %-12s %s", position, f.colors["cyan"].Sprint(d.Classification))
		if options.ShowValues {
			line += "  " + f.colors["yellow"].Sprint(d.Entity)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if options.Verbose {
			b.WriteString(fmt.Sprintf("      length: %d\n", d.Position[1]-d.Position[0]))
		}
	}

	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
