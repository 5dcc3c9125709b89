// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"mailmask/internal/core"
	"mailmask/internal/detector"
	"mailmask/internal/formatters"
)

func formatterOptionsNoColor() formatters.FormatterOptions {
	return formatters.FormatterOptions{NoColor: true}
}

func sampleResult() core.Result {
	return core.Result{
		MaskedText: "Email me at [EMAIL]",
		Descriptors: []detector.Descriptor{
			{Position: [2]int{12, 32}, Classification: "email", Entity: "john.doe@example.com"},
		},
	}
}

func TestFormat(t *testing.T) {
	f := NewFormatter()

	output, err := f.Format(sampleResult(), formatterOptionsNoColor())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(output, "Email me at [EMAIL]") {
		t.Errorf("output missing masked text: %s", output)
	}
	if !strings.Contains(output, "[12:32]") || !strings.Contains(output, "email") {
		t.Errorf("output missing entity line: %s", output)
	}
	// Values are withheld unless explicitly requested.
	if strings.Contains(output, "john.doe@example.com") {
		t.Errorf("output leaked PII without ShowValues: %s", output)
	}
}

func TestFormat_ShowValues(t *testing.T) {
	f := NewFormatter()
	opts := formatterOptionsNoColor()
	opts.ShowValues = true

	output, err := f.Format(sampleResult(), opts)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(output, "john.doe@example.com") {
		t.Errorf("ShowValues output missing value: %s", output)
	}
}

func TestFormat_NoPII(t *testing.T) {
	f := NewFormatter()

	output, err := f.Format(core.Result{MaskedText: "The weather is nice today."}, formatterOptionsNoColor())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(output, "No PII detected.") {
		t.Errorf("output = %s", output)
	}
}

func TestFormatterMetadata(t *testing.T) {
	f := NewFormatter()
	if f.Name() != "text" {
		t.Errorf("Name = %q", f.Name())
	}
	if f.FileExtension() != ".txt" {
		t.Errorf("FileExtension = %q", f.FileExtension())
	}
}
