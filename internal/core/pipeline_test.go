// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mailmask/internal/ner"
)

func newPatternPipeline() *Pipeline {
	return NewPipeline(PipelineConfig{})
}

func classifications(r Result) []string {
	var types []string
	for _, d := range r.Descriptors {
		types = append(types, d.Classification)
	}
	return types
}

func TestProcess_Email(t *testing.T) {
	p := newPatternPipeline()

	result := p.Process(context.Background(), "Email me at john.doe@example.com")

	if result.MaskedText != "Email me at [EMAIL]" {
		t.Errorf("masked = %q", result.MaskedText)
	}
	if len(result.Descriptors) != 1 {
		t.Fatalf("descriptors = %v", result.Descriptors)
	}
	d := result.Descriptors[0]
	if d.Classification != "email" || d.Entity != "john.doe@example.com" {
		t.Errorf("descriptor = %+v", d)
	}
}

func TestProcess_PhoneFullSpan(t *testing.T) {
	p := newPatternPipeline()

	result := p.Process(context.Background(), "Call me at +1-415-555-0132 regarding the order")

	if result.MaskedText != "Call me at [PHONE_NUMBER] regarding the order" {
		t.Errorf("masked = %q", result.MaskedText)
	}
	if len(result.Descriptors) != 1 || result.Descriptors[0].Entity != "+1-415-555-0132" {
		t.Errorf("descriptors = %v", result.Descriptors)
	}
}

func TestProcess_CVVWithContext(t *testing.T) {
	p := newPatternPipeline()

	result := p.Process(context.Background(), "My CVV is 829 for the visa card")

	if len(result.Descriptors) != 1 {
		t.Fatalf("descriptors = %v", result.Descriptors)
	}
	d := result.Descriptors[0]
	if d.Classification != "cvv_no" || d.Entity != "829" {
		t.Errorf("descriptor = %+v", d)
	}
	if !strings.Contains(result.MaskedText, "[CVV_NO]") {
		t.Errorf("masked = %q", result.MaskedText)
	}
}

func TestProcess_NameAndDOB(t *testing.T) {
	text := "John Smith was born on 14/03/1990"
	p := NewPipeline(PipelineConfig{
		Recognizer: &ner.StubRecognizer{
			Spans: []ner.Span{
				{Start: 0, End: 10, Label: "PER", Text: "John Smith"},
			},
		},
	})

	result := p.Process(context.Background(), text)

	if result.MaskedText != "[FULL_NAME] was born on [DOB]" {
		t.Errorf("masked = %q", result.MaskedText)
	}
	if got := classifications(result); len(got) != 2 || got[0] != "full_name" || got[1] != "dob" {
		t.Errorf("classifications = %v", got)
	}
}

func TestProcess_CardAndExpiry(t *testing.T) {
	p := newPatternPipeline()

	result := p.Process(context.Background(), "Card 4111 1111 1111 1111, exp 05/26")

	got := classifications(result)
	if len(got) != 2 || got[0] != "credit_debit_no" || got[1] != "expiry_no" {
		t.Fatalf("classifications = %v (descriptors %v)", got, result.Descriptors)
	}
	if result.Descriptors[0].Entity != "4111 1111 1111 1111" {
		t.Errorf("card entity = %q", result.Descriptors[0].Entity)
	}
	if result.Descriptors[1].Entity != "05/26" {
		t.Errorf("expiry entity = %q", result.Descriptors[1].Entity)
	}
	if result.MaskedText != "Card [CREDIT_DEBIT_NO], exp [EXPIRY_NO]" {
		t.Errorf("masked = %q", result.MaskedText)
	}
}

func TestProcess_NoPII(t *testing.T) {
	p := newPatternPipeline()
	text := "The weather is nice today."

	result := p.Process(context.Background(), text)

	if result.MaskedText != text {
		t.Errorf("masked = %q, want input verbatim", result.MaskedText)
	}
	if result.Descriptors == nil || len(result.Descriptors) != 0 {
		t.Errorf("descriptors = %#v, want empty non-nil slice", result.Descriptors)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	p := newPatternPipeline()

	result := p.Process(context.Background(), "")

	if result.MaskedText != "" {
		t.Errorf("masked = %q", result.MaskedText)
	}
	if len(result.Descriptors) != 0 {
		t.Errorf("descriptors = %v", result.Descriptors)
	}
}

func TestProcess_RecognizerFailureDegrades(t *testing.T) {
	p := NewPipeline(PipelineConfig{
		Recognizer: &ner.StubRecognizer{Err: errors.New("connection refused")},
	})

	result := p.Process(context.Background(), "John Smith's email is john@example.com")

	// Pattern detection still runs; only name detection is lost.
	if len(result.Descriptors) != 1 || result.Descriptors[0].Classification != "email" {
		t.Errorf("descriptors = %v", result.Descriptors)
	}
}

func TestProcess_NameOverlapWinsAgainstPattern(t *testing.T) {
	// A recognizer span overlapping an accepted pattern match: the
	// full_name evicts it because the pattern span does not contain the
	// name span.
	text := "Call 555 0132 John Smithson"
	p := NewPipeline(PipelineConfig{
		Recognizer: &ner.StubRecognizer{
			Spans: []ner.Span{
				{Start: 9, End: 27, Label: "PER", Text: "0132 John Smithson"},
			},
		},
	})

	result := p.Process(context.Background(), text)

	if got := classifications(result); len(got) != 1 || got[0] != "full_name" {
		t.Fatalf("classifications = %v (descriptors %v)", got, result.Descriptors)
	}
	if result.MaskedText != "Call 555 [FULL_NAME]" {
		t.Errorf("masked = %q", result.MaskedText)
	}
}

func TestProcess_Deterministic(t *testing.T) {
	text := "Jane Doe, jane@corp.example, +44 20 7946 0958, card 4111 1111 1111 1111 cvv 321, born 14/03/1990"
	p := NewPipeline(PipelineConfig{
		Recognizer: ner.NewRuleBasedRecognizer(),
	})

	first := p.Process(context.Background(), text)
	for i := 0; i < 10; i++ {
		again := p.Process(context.Background(), text)
		if again.MaskedText != first.MaskedText {
			t.Fatalf("run %d masked = %q, first = %q", i, again.MaskedText, first.MaskedText)
		}
		if len(again.Descriptors) != len(first.Descriptors) {
			t.Fatalf("run %d descriptor count %d, first %d", i, len(again.Descriptors), len(first.Descriptors))
		}
		for j := range again.Descriptors {
			if again.Descriptors[j] != first.Descriptors[j] {
				t.Errorf("run %d descriptor %d = %+v, first %+v", i, j, again.Descriptors[j], first.Descriptors[j])
			}
		}
	}
}

func TestProcess_DescriptorsOrderedByStart(t *testing.T) {
	p := newPatternPipeline()
	text := "card 4111 1111 1111 1111 and email x@y.io and phone +1 415 555 0132"

	result := p.Process(context.Background(), text)

	for i := 1; i < len(result.Descriptors); i++ {
		if result.Descriptors[i].Position[0] < result.Descriptors[i-1].Position[0] {
			t.Errorf("descriptors out of order: %v", result.Descriptors)
		}
	}
	for _, d := range result.Descriptors {
		if text[d.Position[0]:d.Position[1]] != d.Entity {
			t.Errorf("descriptor %+v does not match its offsets", d)
		}
	}
}

func TestProcess_MaskedTextHasNoOriginalValues(t *testing.T) {
	p := NewPipeline(PipelineConfig{Recognizer: ner.NewRuleBasedRecognizer()})
	text := "John Smith, card 4111 1111 1111 1111, cvv 829, email j.smith@example.com, call +1-415-555-0132"

	result := p.Process(context.Background(), text)

	for _, d := range result.Descriptors {
		if strings.Contains(result.MaskedText, d.Entity) {
			t.Errorf("masked text still contains %q", d.Entity)
		}
	}
	if !strings.Contains(result.MaskedText, "[EMAIL]") {
		t.Errorf("masked = %q", result.MaskedText)
	}
}
