// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ner

import (
	"context"
	"regexp"
	"strings"
)

// RuleBasedRecognizer finds person names with capitalization patterns
// and keyword filtering. It is the in-process baseline used when no
// external recognizer is configured, so the pipeline still detects
// names without a model server.
type RuleBasedRecognizer struct {
	namePattern      *regexp.Regexp
	honorificPattern *regexp.Regexp

	// Capitalized words that start sentences or name common concepts,
	// never people
	stopwords map[string]bool
}

// candidate name: two or three capitalized words, optionally preceded
// by an honorific.
const namePatternSrc = `(?:\b(Mr|Ms|Mrs|Dr|Prof|Sir)\.?\s+)?\b([A-ZÀ-ÿ][a-zà-ÿ']{1,29}(?:\s+[A-ZÀ-ÿ][a-zà-ÿ']{1,29}){1,2})\b`

// NewRuleBasedRecognizer creates the baseline recognizer.
func NewRuleBasedRecognizer() *RuleBasedRecognizer {
	return &RuleBasedRecognizer{
		namePattern:      regexp.MustCompile(namePatternSrc),
		honorificPattern: regexp.MustCompile(`^(Mr|Ms|Mrs|Dr|Prof|Sir)\.?$`),
		stopwords: map[string]bool{
			"the": true, "this": true, "that": true, "these": true,
			"my": true, "our": true, "your": true, "his": true, "her": true,
			"dear": true, "hello": true, "hi": true, "hey": true,
			"thanks": true, "thank": true, "regards": true, "best": true,
			"kind": true, "sincerely": true, "yours": true,
			"subject": true, "email": true, "card": true, "credit": true,
			"debit": true, "visa": true, "mastercard": true,
			"please": true, "call": true, "contact": true, "phone": true,
			"number": true, "date": true, "birth": true, "account": true,
			"order": true, "invoice": true, "payment": true, "team": true,
			"support": true, "service": true, "customer": true,
			"monday": true, "tuesday": true, "wednesday": true,
			"thursday": true, "friday": true, "saturday": true, "sunday": true,
			"january": true, "february": true, "march": true, "april": true,
			"may": true, "june": true, "july": true, "august": true,
			"september": true, "october": true, "november": true, "december": true,
			"new": true, "from": true, "sent": true, "with": true,
		},
	}
}

// Recognize implements the Recognizer interface. It never fails; the
// error return exists only to satisfy the capability contract.
func (r *RuleBasedRecognizer) Recognize(_ context.Context, text string) ([]Span, error) {
	var spans []Span

	for _, loc := range r.namePattern.FindAllStringSubmatchIndex(text, -1) {
		// Submatch 2 is the name without any honorific prefix.
		start, end := loc[4], loc[5]
		if start < 0 {
			continue
		}
		hasHonorific := loc[2] >= 0

		start, end, ok := r.trimStopwords(text, start, end, hasHonorific)
		if !ok {
			continue
		}

		spans = append(spans, Span{
			Start: start,
			End:   end,
			Label: "PER",
			Text:  text[start:end],
		})
	}

	return spans, nil
}

// trimStopwords drops leading stopword tokens (sentence starters
// captured by the capitalization pattern) and rejects candidates that
// no longer look like a person name. An honorific vouches for whatever
// follows it, including a single remaining token.
func (r *RuleBasedRecognizer) trimStopwords(text string, start, end int, hasHonorific bool) (int, int, bool) {
	value := text[start:end]
	tokens := strings.Fields(value)

	for len(tokens) > 0 && r.stopwords[strings.ToLower(tokens[0])] {
		start += len(tokens[0])
		for start < end && (text[start] == ' ' || text[start] == '\t' || text[start] == '\n' || text[start] == '\r') {
			start++
		}
		tokens = tokens[1:]
	}

	minTokens := 2
	if hasHonorific {
		minTokens = 1
	}
	if len(tokens) < minTokens {
		return 0, 0, false
	}

	for _, token := range tokens {
		if r.stopwords[strings.ToLower(token)] {
			return 0, 0, false
		}
	}

	return start, end, true
}
