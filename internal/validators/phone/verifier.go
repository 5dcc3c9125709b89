// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"strings"

	"mailmask/internal/detector"
)

// Verifier decides whether a digit-sequence match is a phone number,
// using digit-count bounds, phone-style formatting, international
// prefixes, and context keywords.
type Verifier struct {
	// Keywords that suggest a phone context
	positiveKeywords []string
}

// Worldwide phone numbers carry between 7 and 15 digits (E.164 caps at
// 15 including the country code).
const (
	minDigits = 7
	maxDigits = 15
)

// NewVerifier creates a phone-number verifier with the predefined
// context keywords.
func NewVerifier() *Verifier {
	return &Verifier{
		positiveKeywords: []string{
			"phone", "call", "tel", "telephone", "contact", "dial",
			"mobile", "cell", "number", "direct", "office", "fax",
			"reach me at", "call me", "contact me", "line",
			"extension", "ext", "phone number",
		},
	}
}

// Verify implements detector.Verifier.
func (v *Verifier) Verify(value string, context detector.ContextInfo) bool {
	digitCount := countDigits(value)
	if digitCount < minDigits || digitCount > maxDigits {
		return false
	}

	before := strings.ToLower(context.BeforeText)
	after := strings.ToLower(context.AfterText)

	hasPhoneContext := false
	for _, keyword := range v.positiveKeywords {
		if strings.Contains(before, keyword) || strings.Contains(after, keyword) {
			hasPhoneContext = true
			break
		}
	}

	hasPhoneFormatting := strings.ContainsAny(value, "-. ()+")
	hasIntlPrefix := strings.HasPrefix(value, "+") || strings.HasPrefix(value, "00")

	// Accept when any of these hold:
	// 1. Explicit phone context nearby
	// 2. Phone-style formatting with a reasonable digit count
	// 3. International prefix
	// 4. Exactly 10 digits with formatting (common national format)
	return hasPhoneContext ||
		(hasPhoneFormatting && digitCount >= minDigits) ||
		hasIntlPrefix ||
		(digitCount == 10 && hasPhoneFormatting)
}

func countDigits(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			count++
		}
	}
	return count
}
