// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cvv

import (
	"regexp"
	"strconv"
	"strings"

	"mailmask/internal/detector"
)

// expiryFragment matches an expiry-month fragment ending the preceding
// context (e.g. "exp 05/"), which marks the digits as part of an expiry
// date rather than a CVV.
var expiryFragment = regexp.MustCompile(`\b(0[1-9]|1[0-2])[/\s-]$`)

// Verifier decides whether a standalone 3-4 digit number is a card
// verification value. This is the most ambiguous entity type in the
// library: any short digit run matches, so acceptance leans almost
// entirely on context.
type Verifier struct {
	// Keywords that explicitly name a CVV
	cvvKeywords []string

	// Keywords that suggest a year rather than a CVV
	yearKeywords []string

	// Keywords that suggest a payment-card context
	cardKeywords []string
}

// NewVerifier creates a CVV verifier with the predefined keyword sets.
func NewVerifier() *Verifier {
	return &Verifier{
		cvvKeywords: []string{
			"cvv", "cvc", "csc", "security code", "card verification",
			"verification no", "security", "security number", "cv2",
			"card code", "security value",
		},
		yearKeywords: []string{
			"year", "born", "established", "since",
		},
		cardKeywords: []string{
			"card", "credit", "visa", "mastercard", "amex", "discover",
		},
	}
}

// Verify implements detector.Verifier.
func (v *Verifier) Verify(value string, context detector.ContextInfo) bool {
	// Part of a longer digit run (phone number, id) is never a CVV.
	if isDigit(context.CharBefore) || isDigit(context.CharAfter) {
		return false
	}

	if !allDigits(value) || len(value) < 3 || len(value) > 4 {
		return false
	}

	before := strings.ToLower(context.BeforeText)
	after := strings.ToLower(context.AfterText)

	// Explicitly named as a CVV: accept immediately.
	if anyKeyword(before, after, v.cvvKeywords) {
		return true
	}

	// A plausible 4-digit year next to year wording is not a CVV.
	if len(value) == 4 {
		if n, err := strconv.Atoi(value); err == nil && n >= 1900 && n <= 2100 {
			if anyKeyword(before, after, v.yearKeywords) {
				return false
			}
		}
	}

	// Preceded by "MM/" the digits belong to an expiry date.
	if expiryFragment.MatchString(strings.TrimSpace(before)) {
		return false
	}

	// No explicit CVV wording: accept only with a card mention nearby.
	return anyKeyword(before, after, v.cardKeywords)
}

func anyKeyword(before, after string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(before, keyword) || strings.Contains(after, keyword) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
