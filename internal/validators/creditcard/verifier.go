// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import (
	"strings"

	"mailmask/internal/detector"
)

// Verifier accepts a card-number pattern match only when a card-related
// keyword appears in the surrounding context. Digit patterns alone are
// too ambiguous: a 13-19 digit run can be an order id, tracking number,
// or timestamp.
type Verifier struct {
	// Keywords that suggest a payment-card context
	positiveKeywords []string

	// Optional checksum validation of the digits themselves
	luhnCheck bool
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLuhnCheck additionally requires the digits to pass the Luhn
// checksum. Off by default: context keywords are the contract, the
// checksum only tightens acceptance.
func WithLuhnCheck(enabled bool) Option {
	return func(v *Verifier) {
		v.luhnCheck = enabled
	}
}

// NewVerifier creates a card-number verifier with the predefined
// context keywords.
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		positiveKeywords: []string{
			"card", "credit", "debit", "visa", "mastercard",
			"payment", "amex", "account no", "card no",
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify implements detector.Verifier.
func (v *Verifier) Verify(value string, context detector.ContextInfo) bool {
	if v.luhnCheck && !luhnValid(cleanNumber(value)) {
		return false
	}

	before := strings.ToLower(context.BeforeText)
	after := strings.ToLower(context.AfterText)
	for _, keyword := range v.positiveKeywords {
		if strings.Contains(before, keyword) || strings.Contains(after, keyword) {
			return true
		}
	}
	return false
}

// cleanNumber strips separators so only the digits remain.
func cleanNumber(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// luhnValid runs the Luhn checksum over a digit string.
func luhnValid(digits string) bool {
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
