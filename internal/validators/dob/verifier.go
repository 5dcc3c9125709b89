// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dob

import (
	"strings"

	"mailmask/internal/detector"
)

// Verifier accepts a date match as a date of birth only when birth
// wording appears nearby. Any date pattern can be a due date, invoice
// date, or appointment; the keyword is what makes it PII.
type Verifier struct {
	positiveKeywords []string
}

// NewVerifier creates a date-of-birth verifier.
func NewVerifier() *Verifier {
	return &Verifier{
		positiveKeywords: []string{"birth", "dob", "born"},
	}
}

// Verify implements detector.Verifier.
func (v *Verifier) Verify(value string, context detector.ContextInfo) bool {
	before := strings.ToLower(context.BeforeText)
	after := strings.ToLower(context.AfterText)

	for _, keyword := range v.positiveKeywords {
		if strings.Contains(before, keyword) || strings.Contains(after, keyword) {
			return true
		}
	}
	return false
}
