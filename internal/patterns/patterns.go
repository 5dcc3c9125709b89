// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the shared pattern library: one compiled regex
// per pattern-detectable entity type. The library is built once at
// process start and never mutated, so it is safe to share across
// concurrent detection calls without locking. A malformed pattern is a
// programming error and fails at init.
package patterns

import (
	"regexp"

	"mailmask/internal/detector"
)

// ScanOrder is the order in which the pattern detector runs the entity
// types. The order is part of the detection contract: the same-range
// suppression check in the detector only sees matches of types scanned
// earlier (e.g. a CVV-sized fragment inside an already-accepted card
// number).
var ScanOrder = []detector.EntityType{
	detector.Email,
	detector.PhoneNumber,
	detector.CreditDebitNo,
	detector.CVVNo,
	detector.ExpiryNo,
	detector.AadharNum,
	detector.DOB,
}

var library = map[detector.EntityType]*regexp.Regexp{
	detector.Email: regexp.MustCompile(
		`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),

	// Captures standard and international formats. No leading \b so a
	// "+" country prefix is part of the match.
	detector.PhoneNumber: regexp.MustCompile(
		`(?:(?:\+|00)[1-9]\d{0,3}[-\s.]?)?` +
			`(?:\(?\d{1,5}\)?[-\s.]?)?\d{1,5}` +
			`(?:[-\s.]\d{1,5}){1,4}\b`),

	// Card number: common 4-4-4-4 groupings with optional separators,
	// or 13-19 consecutive digits.
	detector.CreditDebitNo: regexp.MustCompile(
		`\b(?:(?:\d{4}[\s-]?){3}\d{4}|\d{13,19})\b`),

	// CVV: 3 or 4 standalone digits; context verification does the
	// real work here.
	detector.CVVNo: regexp.MustCompile(`\b\d{3,4}\b`),

	// Expiry: MM/YY or MM/YYYY with common separators.
	detector.ExpiryNo: regexp.MustCompile(
		`\b(0[1-9]|1[0-2])[/\s-]([0-9]{2}|20[0-9]{2})\b`),

	detector.AadharNum: regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`),

	// DOB: DD/MM/YYYY with /, - or space separators.
	detector.DOB: regexp.MustCompile(
		`\b(0[1-9]|[12][0-9]|3[01])[/\s-](0[1-9]|1[0-2])[/\s-](?:19|20)\d\d\b`),
}

// Lookup returns the compiled pattern for the given entity type, or nil
// when the type has no pattern (full_name comes from the recognizer,
// not from the library).
func Lookup(t detector.EntityType) *regexp.Regexp {
	return library[t]
}
