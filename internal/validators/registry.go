// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validators wires the per-type contextual verifiers into a
// lookup table keyed by entity type. The table is resolved once at
// construction; detection never branches on type names at runtime.
package validators

import (
	"mailmask/internal/detector"
	"mailmask/internal/validators/creditcard"
	"mailmask/internal/validators/cvv"
	"mailmask/internal/validators/dob"
	"mailmask/internal/validators/phone"
)

// Options configures optional verifier behavior.
type Options struct {
	// CreditCardLuhnCheck additionally validates card digits with the
	// Luhn checksum.
	CreditCardLuhnCheck bool
}

// Registry maps entity types to their contextual verifiers. Types with
// no entry (email, expiry_no, aadhar_num) are accepted on pattern match
// alone.
type Registry struct {
	verifiers map[detector.EntityType]detector.Verifier
}

// NewRegistry builds the verifier lookup table.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		verifiers: map[detector.EntityType]detector.Verifier{
			detector.CreditDebitNo: creditcard.NewVerifier(
				creditcard.WithLuhnCheck(opts.CreditCardLuhnCheck)),
			detector.CVVNo:       cvv.NewVerifier(),
			detector.PhoneNumber: phone.NewVerifier(),
			detector.DOB:         dob.NewVerifier(),
		},
	}
}

// Lookup returns the verifier for the given type, or (nil, false) when
// the type needs no contextual verification.
func (r *Registry) Lookup(t detector.EntityType) (detector.Verifier, bool) {
	v, ok := r.verifiers[t]
	return v, ok
}
