// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"fmt"
	"strings"
)

// EntityType identifies the kind of PII a detected span represents.
// Verifier and pattern lookup is keyed on this type rather than on
// runtime strings so the dispatch table is fixed at initialization.
type EntityType int

const (
	Email EntityType = iota
	PhoneNumber
	CreditDebitNo
	CVVNo
	ExpiryNo
	AadharNum
	DOB
	FullName
)

// entityTypeNames maps EntityType values to their wire names.
var entityTypeNames = [...]string{
	Email:         "email",
	PhoneNumber:   "phone_number",
	CreditDebitNo: "credit_debit_no",
	CVVNo:         "cvv_no",
	ExpiryNo:      "expiry_no",
	AadharNum:     "aadhar_num",
	DOB:           "dob",
	FullName:      "full_name",
}

// String returns the wire name of the entity type (e.g. "phone_number").
func (t EntityType) String() string {
	if t < 0 || int(t) >= len(entityTypeNames) {
		return fmt.Sprintf("entity_type(%d)", int(t))
	}
	return entityTypeNames[t]
}

// MaskToken returns the bracketed placeholder substituted for a span of
// this type, e.g. "[PHONE_NUMBER]".
func (t EntityType) MaskToken() string {
	return "[" + strings.ToUpper(t.String()) + "]"
}

// ParseEntityType resolves a wire name back to its EntityType.
func ParseEntityType(name string) (EntityType, bool) {
	for i, n := range entityTypeNames {
		if n == name {
			return EntityType(i), true
		}
	}
	return 0, false
}

// Entity is a detected PII span. It is a value object: produced, compared,
// and discarded within a single request, never mutated after construction.
// Start and End are half-open offsets into the source text and Value is
// exactly text[Start:End].
type Entity struct {
	Start int
	End   int
	Type  EntityType
	Value string
}

// NewEntity constructs an Entity for text[start:end].
func NewEntity(text string, start, end int, entityType EntityType) Entity {
	return Entity{
		Start: start,
		End:   end,
		Type:  entityType,
		Value: text[start:end],
	}
}

// Length returns the span length in offset units.
func (e Entity) Length() int {
	return e.End - e.Start
}

// Overlap returns the length of the intersection of the two spans, zero
// when they do not overlap.
func (e Entity) Overlap(other Entity) int {
	o := min(e.End, other.End) - max(e.Start, other.Start)
	if o < 0 {
		return 0
	}
	return o
}

// Contains reports whether e fully covers other's range.
func (e Entity) Contains(other Entity) bool {
	return e.Start <= other.Start && e.End >= other.End
}

// Descriptor is the serialization-only projection of an Entity used in
// engine output and stored records.
type Descriptor struct {
	Position       [2]int `json:"position"`
	Classification string `json:"classification"`
	Entity         string `json:"entity"`
}

// Descriptor returns the output projection of the entity.
func (e Entity) Descriptor() Descriptor {
	return Descriptor{
		Position:       [2]int{e.Start, e.End},
		Classification: e.Type.String(),
		Entity:         e.Value,
	}
}

// Verifier is a contextual predicate applied to a raw pattern match.
// Returning false removes the candidate; no signal is surfaced.
type Verifier interface {
	Verify(value string, context ContextInfo) bool
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(value string, context ContextInfo) bool

// Verify implements the Verifier interface.
func (f VerifierFunc) Verify(value string, context ContextInfo) bool {
	return f(value, context)
}
