// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import (
	"testing"

	"mailmask/internal/detector"
)

func TestVerify(t *testing.T) {
	v := NewVerifier()

	tests := []struct {
		name    string
		value   string
		before  string
		after   string
		want    bool
	}{
		{
			name:   "card keyword before",
			value:  "4111 1111 1111 1111",
			before: "My card number is ",
			want:   true,
		},
		{
			name:  "visa keyword after",
			value: "4111 1111 1111 1111",
			after: " is my visa, do not share it",
			want:  true,
		},
		{
			name:   "keyword case insensitive",
			value:  "5500 0000 0000 0004",
			before: "CREDIT limit on ",
			want:   true,
		},
		{
			name:   "no keyword",
			value:  "4111 1111 1111 1111",
			before: "tracking id ",
			after:  " for the shipment",
			want:   false,
		},
		{
			name:  "empty context",
			value: "4111111111111111",
			want:  false,
		},
		{
			name:   "account no keyword",
			value:  "1234567890123",
			before: "account no: ",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := detector.ContextInfo{BeforeText: tt.before, AfterText: tt.after}
			if got := v.Verify(tt.value, ctx); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestVerify_LuhnCheck(t *testing.T) {
	v := NewVerifier(WithLuhnCheck(true))
	ctx := detector.ContextInfo{BeforeText: "my card is "}

	// 4111 1111 1111 1111 is the canonical Luhn-valid test number.
	if !v.Verify("4111 1111 1111 1111", ctx) {
		t.Error("Luhn-valid number with keyword rejected")
	}
	if v.Verify("4111 1111 1111 1112", ctx) {
		t.Error("Luhn-invalid number accepted despite keyword")
	}
}

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{"4111111111111111", true},
		{"5500000000000004", true},
		{"4111111111111112", false},
		{"123", false},      // too short
		{"", false},
	}

	for _, tt := range tests {
		if got := luhnValid(tt.digits); got != tt.want {
			t.Errorf("luhnValid(%q) = %v, want %v", tt.digits, got, tt.want)
		}
	}
}

func TestCleanNumber(t *testing.T) {
	if got := cleanNumber("4111-1111 1111.1111"); got != "4111111111111111" {
		t.Errorf("cleanNumber = %q, want digits only", got)
	}
}
