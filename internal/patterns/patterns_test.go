// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"testing"

	"mailmask/internal/detector"
)

func TestScanOrder(t *testing.T) {
	if len(ScanOrder) != 7 {
		t.Fatalf("ScanOrder has %d types, want 7", len(ScanOrder))
	}
	for _, entityType := range ScanOrder {
		if Lookup(entityType) == nil {
			t.Errorf("no pattern for scan-order type %s", entityType)
		}
	}
	// Card numbers must be scanned before their CVV-sized and
	// Aadhaar-sized fragments so containment suppression can fire.
	position := func(want detector.EntityType) int {
		for i, entityType := range ScanOrder {
			if entityType == want {
				return i
			}
		}
		t.Fatalf("%s missing from ScanOrder", want)
		return -1
	}
	if position(detector.CreditDebitNo) > position(detector.CVVNo) {
		t.Error("credit_debit_no must be scanned before cvv_no")
	}
	if position(detector.CreditDebitNo) > position(detector.AadharNum) {
		t.Error("credit_debit_no must be scanned before aadhar_num")
	}
}

func TestLookup_NoPatternForFullName(t *testing.T) {
	if Lookup(detector.FullName) != nil {
		t.Error("full_name must not have a library pattern")
	}
}

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		name       string
		entityType detector.EntityType
		text       string
		want       string
	}{
		{"email", detector.Email, "write to john.doe@example.com today", "john.doe@example.com"},
		{"email subdomain", detector.Email, "ops@mail.internal.example.org", "ops@mail.internal.example.org"},
		{"phone with plus", detector.PhoneNumber, "at +1-415-555-0132 now", "+1-415-555-0132"},
		{"phone dotted", detector.PhoneNumber, "dial 415.555.0132 please", "415.555.0132"},
		{"card spaced", detector.CreditDebitNo, "card 4111 1111 1111 1111 here", "4111 1111 1111 1111"},
		{"card contiguous", detector.CreditDebitNo, "pan 4111111111111111 end", "4111111111111111"},
		{"cvv", detector.CVVNo, "cvv 829 ok", "829"},
		{"expiry", detector.ExpiryNo, "exp 05/26 thanks", "05/26"},
		{"expiry long year", detector.ExpiryNo, "valid 11-2027 only", "11-2027"},
		{"aadhar", detector.AadharNum, "id 1234 5678 9012 listed", "1234 5678 9012"},
		{"dob", detector.DOB, "born 14/03/1990 in", "14/03/1990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := Lookup(tt.entityType)
			got := re.FindString(tt.text)
			if got != tt.want {
				t.Errorf("FindString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPatternRejects(t *testing.T) {
	tests := []struct {
		name       string
		entityType detector.EntityType
		text       string
	}{
		{"email without tld", detector.Email, "user@localhost"},
		{"expiry month 13", detector.ExpiryNo, "13/26"},
		{"dob day 32", detector.DOB, "32/03/1990"},
		{"cvv five digits", detector.CVVNo, "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := Lookup(tt.entityType)
			if got := re.FindString(tt.text); got != "" {
				t.Errorf("unexpectedly matched %q", got)
			}
		})
	}
}
