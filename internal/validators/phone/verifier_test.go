// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"testing"

	"mailmask/internal/detector"
)

func TestVerify(t *testing.T) {
	v := NewVerifier()

	tests := []struct {
		name   string
		value  string
		before string
		after  string
		want   bool
	}{
		{
			name:   "keyword context",
			value:  "4155550132",
			before: "phone: ",
			want:   true,
		},
		{
			name:  "international prefix",
			value: "+14155550132",
			want:  true,
		},
		{
			name:  "double zero prefix",
			value: "0014155550132",
			want:  true,
		},
		{
			name:  "formatted with dashes",
			value: "415-555-0132",
			want:  true,
		},
		{
			name:  "formatted with parens",
			value: "(415) 555-0132",
			want:  true,
		},
		{
			name:  "too few digits",
			value: "555-013",
			want:  false,
		},
		{
			name:  "too many digits",
			value: "4111 1111 1111 1111",
			want:  false,
		},
		{
			name:  "bare digits no context",
			value: "4155550132",
			want:  false,
		},
		{
			name:   "call me keyword",
			value:  "20 7946 0958",
			before: "call me at ",
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

func TestCountDigits(t *testing.T) {
	if got := countDigits("+1 (415) 555-0132"); got != 11 {
		t.Errorf("countDigits = %d, want 11", got)
	}
	if got := countDigits("no digits"); got != 0 {
		t.Errorf("countDigits = %d, want 0", got)
	}
}
