// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"context"
	"testing"
)

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "incident",
			text: "The payment service is down and customers see an error page. This is urgent.",
			want: CategoryIncident,
		},
		{
			name: "change",
			text: "Please update my billing address and modify the delivery schedule.",
			want: CategoryChange,
		},
		{
			name: "problem",
			text: "The same issue keeps happening again, we need the root cause.",
			want: CategoryProblem,
		},
		{
			name: "request",
			text: "I would like to request access to the reporting dashboard.",
			want: CategoryRequest,
		},
		{
			name: "no keywords defaults to request",
			text: "[FULL_NAME] visited the office on [DOB].",
			want: CategoryRequest,
		},
		{
			name: "empty text defaults to request",
			text: "",
			want: CategoryRequest,
		},
		{
			name: "case insensitive",
			text: "OUTAGE: everything is BROKEN",
			want: CategoryIncident,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordClassifier_TieIsDeterministic(t *testing.T) {
	c := NewKeywordClassifier()
	// One Change keyword and one Incident keyword: the fixed category
	// order breaks the tie the same way every run.
	text := "please update the crashed node"

	first, _ := c.Classify(context.Background(), text)
	for i := 0; i < 10; i++ {
		again, _ := c.Classify(context.Background(), text)
		if again != first {
			t.Fatalf("tie broke differently across runs: %q vs %q", again, first)
		}
	}
	if first != CategoryChange {
		t.Errorf("tie winner = %q, want %q (first in category order)", first, CategoryChange)
	}
}
