// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier labels masked email text with a support category.
// The model itself is an external collaborator; this package holds the
// capability interface, an HTTP client for a model server, and a
// keyword fallback so the service works without one. Classification
// always runs on masked text, never on the original.
package classifier

import (
	"context"
	"strings"
)

// Categories the classifier may produce.
const (
	CategoryChange   = "Change"
	CategoryIncident = "Incident"
	CategoryProblem  = "Problem"
	CategoryRequest  = "Request"
)

// Classifier is the consumed classification capability.
type Classifier interface {
	Classify(ctx context.Context, maskedText string) (string, error)
}

// KeywordClassifier is the in-process fallback: scores each category by
// keyword hits and returns the best one, defaulting to Request.
type KeywordClassifier struct {
	keywords map[string][]string
}

// NewKeywordClassifier creates the fallback classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		keywords: map[string][]string{
			CategoryChange: {
				"change", "update", "modify", "upgrade", "migration",
				"switch", "replace", "reschedule",
			},
			CategoryIncident: {
				"down", "outage", "crash", "error", "failed", "failure",
				"broken", "not working", "urgent", "immediately",
			},
			CategoryProblem: {
				"problem", "issue", "bug", "recurring", "keeps happening",
				"root cause", "again", "still",
			},
			CategoryRequest: {
				"request", "please provide", "need access", "would like",
				"could you", "how do i", "question",
			},
		},
	}
}

// Classify implements the Classifier interface. It never fails; the
// error return exists to satisfy the capability contract.
func (c *KeywordClassifier) Classify(_ context.Context, maskedText string) (string, error) {
	text := strings.ToLower(maskedText)

	best := CategoryRequest
	bestScore := 0
	// Fixed category order keeps ties deterministic.
	for _, category := range []string{CategoryChange, CategoryIncident, CategoryProblem, CategoryRequest} {
		score := 0
		for _, keyword := range c.keywords[category] {
			score += strings.Count(text, keyword)
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	return best, nil
}
