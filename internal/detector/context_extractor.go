// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// ContextInfo stores the text surrounding a match, used by the
// contextual verifiers to accept or reject the raw pattern hit.
type ContextInfo struct {
	// Text before and after the match, within the context window
	BeforeText string
	AfterText  string

	// Single characters immediately adjacent to the match, empty at
	// the text boundaries. Used to detect matches embedded in longer
	// digit runs.
	CharBefore string
	CharAfter  string
}

// ContextExtractor extracts context around a span of text
type ContextExtractor struct {
	// Number of characters before and after the match to consider
	ContextChars int
}

// NewContextExtractor creates a new context extractor with default settings
func NewContextExtractor() *ContextExtractor {
	return &ContextExtractor{
		ContextChars: 50, // Look at 50 chars before and after by default
	}
}

// WithContextChars sets the number of context characters
func (ce *ContextExtractor) WithContextChars(chars int) *ContextExtractor {
	ce.ContextChars = chars
	return ce
}

// ExtractContext returns the context window around text[start:end].
func (ce *ContextExtractor) ExtractContext(text string, start, end int) ContextInfo {
	info := ContextInfo{
		BeforeText: text[max(0, start-ce.ContextChars):start],
		AfterText:  text[end:min(len(text), end+ce.ContextChars)],
	}

	if start > 0 {
		info.CharBefore = text[start-1 : start]
	}
	if end < len(text) {
		info.CharAfter = text[end : end+1]
	}

	return info
}

// Helper functions
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
