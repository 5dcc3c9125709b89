// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ner

import "context"

// StubRecognizer returns a fixed span list. It decouples core tests
// from any recognition backend.
type StubRecognizer struct {
	Spans []Span
	Err   error
}

// Recognize implements the Recognizer interface.
func (s *StubRecognizer) Recognize(context.Context, string) ([]Span, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Spans, nil
}
