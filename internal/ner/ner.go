// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ner integrates an external named-entity recognizer into the
// detection pipeline. The recognizer is a capability boundary: the
// engine only depends on its output contract (labeled character spans)
// and degrades to pattern-only detection when it is unavailable.
package ner

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"mailmask/internal/detector"
	"mailmask/internal/observability"
)

// Span is one labeled range reported by a recognizer. Offsets use the
// same unit as the engine (byte offsets into the UTF-8 text).
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Recognizer is the consumed NER capability. Implementations must be
// safe to call with empty or very long text and must return the same
// offset unit as the engine.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Span, error)
}

// Adapter converts recognizer spans into entities. Only person labels
// are consumed; everything else the recognizer reports is ignored.
type Adapter struct {
	recognizer Recognizer

	// Observability
	observer *observability.StandardObserver
	degraded prometheus.Counter
}

// NewAdapter creates an adapter over the given recognizer.
func NewAdapter(recognizer Recognizer) *Adapter {
	return &Adapter{recognizer: recognizer}
}

// SetObserver sets the observability component
func (a *Adapter) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// SetDegradedCounter sets the counter incremented when the recognizer
// fails and the pipeline falls back to pattern-only detection.
func (a *Adapter) SetDegradedCounter(c prometheus.Counter) {
	a.degraded = c
}

// personLabels are the recognizer labels mapped to full_name.
var personLabels = map[string]bool{
	"PER":    true,
	"PERSON": true,
}

// Detect returns full_name entities for the person spans the
// recognizer reports. Recognizer failure is not fatal: the degrade is
// logged and counted, and an empty set is returned so the rest of the
// pipeline proceeds on pattern matches alone. Spans with out-of-bounds
// offsets are dropped individually.
func (a *Adapter) Detect(ctx context.Context, text string) []detector.Entity {
	if a.recognizer == nil {
		return nil
	}

	spans, err := a.recognizer.Recognize(ctx, text)
	if err != nil {
		if a.observer != nil {
			a.observer.LogOperation(observability.StandardObservabilityData{
				Component:  "ner_adapter",
				Operation:  "recognize",
				TextLength: len(text),
				Success:    false,
				Error:      err.Error(),
			})
		}
		if a.degraded != nil {
			a.degraded.Inc()
		}
		return nil
	}

	var entities []detector.Entity
	for _, span := range spans {
		if !personLabels[span.Label] {
			continue
		}
		if span.Start < 0 || span.End > len(text) || span.Start >= span.End {
			// Malformed offsets reject the span, not the pass.
			continue
		}
		entities = append(entities, detector.NewEntity(text, span.Start, span.End, detector.FullName))
	}

	if a.observer != nil {
		a.observer.LogOperation(observability.StandardObservabilityData{
			Component:   "ner_adapter",
			Operation:   "recognize",
			TextLength:  len(text),
			Success:     true,
			EntityCount: len(entities),
		})
	}

	return entities
}
