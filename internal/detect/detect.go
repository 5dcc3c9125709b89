// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detect runs the pattern library over input text and applies
// the contextual verifiers to produce candidate entities.
package detect

import (
	"mailmask/internal/detector"
	"mailmask/internal/observability"
	"mailmask/internal/patterns"
	"mailmask/internal/validators"
)

// Detector scans text with the shared pattern library. It holds no
// per-call state: the same detector can serve concurrent requests.
type Detector struct {
	registry  *validators.Registry
	extractor *detector.ContextExtractor

	// Observability
	observer *observability.StandardObserver
}

// NewDetector creates a pattern detector backed by the given verifier
// registry.
func NewDetector(registry *validators.Registry) *Detector {
	return &Detector{
		registry:  registry,
		extractor: detector.NewContextExtractor(),
	}
}

// SetObserver sets the observability component
func (d *Detector) SetObserver(observer *observability.StandardObserver) {
	d.observer = observer
}

// Detect returns the candidate entities for all pattern-detectable
// types. Each type is scanned in its own pass, so a type's matches
// never overlap each other; matches of different types may, and those
// conflicts are left to the overlap resolver. The one exception handled
// here: a match strictly inside the range of an earlier-accepted match
// with different text is dropped (e.g. the year fragment of an accepted
// date flagged again as a CVV-sized number).
func (d *Detector) Detect(text string) []detector.Entity {
	var finishTiming func(bool, map[string]interface{})
	if d.observer != nil {
		finishTiming = d.observer.StartTiming("pattern_detector", "detect", len(text))
	}

	var entities []detector.Entity

	for _, entityType := range patterns.ScanOrder {
		re := patterns.Lookup(entityType)

		for _, loc := range re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			value := text[start:end]

			if verifier, ok := d.registry.Lookup(entityType); ok {
				context := d.extractor.ExtractContext(text, start, end)
				if !verifier.Verify(value, context) {
					continue
				}
			}

			if containedInAccepted(entities, start, end, value) {
				continue
			}

			entities = append(entities, detector.NewEntity(text, start, end, entityType))
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"candidate_count": len(entities),
		})
	}

	return entities
}

// containedInAccepted reports whether [start,end) lies within the range
// of an already-accepted match whose text differs. Equal-valued,
// equal-ranged matches of another type are kept so the resolver can
// apply its own precedence.
func containedInAccepted(entities []detector.Entity, start, end int, value string) bool {
	for _, existing := range entities {
		if existing.Start <= start && existing.End >= end && existing.Value != value {
			return true
		}
	}
	return false
}
