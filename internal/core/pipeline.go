// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the detection stages into the masking pipeline
// shared by the CLI and the web server.
package core

import (
	"context"
	"fmt"
	"time"

	"mailmask/internal/detect"
	"mailmask/internal/detector"
	"mailmask/internal/masker"
	"mailmask/internal/ner"
	"mailmask/internal/observability"
	"mailmask/internal/resolver"
	"mailmask/internal/validators"
)

// Result is the engine-level output contract, independent of any
// transport. Field names follow the wire format consumed downstream.
type Result struct {
	MaskedText  string                `json:"masked_email"`
	Descriptors []detector.Descriptor `json:"list_of_masked_entities"`
}

// PipelineConfig holds construction options for the pipeline.
type PipelineConfig struct {
	// Recognizer supplies person-name spans. Nil disables name
	// detection entirely (pattern-only pipeline).
	Recognizer ner.Recognizer

	// CreditCardLuhnCheck additionally validates card candidates with
	// the Luhn checksum.
	CreditCardLuhnCheck bool

	Observer *observability.StandardObserver
	Metrics  *observability.Metrics
}

// Pipeline is the synchronous text-masking engine. It holds only
// read-only state after construction, so one pipeline serves
// concurrent requests without coordination.
type Pipeline struct {
	detector *detect.Detector
	adapter  *ner.Adapter

	observer *observability.StandardObserver
	metrics  *observability.Metrics
}

// NewPipeline builds the pipeline from its configuration.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	registry := validators.NewRegistry(validators.Options{
		CreditCardLuhnCheck: cfg.CreditCardLuhnCheck,
	})

	d := detect.NewDetector(registry)
	a := ner.NewAdapter(cfg.Recognizer)

	if cfg.Observer != nil {
		d.SetObserver(cfg.Observer)
		a.SetObserver(cfg.Observer)
	}
	if cfg.Metrics != nil {
		a.SetDegradedCounter(cfg.Metrics.NERDegraded)
	}

	return &Pipeline{
		detector: d,
		adapter:  a,
		observer: cfg.Observer,
		metrics:  cfg.Metrics,
	}
}

// Detect runs pattern and name detection and resolves overlaps,
// returning the resolved span set ordered by ascending start.
func (p *Pipeline) Detect(ctx context.Context, text string) []detector.Entity {
	debug := p.debugObserver()

	candidates := p.detector.Detect(text)
	patternCount := len(candidates)
	candidates = append(candidates, p.adapter.Detect(ctx, text)...)

	var finishStep func(bool, string)
	if debug != nil {
		debug.LogMetric("pipeline", "pattern_candidates", patternCount)
		debug.LogMetric("pipeline", "name_candidates", len(candidates)-patternCount)
		finishStep = debug.StartStep("resolver", "resolve overlaps")
	}

	resolved := resolver.Resolve(candidates)

	if debug != nil {
		finishStep(true, fmt.Sprintf("%d of %d candidates kept", len(resolved), len(candidates)))
		for _, e := range resolved {
			debug.LogDetail("resolver", fmt.Sprintf("%s [%d:%d]", e.Type, e.Start, e.End))
		}
	}

	return resolved
}

func (p *Pipeline) debugObserver() *observability.DebugObserver {
	if p.observer == nil {
		return nil
	}
	return p.observer.DebugObserver
}

// Process masks one text. Empty input is valid and produces empty
// masked text with an empty descriptor list.
func (p *Pipeline) Process(ctx context.Context, text string) Result {
	start := time.Now()

	resolved := p.Detect(ctx, text)
	masked, descriptors := masker.Mask(text, resolved)

	if p.metrics != nil {
		for _, d := range descriptors {
			p.metrics.EntitiesMasked.WithLabelValues(d.Classification).Inc()
		}
		p.metrics.ObserveRequestDuration(time.Since(start))
	}
	if p.observer != nil {
		p.observer.LogOperation(observability.StandardObservabilityData{
			Component:   "pipeline",
			Operation:   "process",
			TextLength:  len(text),
			Success:     true,
			EntityCount: len(descriptors),
			DurationMs:  time.Since(start).Milliseconds(),
		})
	}

	return Result{
		MaskedText:  masked,
		Descriptors: descriptors,
	}
}
