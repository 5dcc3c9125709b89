// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver merges candidate entities from the pattern detector
// and the named-entity adapter into one non-overlapping span set.
//
// Precedence, most to least preferred: a full_name over any conflicting
// span that does not fully contain it, then the longer span, then the
// first-seen span of equal length. Person-name recognition is treated
// as more semantically reliable than a generic numeric match, but a
// name must not evict a containing, correctly-identified longer entity.
package resolver

import (
	"sort"

	"mailmask/internal/detector"
)

// outcome is the decision for one candidate/accepted conflict.
type outcome int

const (
	// evictAccepted removes the accepted entity; the candidate stays alive.
	evictAccepted outcome = iota
	// dropCandidate keeps the arena unchanged and discards the candidate.
	dropCandidate
)

// resolveConflict applies the precedence rules to one overlapping pair.
func resolveConflict(candidate, accepted detector.Entity) outcome {
	if candidate.Type == detector.FullName && accepted.Type != detector.FullName &&
		!accepted.Contains(candidate) {
		return evictAccepted
	}
	if accepted.Type == detector.FullName && candidate.Type != detector.FullName &&
		!candidate.Contains(accepted) {
		return dropCandidate
	}
	// Longer span wins outright; ties keep the already-accepted entity.
	if candidate.Length() > accepted.Length() {
		return evictAccepted
	}
	return dropCandidate
}

// arena is the accumulator of accepted, mutually non-overlapping
// entities, kept sorted by (start, -length) so each fold scans a
// consistent order.
type arena struct {
	accepted []detector.Entity
}

// fold merges one candidate into the arena. The candidate's fate is
// decided by scanning every overlapping accepted entity in order: it
// may evict several of them, but the first conflict it loses discards
// it and leaves the arena untouched.
func (a *arena) fold(candidate detector.Entity) {
	evicted := make([]bool, len(a.accepted))

	for i, accepted := range a.accepted {
		if candidate.Overlap(accepted) == 0 {
			continue
		}
		switch resolveConflict(candidate, accepted) {
		case evictAccepted:
			evicted[i] = true
		case dropCandidate:
			return
		}
	}

	kept := a.accepted[:0]
	for i, accepted := range a.accepted {
		if !evicted[i] {
			kept = append(kept, accepted)
		}
	}
	a.accepted = append(kept, candidate)
	sortByStartLen(a.accepted)
}

// pruneContained drops every entity strictly contained in a strictly
// longer one. The fold already resolves direct overlaps; this pass
// covers residual containment reachable transitively through multiple
// merges.
func (a *arena) pruneContained() []detector.Entity {
	var final []detector.Entity
	for i, entity := range a.accepted {
		contained := false
		for j, other := range a.accepted {
			if i == j {
				continue
			}
			if other.Contains(entity) && other.Length() > entity.Length() {
				contained = true
				break
			}
		}
		if !contained {
			final = append(final, entity)
		}
	}
	return final
}

// Resolve produces the resolved span set for the given candidates: no
// two members overlap, members are ordered by ascending start. The
// input slice is not modified.
func Resolve(candidates []detector.Entity) []detector.Entity {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]detector.Entity, len(candidates))
	copy(sorted, candidates)
	sortByStartLen(sorted)

	a := &arena{}
	for _, candidate := range sorted {
		a.fold(candidate)
	}

	return a.pruneContained()
}

// sortByStartLen orders entities by ascending start, longest first at
// equal start. The sort is stable so equal spans keep insertion order.
func sortByStartLen(entities []detector.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].Start != entities[j].Start {
			return entities[i].Start < entities[j].Start
		}
		return entities[i].Length() > entities[j].Length()
	})
}
