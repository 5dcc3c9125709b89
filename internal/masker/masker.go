// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package masker rebuilds text with typed mask tokens substituted for
// resolved entity spans.
package masker

import (
	"sort"
	"strings"

	"mailmask/internal/detector"
)

// Mask walks the resolved span set left to right and rebuilds the
// text, replacing each span with its mask token. It returns the masked
// text and the entity descriptors in the same (start ascending, longest
// first) order the mask tokens are emitted in. The input need not be
// pre-sorted and is not modified.
//
// Every character of the original text appears exactly once in the
// output, either verbatim in a gap or covered by a mask token.
func Mask(text string, entities []detector.Entity) (string, []detector.Descriptor) {
	sorted := make([]detector.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Length() > sorted[j].Length()
	})

	descriptors := make([]detector.Descriptor, 0, len(sorted))

	var b strings.Builder
	cursor := 0
	for _, entity := range sorted {
		if entity.Start > cursor {
			b.WriteString(text[cursor:entity.Start])
		}
		b.WriteString(entity.Type.MaskToken())
		cursor = entity.End

		descriptors = append(descriptors, entity.Descriptor())
	}
	if cursor < len(text) {
		b.WriteString(text[cursor:])
	}

	return b.String(), descriptors
}
