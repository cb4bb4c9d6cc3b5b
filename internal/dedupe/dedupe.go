// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe merges normalized items that share an identity. Identity is
// the canonical link produced by the normalizer; for any two items in a
// merged batch the links are distinct.
package dedupe

import "github.com/universalbeat/evidence-engine/pkg/types"

// Policy selects the tie-break when both the existing and the incoming
// record carry a value for the same enrichable field.
type Policy int

const (
	// KeepExisting fills only fields the existing record lacks. This is the
	// default: enrichment never overwrites what was already published.
	KeepExisting Policy = iota

	// PreferIncoming lets a non-empty incoming summary or image replace the
	// existing one. Dates and titles are still first-seen-wins.
	PreferIncoming
)

// Merge collapses items sharing a canonical link, left to right, and returns
// the merged batch plus the number of duplicates removed. Input order is the
// tie-break: the first-seen record anchors identity and date, later sightings
// only enrich it. Callers therefore feed items in deterministic source order.
func Merge(items []types.Item, policy Policy) ([]types.Item, int) {
	seen := make(map[string]int, len(items)) // canonical link → index in merged
	var merged []types.Item
	removed := 0

	for _, it := range items {
		if idx, ok := seen[it.Link]; ok {
			MergeInto(&merged[idx], it, policy)
			removed++
			continue
		}
		seen[it.Link] = len(merged)
		merged = append(merged, it)
	}
	return merged, removed
}

// MergeInto folds a re-sighted record into the archived one. The existing
// date always wins, keeping identity stable across runs; summary, image,
// and source follow the policy. The archive upsert applies the same rule
// cross-run, so one sighting and one republish behave identically.
func MergeInto(dst *types.Item, src types.Item, policy Policy) {
	if dst.Summary == "" || (policy == PreferIncoming && src.Summary != "") {
		if src.Summary != "" {
			dst.Summary = src.Summary
		}
	}
	if dst.Image == "" || (policy == PreferIncoming && src.Image != "") {
		if src.Image != "" {
			dst.Image = src.Image
		}
	}
	if dst.Source == "" && src.Source != "" {
		dst.Source = src.Source
	}
	if dst.Title == "" && src.Title != "" {
		dst.Title = src.Title
	}
}
