// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package facet classifies items against keyword dictionaries and tags
// recency. Matching is case-insensitive substring containment, not
// word-boundary matching: a short phrase can match inside an unrelated
// word, and that false positive is an accepted property of the design.
package facet

import (
	"strings"
	"time"

	"github.com/universalbeat/evidence-engine/internal/normalize"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

// Label maps one facet label to the phrases that trigger it.
type Label struct {
	Name    string
	Phrases []string
}

// Dictionary is an ordered rule table for one facet. Order matters: result
// labels follow declaration order, not discovery order, so classification
// of identical text is byte-stable across runs.
type Dictionary struct {
	Name   string
	Labels []Label
}

// Classify returns the labels whose phrase set has at least one phrase
// occurring in text. text is lowercased internally; phrases are declared
// lowercase.
func (d Dictionary) Classify(text string) []string {
	text = strings.ToLower(text)
	var out []string
	for _, l := range d.Labels {
		for _, p := range l.Phrases {
			if strings.Contains(text, p) {
				out = append(out, l.Name)
				break
			}
		}
	}
	return out
}

// Searchable builds the classification text for an item:
// lower(title + " " + summary + " " + source).
func Searchable(it types.Item) string {
	return strings.ToLower(it.Title + " " + it.Summary + " " + it.Source)
}

// NewWindow is the trailing window within which an item counts as new.
const NewWindow = 24 * time.Hour

// IsNew reports whether a stored item date falls within the trailing
// 24-hour window ending at now. Both bounds are inclusive: an item exactly
// 24h old is still new, an item dated after now is not. Unparsable stored
// dates are never new.
func IsNew(date string, now time.Time) bool {
	t, ok := normalize.ParseDate(date)
	if !ok {
		return false
	}
	age := now.Sub(t)
	return age >= 0 && age <= NewWindow
}

// Apply recomputes the derived fields of an item in place: the three facet
// label sets and the recency flag.
func Apply(it *types.Item, now time.Time) {
	text := Searchable(*it)
	it.Topics = Topics.Classify(text)
	it.Disciplines = Disciplines.Classify(text)
	it.Areas = Areas.Classify(text)
	it.IsNew = IsNew(it.Date, now)
}
