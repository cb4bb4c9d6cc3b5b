// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the evidence-engine pipeline.
package types

// RawResult is one entry as reported by a feed or search source, before
// normalization. Fields are carried verbatim; the normalizer repairs them.
type RawResult struct {
	// Source is the display name of the originating outlet or feed.
	Source string `json:"source"`

	// Title is the headline as the source reported it. May contain HTML.
	Title string `json:"title"`

	// Link is the article URL as the source reported it.
	Link string `json:"link"`

	// Summary is the excerpt or description. May contain HTML. Optional.
	Summary string `json:"summary,omitempty"`

	// Image is a thumbnail URL when the feed carries one. Optional.
	Image string `json:"image,omitempty"`

	// Published is the publication timestamp string in whatever format the
	// source used. Empty when the source reported none.
	Published string `json:"published,omitempty"`
}

// Item is one aggregated news/evidence record. The canonical Link is the
// item's identity: the published dataset never contains two items with the
// same Link.
type Item struct {
	// Title is the cleaned display headline.
	Title string `json:"title"`

	// Link is the canonical URL (lowercased host, tracking parameters and
	// fragment stripped, no trailing slash).
	Link string `json:"link"`

	// Summary is a plain-text excerpt bounded for display. Omitted when the
	// source had none, so renderers can fall back to a text-only card.
	Summary string `json:"summary,omitempty"`

	// Image is a thumbnail URL, filled by feed metadata or og:image
	// enrichment. Omitted when nothing could be enriched.
	Image string `json:"image,omitempty"`

	// Source is the display name of the originating outlet or feed.
	Source string `json:"source"`

	// Date is the publication timestamp as "YYYY-MM-DD HH:MM:SS" in UTC.
	// Once an item is archived its Date never changes on re-sight.
	Date string `json:"date"`

	// Topics, Disciplines, and Areas are derived facet labels, recomputed
	// from title+summary+source at publish time. Never stored.
	Topics      []string `json:"topics,omitempty"`
	Disciplines []string `json:"disciplines,omitempty"`
	Areas       []string `json:"areas,omitempty"`

	// IsNew is true when the item's Date falls within the trailing 24 hours
	// at publish time. Derived, never stored.
	IsNew bool `json:"is_new,omitempty"`
}
