// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps raw feed results into canonical items. It repairs
// fields, derives the canonical link that serves as an item's identity, and
// rejects records that cannot be displayed.
package normalize

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

// DateFormat is how item dates are stored and published, always UTC.
const DateFormat = "2006-01-02 15:04:05"

// SummaryLimit bounds the display length of summaries, in runes.
const SummaryLimit = 180

// Status reports what the normalizer did with one raw record.
type Status int

const (
	// StatusOK means the record normalized cleanly.
	StatusOK Status = iota

	// StatusDateFallback means the record was kept but its date was missing
	// or unparsable, so the build timestamp was substituted.
	StatusDateFallback

	// StatusRejected means the record was dropped (missing title or link,
	// or a link that cannot be canonicalized).
	StatusRejected
)

// dateFormats lists accepted source date layouts, tried in order.
var dateFormats = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize turns a raw result into a canonical item. now supplies the
// fallback timestamp for missing or unparsable dates; injecting it keeps
// the function pure and lets tests fix the clock.
func Normalize(raw types.RawResult, now time.Time) (types.Item, Status) {
	title := CleanText(raw.Title)
	if title == "" || strings.TrimSpace(raw.Link) == "" {
		return types.Item{}, StatusRejected
	}

	link, err := CanonicalLink(raw.Link)
	if err != nil {
		return types.Item{}, StatusRejected
	}

	it := types.Item{
		Title:   title,
		Link:    link,
		Summary: Truncate(CleanText(raw.Summary), SummaryLimit),
		Image:   strings.TrimSpace(raw.Image),
		Source:  strings.TrimSpace(raw.Source),
	}

	status := StatusOK
	t, ok := ParseDate(raw.Published)
	if !ok {
		t = now
		status = StatusDateFallback
	}
	it.Date = t.UTC().Format(DateFormat)

	return it, status
}

// Summary tallies one run's normalizer outcomes for the run report.
type Summary struct {
	Kept          int
	Rejected      int
	DateFallbacks int
}

// Batch normalizes a slice of raw results in order, dropping rejects.
func Batch(raws []types.RawResult, now time.Time) ([]types.Item, Summary) {
	var sum Summary
	items := make([]types.Item, 0, len(raws))
	for _, raw := range raws {
		it, status := Normalize(raw, now)
		switch status {
		case StatusRejected:
			sum.Rejected++
			continue
		case StatusDateFallback:
			sum.DateFallbacks++
		}
		sum.Kept++
		items = append(items, it)
	}
	return items, sum
}

// ParseDate parses a source date string against the accepted layouts.
// The second return is false when the string is empty or matches none.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText strips HTML tags, unescapes entities, and collapses whitespace.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Truncate bounds s to limit runes, cutting at the last word boundary
// before the limit where one exists and appending an ellipsis.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "…"
}
