// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package facet

import (
	"reflect"
	"testing"
	"time"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

func TestClassifyTrialMicrobiomeText(t *testing.T) {
	text := "randomized controlled trial on gut microbiome and probiotic supplementation"

	topics := Topics.Classify(text)
	if !contains(topics, "Microbiome") {
		t.Errorf("Topics = %v, want Microbiome present", topics)
	}
	disciplines := Disciplines.Classify(text)
	if !contains(disciplines, "Clinical Trials") {
		t.Errorf("Disciplines = %v, want Clinical Trials present", disciplines)
	}
}

func TestClassifyNoMatches(t *testing.T) {
	if got := Topics.Classify("quarterly earnings report beats expectations"); got != nil {
		t.Errorf("Topics = %v, want none", got)
	}
}

func TestClassifyDeterministicOrder(t *testing.T) {
	// "probiotic" appears before "aging" in the text, but Longevity is
	// declared before Microbiome: declaration order must win.
	text := "probiotic effects on aging"
	want := []string{"Longevity", "Microbiome"}

	first := Topics.Classify(text)
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("Topics = %v, want %v", first, want)
	}
	second := Topics.Classify(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification not stable: %v then %v", first, second)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Topics.Classify("GUT MICROBIOME Study"); !contains(got, "Microbiome") {
		t.Errorf("Topics = %v, want Microbiome for uppercase text", got)
	}
}

func TestClassifySubstringMatches(t *testing.T) {
	// Containment matching has accepted false positives: "rct" inside
	// another word still triggers Clinical Trials.
	if got := Disciplines.Classify("the arctic expedition"); !contains(got, "Clinical Trials") {
		t.Errorf("Disciplines = %v; substring semantics should match rct inside arctic", got)
	}
}

func TestSearchable(t *testing.T) {
	it := types.Item{Title: "Big Study", Summary: "On Aging", Source: "Nature"}
	if got := Searchable(it); got != "big study on aging nature" {
		t.Errorf("Searchable = %q", got)
	}
}

func TestIsNew(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"23h old is new", "2024-01-09 13:00:00", true},
		{"25h old is not", "2024-01-09 11:00:00", false},
		{"exactly 24h is new", "2024-01-09 12:00:00", true},
		{"exactly now is new", "2024-01-10 12:00:00", true},
		{"future date is not", "2024-01-10 13:00:00", false},
		{"unparsable is not", "sometime", false},
		{"empty is not", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNew(tt.date, now); got != tt.want {
				t.Errorf("IsNew(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestApplySetsDerivedFields(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	it := types.Item{
		Title:   "Randomized controlled trial of probiotic supplementation",
		Summary: "Gut microbiome screening study",
		Source:  "BMJ",
		Date:    "2024-01-10 09:00:00",
	}
	Apply(&it, now)

	if !contains(it.Topics, "Microbiome") {
		t.Errorf("Topics = %v", it.Topics)
	}
	if !contains(it.Disciplines, "Clinical Trials") {
		t.Errorf("Disciplines = %v", it.Disciplines)
	}
	if !contains(it.Areas, "Research") {
		t.Errorf("Areas = %v", it.Areas)
	}
	if !it.IsNew {
		t.Errorf("IsNew = false for a 3h-old item")
	}
}

func contains(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}
