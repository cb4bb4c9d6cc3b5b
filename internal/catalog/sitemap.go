// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog builds the programs/experts/institutions dataset from a
// fixed map of directory-style pages. It is the low-complexity sibling of
// the news pipeline: same fetch/dedupe/publish shape, no recency and no
// facet classification.
package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

// ScrapeMode selects how a site is harvested.
type ScrapeMode string

const (
	// ModeOutlinks harvests external links out of a listing/roadmap page,
	// one catalog entry per linked organization.
	ModeOutlinks ScrapeMode = "outlinks"

	// ModeSingle records the page itself as one catalog entry.
	ModeSingle ScrapeMode = "single"
)

// Site is one scrape target in the site map.
type Site struct {
	// Name labels the site in logs and, for single mode, names the entry.
	Name string `yaml:"name"`

	URL  string     `yaml:"url"`
	Mode ScrapeMode `yaml:"mode"`

	// Kind classifies every entry this site yields.
	Kind types.CatalogKind `yaml:"kind"`

	// Container is a comma-separated list of CSS selectors tried in order
	// to find the content region for outlink harvesting. Empty means the
	// whole page.
	Container string `yaml:"container,omitempty"`

	// Location is carried onto single-mode entries.
	Location string `yaml:"location,omitempty"`

	Tags []string `yaml:"tags,omitempty"`
}

// DefaultSites is the built-in site map: curated longevity/health listing
// pages plus one standalone clinic.
func DefaultSites() []Site {
	return []Site{
		{
			Name: "Scispot top anti-aging companies", Mode: ModeOutlinks, Kind: types.KindInstitution,
			URL:       "https://www.scispot.com/blog/top-20-of-most-innovative-anti-aging-companies-in-the-world",
			Container: "article, main, .blog-content, .prose",
			Tags:      []string{"longevity", "biotech", "companies"},
		},
		{
			Name: "Labiotech anti-aging companies", Mode: ModeOutlinks, Kind: types.KindInstitution,
			URL:       "https://www.labiotech.eu/best-biotech/anti-aging-biotech-companies/",
			Container: "article, main, .single-content, .article__content",
			Tags:      []string{"longevity", "biotech", "companies"},
		},
		{
			Name: "Longevity clinic ranking", Mode: ModeOutlinks, Kind: types.KindInstitution,
			URL:       "https://longevity-clinic.co.uk/what-is-the-best-longevity-clinic-in-the-world/",
			Container: "article, main, .entry-content, .content",
			Tags:      []string{"longevity", "clinic", "ranking"},
		},
		{
			Name: "Lifespan.io rejuvenation roadmap", Mode: ModeOutlinks, Kind: types.KindProgram,
			URL:       "https://www.lifespan.io/road-maps/the-rejuvenation-roadmap/",
			Container: "article, main, #content, .entry-content, .wrap",
			Tags:      []string{"rejuvenation", "roadmap", "programs"},
		},
		{
			Name: "The Center for Natural & Integrative Medicine (Dr. Kalidas)",
			Mode: ModeSingle, Kind: types.KindInstitution,
			URL:      "https://drkalidas.com/",
			Location: "Orlando, Florida, USA",
			Tags:     []string{"integrative", "naturopathic", "clinic"},
		},
	}
}

// LoadSites reads a YAML site map file: a top-level `sites:` list of Site
// entries. It replaces the built-in map entirely.
func LoadSites(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site map: %w", err)
	}
	var doc struct {
		Sites []Site `yaml:"sites"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing site map: %w", err)
	}
	if len(doc.Sites) == 0 {
		return nil, fmt.Errorf("site map %s lists no sites", path)
	}
	for i, s := range doc.Sites {
		if s.URL == "" {
			return nil, fmt.Errorf("site %d has no url", i)
		}
		if s.Mode != ModeOutlinks && s.Mode != ModeSingle {
			return nil, fmt.Errorf("site %s has unknown mode %q", s.URL, s.Mode)
		}
	}
	return doc.Sites, nil
}
