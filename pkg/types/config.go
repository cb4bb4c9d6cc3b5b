// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout, also the per-source fetch budget.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "evidence-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the feed fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Query is the free-text boolean query fed to the search-backed sources
	// (e.g. "longevity OR aging OR chronic disease treatment").
	Query string `json:"query" yaml:"query"`

	// PerFeedLimit caps the number of entries taken from a single feed
	// (default 80).
	PerFeedLimit int `json:"per_feed_limit" yaml:"per_feed_limit"`

	// MaxTotal caps the size of one run's merged batch (default 700).
	MaxTotal int `json:"max_total" yaml:"max_total"`
}

// EnrichConfig holds settings for og:image thumbnail enrichment.
type EnrichConfig struct {
	HTTPConfig `yaml:",inline"`

	// Budget caps the number of page lookups per run (default 220).
	Budget int `json:"budget" yaml:"budget"`

	// Concurrency bounds how many lookups run at once (default 8).
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// ArchiveConfig holds settings for the durable archive and dataset output.
type ArchiveConfig struct {
	// OutputDir is the base output directory (contains data/, archive/, index/).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// LatestLimit is the size of the bounded latest view (default 25).
	LatestLimit int `json:"latest_limit" yaml:"latest_limit"`
}

// CatalogConfig holds settings for the catalog build.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// SitesFile is an optional YAML site map overriding the built-in one.
	SitesFile string `json:"sites_file,omitempty" yaml:"sites_file,omitempty"`

	// OutputDir is the base output directory (catalog.json goes to data/).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ImageBudget caps og:image lookups during the catalog build (default 40).
	ImageBudget int `json:"image_budget" yaml:"image_budget"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Enrich  EnrichConfig  `json:"enrich" yaml:"enrich"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
