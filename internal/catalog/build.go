// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/universalbeat/evidence-engine/internal/archive"
	"github.com/universalbeat/evidence-engine/internal/enrich"
	"github.com/universalbeat/evidence-engine/internal/normalize"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

// kind-level defaults for the variant fields when a scrape yields nothing
// more specific.
const (
	defaultCategory = "roadmap"
	defaultFocus    = "Longevity / Clinic / Biotech"
)

// Build scrapes every site in the map, deduplicates entries by
// (kind, canonical url), fills the per-kind variant field, enriches a
// budgeted number of entries with preview images, and returns the bucketed
// catalog. Site failures are warnings; the build continues with the sites
// that succeeded.
func Build(ctx context.Context, client *http.Client, sites []Site, cfg types.CatalogConfig, w io.Writer) types.Catalog {
	var raw []types.CatalogEntry
	for _, site := range sites {
		entries, err := scrapeSite(ctx, client, site, cfg)
		if err != nil {
			fmt.Fprintf(w, "warning: site %s failed: %v\n", site.Name, err)
			continue
		}
		fmt.Fprintf(w, "scraped %d from %s\n", len(entries), site.Name)
		raw = append(raw, entries...)
	}

	deduped := dedupeEntries(raw)
	enrichImages(ctx, client, deduped, cfg, w)

	var cat types.Catalog
	for _, e := range deduped {
		switch e.Kind {
		case types.KindProgram:
			if e.Category == "" {
				e.Category = defaultCategory
			}
		case types.KindInstitution:
			if e.Focus == "" {
				e.Focus = defaultFocus
			}
		}
		cat.Add(e)
	}
	// Keep the published buckets as [] rather than null.
	if cat.Programs == nil {
		cat.Programs = []types.CatalogEntry{}
	}
	if cat.Experts == nil {
		cat.Experts = []types.CatalogEntry{}
	}
	if cat.Institutions == nil {
		cat.Institutions = []types.CatalogEntry{}
	}
	return cat
}

// dedupeEntries collapses entries sharing (kind, canonical url), left to
// right. Kinds are disjoint namespaces: the same URL may appear once as a
// program and once as an institution.
func dedupeEntries(entries []types.CatalogEntry) []types.CatalogEntry {
	seen := make(map[string]int, len(entries))
	var out []types.CatalogEntry

	for _, e := range entries {
		canonical, err := normalize.CanonicalLink(e.URL)
		if err != nil {
			continue
		}
		key := string(e.Kind) + "|" + canonical
		if idx, ok := seen[key]; ok {
			if out[idx].Description == "" {
				out[idx].Description = e.Description
			}
			if out[idx].Location == "" {
				out[idx].Location = e.Location
			}
			continue
		}
		seen[key] = len(out)
		out = append(out, e)
	}
	return out
}

// enrichImages fills preview images for the first cfg.ImageBudget entries
// that lack one, serially; the catalog is small and the sites are slow.
func enrichImages(ctx context.Context, client *http.Client, entries []types.CatalogEntry, cfg types.CatalogConfig, w io.Writer) {
	budget := cfg.ImageBudget
	if budget <= 0 {
		budget = 40
	}
	for i := range entries {
		if budget <= 0 {
			return
		}
		if entries[i].Image != "" {
			continue
		}
		budget--
		img, err := enrich.OGImage(ctx, client, entries[i].URL, cfg.UserAgent)
		if err != nil {
			fmt.Fprintf(w, "warning: catalog image %s: %v\n", entries[i].URL, err)
			continue
		}
		entries[i].Image = img
	}
}

// Publish writes the catalog to outputDir/data/catalog.json atomically,
// replacing whatever was there: the catalog is a flat overwrite-on-publish
// dataset with no cross-run history.
func Publish(cat types.Catalog, outputDir string, w io.Writer) error {
	dir := filepath.Join(outputDir, "data")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := archive.WriteJSON(filepath.Join(dir, "catalog.json"), cat); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %d programs, %d experts, %d institutions\n",
		len(cat.Programs), len(cat.Experts), len(cat.Institutions))
	return nil
}
