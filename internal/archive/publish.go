// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/universalbeat/evidence-engine/internal/facet"
	"github.com/universalbeat/evidence-engine/internal/normalize"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

// RunInfo describes the run for the logs.txt report written next to the
// datasets.
type RunInfo struct {
	Query         string
	SourceErrors  []string
	Rejected      int
	DateFallbacks int
}

// monthIndex is the published archive/index.json shape.
type monthIndex struct {
	Months    []string `json:"months"`
	Generated string   `json:"generated"`
}

// Publish writes the consumable datasets from the archive: the full
// items.json (newest first, facets and recency recomputed against now),
// the bounded latest.json view, one archive/<YYYY-MM>.json per month plus
// archive/index.json, and the logs.txt run report. An empty archive still
// publishes valid, empty datasets. All writes are atomic so a consumer
// never sees a half-written file.
func (s *Store) Publish(ctx context.Context, now time.Time, info RunInfo, w io.Writer) error {
	dDir := filepath.Join(s.outputDir, dataDir)
	aDir := filepath.Join(s.outputDir, archiveDir)
	for _, dir := range []string{dDir, aDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	all, err := s.All(ctx)
	if err != nil {
		return err
	}
	derive(all, now)
	if err := WriteJSON(filepath.Join(dDir, "items.json"), sliceOrEmpty(all)); err != nil {
		return err
	}

	latest := all
	if len(latest) > s.latestLimit {
		latest = latest[:s.latestLimit]
	}
	if err := WriteJSON(filepath.Join(dDir, "latest.json"), sliceOrEmpty(latest)); err != nil {
		return err
	}

	months, err := s.Months(ctx)
	if err != nil {
		return err
	}
	for _, m := range months {
		monthly, err := s.ByMonth(ctx, m)
		if err != nil {
			return err
		}
		derive(monthly, now)
		if err := WriteJSON(filepath.Join(aDir, m+".json"), sliceOrEmpty(monthly)); err != nil {
			return err
		}
	}
	idx := monthIndex{Months: months, Generated: now.UTC().Format(normalize.DateFormat)}
	if idx.Months == nil {
		idx.Months = []string{}
	}
	if err := WriteJSON(filepath.Join(aDir, "index.json"), idx); err != nil {
		return err
	}

	if err := s.ensureCatalogPlaceholder(dDir); err != nil {
		return err
	}
	if err := writeRunLog(filepath.Join(dDir, "logs.txt"), now, info, len(all)); err != nil {
		return err
	}

	fmt.Fprintf(w, "published %d items (%d months) to %s\n", len(all), len(months), s.outputDir)
	return nil
}

// derive recomputes facet labels and the recency flag. Neither is stored;
// they are properties of the build, not of the archive.
func derive(items []types.Item, now time.Time) {
	for i := range items {
		facet.Apply(&items[i], now)
	}
}

// sliceOrEmpty keeps empty datasets rendering as [] rather than null.
func sliceOrEmpty(items []types.Item) []types.Item {
	if items == nil {
		return []types.Item{}
	}
	return items
}

// ensureCatalogPlaceholder writes an empty catalog.json if none exists so
// the front end's catalog fetch never 404s before the first catalog build.
func (s *Store) ensureCatalogPlaceholder(dir string) error {
	path := filepath.Join(dir, "catalog.json")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	empty := types.Catalog{
		Programs:     []types.CatalogEntry{},
		Experts:      []types.CatalogEntry{},
		Institutions: []types.CatalogEntry{},
	}
	return WriteJSON(path, empty)
}

func writeRunLog(path string, now time.Time, info RunInfo, count int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}
	defer f.Close()

	query := info.Query
	if query == "" {
		query = "(none)"
	}
	fmt.Fprintf(f, "Generated: %s UTC\n", now.UTC().Format("2006-01-02 15:04"))
	fmt.Fprintf(f, "Query: %s\n", query)
	fmt.Fprintf(f, "Items: %d\n", count)
	fmt.Fprintf(f, "Rejected records: %d\n", info.Rejected)
	fmt.Fprintf(f, "Date fallbacks: %d\n", info.DateFallbacks)
	for _, e := range info.SourceErrors {
		fmt.Fprintf(f, "Source error: %s\n", e)
	}
	return nil
}

// WriteJSON marshals v indented and writes it to path atomically: the data
// goes to a temp file in the same directory which is renamed over the
// target, so readers always see either the old or the new complete file.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
