// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/universalbeat/evidence-engine/internal/archive"
	"github.com/universalbeat/evidence-engine/internal/catalog"
	"github.com/universalbeat/evidence-engine/internal/dedupe"
	"github.com/universalbeat/evidence-engine/internal/enrich"
	"github.com/universalbeat/evidence-engine/internal/fetch"
	"github.com/universalbeat/evidence-engine/internal/normalize"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

const (
	defaultQuery     = "longevity OR aging OR chronic disease treatment OR randomized trial"
	defaultTimeout   = 25 * time.Second
	defaultUserAgent = "evidence-engine/0.1"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the news pipeline and publish the JSON datasets",
	Long: `Build fetches the configured search feeds and base RSS sources, normalizes
and deduplicates the results into the archive, enriches thumbnails, and
publishes items.json, latest.json, and the monthly archive partitions.

With --build-catalog the catalog pipeline runs afterwards; --weekly-only
gates that to Sundays (UTC) so a daily cron rebuilds the catalog weekly.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("query", defaultQuery, "boolean search query for the news sources")
	buildCmd.Flags().String("output", "output", "base output directory")
	buildCmd.Flags().Duration("timeout", defaultTimeout, "per-source fetch timeout")
	buildCmd.Flags().Int("per-feed-limit", 80, "maximum entries taken from one feed")
	buildCmd.Flags().Int("max-total", 700, "maximum batch size after dedup")
	buildCmd.Flags().Int("thumb-budget", 220, "maximum thumbnail page lookups per run")
	buildCmd.Flags().Int("latest-limit", 25, "size of the bounded latest view")
	buildCmd.Flags().Bool("prefer-incoming", false, "let re-sighted records replace existing summary/image")
	buildCmd.Flags().Bool("build-catalog", false, "also build catalog.json after the news pipeline")
	buildCmd.Flags().Bool("weekly-only", false, "with --build-catalog, only build the catalog on Sunday UTC")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	outputDir, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	perFeedLimit, _ := cmd.Flags().GetInt("per-feed-limit")
	maxTotal, _ := cmd.Flags().GetInt("max-total")
	thumbBudget, _ := cmd.Flags().GetInt("thumb-budget")
	latestLimit, _ := cmd.Flags().GetInt("latest-limit")
	preferIncoming, _ := cmd.Flags().GetBool("prefer-incoming")
	buildCatalog, _ := cmd.Flags().GetBool("build-catalog")
	weeklyOnly, _ := cmd.Flags().GetBool("weekly-only")

	ctx := context.Background()
	now := time.Now().UTC()
	client := &http.Client{Timeout: timeout}

	policy := dedupe.KeepExisting
	if preferIncoming {
		policy = dedupe.PreferIncoming
	}

	fcfg := types.FetchConfig{
		HTTPConfig:   types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
		Query:        query,
		PerFeedLimit: perFeedLimit,
		MaxTotal:     maxTotal,
	}

	sources := fetch.Sources(query, secretDefault("ncbi-api-key", ""))
	out := fetch.FetchAll(ctx, client, sources, fcfg, os.Stdout)

	items, nsum := normalize.Batch(out.Results, now)
	if nsum.DateFallbacks > 0 {
		fmt.Fprintf(os.Stdout, "warning: %d record(s) had missing or unparsable dates, stamped with build time\n", nsum.DateFallbacks)
	}

	merged, removed := dedupe.Merge(items, policy)
	if maxTotal > 0 && len(merged) > maxTotal {
		merged = merged[:maxTotal]
	}
	fmt.Fprintf(os.Stdout, "normalized %d (%d rejected), merged to %d (%d duplicates)\n",
		nsum.Kept, nsum.Rejected, len(merged), removed)

	// Newest first so the thumbnail budget goes to fresh items.
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Date != merged[j].Date {
			return merged[i].Date > merged[j].Date
		}
		return merged[i].Link < merged[j].Link
	})

	ecfg := types.EnrichConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
		Budget:     thumbBudget,
	}
	enriched := enrich.Items(ctx, client, merged, ecfg, os.Stdout)
	fmt.Fprintf(os.Stdout, "enriched %d thumbnail(s)\n", enriched)

	store, err := archive.NewStore(types.ArchiveConfig{OutputDir: outputDir, LatestLimit: latestLimit})
	if err != nil {
		return err
	}
	defer store.Close()

	usum, err := store.Upsert(ctx, merged, policy, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "archive: %d new, %d enriched, %d unchanged\n",
		usum.Inserted, usum.Enriched, usum.Seen-usum.Enriched)

	info := archive.RunInfo{
		Query:         query,
		SourceErrors:  out.SourceErrors,
		Rejected:      nsum.Rejected,
		DateFallbacks: nsum.DateFallbacks,
	}
	if err := store.Publish(ctx, now, info, os.Stdout); err != nil {
		return err
	}

	if !buildCatalog {
		return nil
	}
	if weeklyOnly && now.Weekday() != time.Sunday {
		fmt.Fprintln(os.Stdout, "catalog: skipped (weekly-only; not Sunday UTC)")
		return nil
	}
	return buildAndPublishCatalog(ctx, client, "", outputDir, timeout)
}

// buildAndPublishCatalog is shared by build --build-catalog and the catalog
// subcommand.
func buildAndPublishCatalog(ctx context.Context, client *http.Client, sitesFile, outputDir string, timeout time.Duration) error {
	ccfg := types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
		SitesFile:  sitesFile,
		OutputDir:  outputDir,
	}

	sites := catalog.DefaultSites()
	if sitesFile != "" {
		loaded, err := catalog.LoadSites(sitesFile)
		if err != nil {
			return err
		}
		sites = loaded
	}

	cat := catalog.Build(ctx, client, sites, ccfg, os.Stdout)
	return catalog.Publish(cat, outputDir, os.Stdout)
}
