// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch pulls raw results from the configured news and evidence
// sources. Sources are fetched concurrently and each is independently
// fallible: a slow or failing feed costs the run only its own results.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

// Source fetches raw results from one feed or search endpoint.
type Source interface {
	Name() string
	Fetch(ctx context.Context, client *http.Client, cfg types.FetchConfig) ([]types.RawResult, error)
}

// Output holds one run's joined batch and per-source failures.
type Output struct {
	Results      []types.RawResult
	SourceErrors []string
}

// FetchAll fans out over sources concurrently with a per-source timeout and
// joins the batches in configured source order, regardless of completion
// order. Source order is the deduplicator's tie-break, so the join must be
// deterministic. Failures become warnings on w and entries in SourceErrors;
// they never abort the run.
func FetchAll(ctx context.Context, client *http.Client, sources []Source, cfg types.FetchConfig, w io.Writer) Output {
	batches := make([][]types.RawResult, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, s := range sources {
		wg.Add(1)
		go func(i int, s Source) {
			defer wg.Done()
			sctx := ctx
			if cfg.Timeout > 0 {
				var cancel context.CancelFunc
				sctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
				defer cancel()
			}
			batches[i], errs[i] = s.Fetch(sctx, client, cfg)
		}(i, s)
	}
	wg.Wait()

	var out Output
	for i, s := range sources {
		if errs[i] != nil {
			msg := fmt.Sprintf("%s: %v", s.Name(), errs[i])
			out.SourceErrors = append(out.SourceErrors, msg)
			fmt.Fprintf(w, "warning: source %s failed: %v\n", s.Name(), errs[i])
			continue
		}
		fmt.Fprintf(w, "fetched %d from %s\n", len(batches[i]), s.Name())
		out.Results = append(out.Results, batches[i]...)
	}
	return out
}

// Sources builds the run's source list: the query-backed search feeds first
// (when a query is set), then the fixed base feeds. The order here is load
// bearing for dedup tie-breaks and must stay stable.
func Sources(query, ncbiAPIKey string) []Source {
	var sources []Source
	if query != "" {
		sources = append(sources,
			&GoogleNewsSource{Query: query},
			&PubMedSource{Query: query, APIKey: ncbiAPIKey},
		)
	}
	for _, f := range baseFeeds {
		sources = append(sources, &RSSSource{SourceName: f.name, URL: f.url})
	}
	return sources
}

// formatPublished renders a feed timestamp for the normalizer, preferring
// the parsed form so downstream parsing cannot disagree with the feed
// library's.
func formatPublished(parsed *time.Time, raw string) string {
	if parsed != nil {
		return parsed.UTC().Format(time.RFC3339)
	}
	return raw
}
