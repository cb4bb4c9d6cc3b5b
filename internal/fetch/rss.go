// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/universalbeat/evidence-engine/internal/httputil"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

// baseFeeds is the fixed set of institutional and journal feeds fetched on
// every run, query or not.
var baseFeeds = []struct {
	name string
	url  string
}{
	{"NIH", "https://www.nih.gov/news-events/news-releases/rss.xml"},
	{"WHO", "https://www.who.int/feeds/entity/mediacentre/news/en/rss.xml"},
	{"CDC", "https://tools.cdc.gov/api/v2/resources/media/403372.rss"},
	{"Cochrane News", "https://www.cochrane.org/news-feed.xml"},
	{"Nature", "https://www.nature.com/nature.rss"},
	{"BMJ", "https://www.bmj.com/latest.xml"},
	{"Lancet", "https://www.thelancet.com/rssfeed/lancet_current.xml"},
	{"PLOS Medicine", "https://journals.plos.org/plosmedicine/feed/atom"},
	{"ScienceDaily Health", "https://www.sciencedaily.com/rss/health_medicine.xml"},
	{"ScienceDaily Top", "https://www.sciencedaily.com/rss/top.xml"},
	{"bioRxiv Latest", "https://www.biorxiv.org/rss/latest.xml"},
	{"medRxiv Latest", "https://www.medrxiv.org/rss/latest.xml"},
}

// RSSSource fetches one RSS or Atom feed at a fixed URL.
type RSSSource struct {
	SourceName string
	URL        string
}

// Name returns the feed's display name, which also becomes each result's
// Source field.
func (s *RSSSource) Name() string { return s.SourceName }

// Fetch downloads and parses the feed, honoring the per-feed entry limit.
func (s *RSSSource) Fetch(ctx context.Context, client *http.Client, cfg types.FetchConfig) ([]types.RawResult, error) {
	return fetchFeed(ctx, client, s.SourceName, s.URL, cfg)
}

// fetchFeed is the shared feed download path: one GET with retry, parsed
// with gofeed, mapped to raw results in feed order.
func fetchFeed(ctx context.Context, client *http.Client, name, url string, cfg types.FetchConfig) ([]types.RawResult, error) {
	resp, err := httputil.Get(ctx, client, url, cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	limit := cfg.PerFeedLimit
	if limit <= 0 {
		limit = 80
	}

	var results []types.RawResult
	for i, e := range feed.Items {
		if i >= limit {
			break
		}
		summary := e.Description
		if summary == "" {
			summary = e.Content
		}
		r := types.RawResult{
			Source:    name,
			Title:     e.Title,
			Link:      e.Link,
			Summary:   summary,
			Published: formatPublished(e.PublishedParsed, e.Published),
		}
		if r.Published == "" {
			r.Published = formatPublished(e.UpdatedParsed, e.Updated)
		}
		if e.Image != nil {
			r.Image = e.Image.URL
		}
		results = append(results, r)
	}
	return results, nil
}
