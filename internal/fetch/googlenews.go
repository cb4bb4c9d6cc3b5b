// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

// googleNewsBase is the Google News RSS search endpoint. Declared as a var
// so tests can substitute an httptest server.
var googleNewsBase = "https://news.google.com/rss/search"

// GoogleNewsSource searches Google News via its RSS search feed with the
// run's boolean query.
type GoogleNewsSource struct {
	Query string

	// Lang is the hl parameter (default "en-IN").
	Lang string
}

// Name returns the source identifier.
func (s *GoogleNewsSource) Name() string { return "Google News" }

// Fetch queries the RSS search feed and returns results in feed order.
func (s *GoogleNewsSource) Fetch(ctx context.Context, client *http.Client, cfg types.FetchConfig) ([]types.RawResult, error) {
	if s.Query == "" {
		return nil, fmt.Errorf("empty query")
	}
	lang := s.Lang
	if lang == "" {
		lang = "en-IN"
	}
	region := "IN"
	feedURL := fmt.Sprintf("%s?q=%s&hl=%s&gl=%s&ceid=%s:%s",
		googleNewsBase, url.QueryEscape(s.Query), lang, region, region,
		strings.SplitN(lang, "-", 2)[0])

	return fetchFeed(ctx, client, s.Name(), feedURL, cfg)
}
