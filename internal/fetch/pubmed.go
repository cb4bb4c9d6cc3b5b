// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

// pubmedBase is the NCBI eutils RSS endpoint. Declared as a var so tests
// can substitute an httptest server.
var pubmedBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/erss.cgi"

// PubMedSource searches PubMed through the NCBI eutils RSS feed, newest
// first. An API key raises NCBI's rate limit but is optional.
type PubMedSource struct {
	Query  string
	APIKey string
}

// Name returns the source identifier.
func (s *PubMedSource) Name() string { return "PubMed" }

// Fetch queries the erss feed and returns results in feed order.
func (s *PubMedSource) Fetch(ctx context.Context, client *http.Client, cfg types.FetchConfig) ([]types.RawResult, error) {
	if s.Query == "" {
		return nil, fmt.Errorf("empty query")
	}
	feedURL := fmt.Sprintf("%s?db=pubmed&term=%s&sort=date", pubmedBase, url.QueryEscape(s.Query))
	if s.APIKey != "" {
		feedURL += "&api_key=" + url.QueryEscape(s.APIKey)
	}
	return fetchFeed(ctx, client, s.Name(), feedURL, cfg)
}
