// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Gut microbiome study published</title>
      <link>https://example.org/microbiome</link>
      <description>A randomized controlled trial on probiotics.</description>
      <pubDate>Wed, 10 Jan 2024 08:30:00 GMT</pubDate>
    </item>
    <item>
      <title>No summary entry</title>
      <link>https://example.org/bare</link>
      <pubDate>Tue, 09 Jan 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Third entry</title>
      <link>https://example.org/third</link>
      <description>Trimmed by the per-feed limit in one test below.</description>
    </item>
  </channel>
</rss>`

func rssServer(t *testing.T) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestFetchFeed_MapsEntries(t *testing.T) {
	srv, _ := rssServer(t)

	results, err := fetchFeed(context.Background(), srv.Client(), "Test Feed", srv.URL, testCfg())
	require.NoError(t, err)
	require.Len(t, results, 3)

	first := results[0]
	assert.Equal(t, "Test Feed", first.Source)
	assert.Equal(t, "Gut microbiome study published", first.Title)
	assert.Equal(t, "https://example.org/microbiome", first.Link)
	assert.Equal(t, "A randomized controlled trial on probiotics.", first.Summary)
	// gofeed parses pubDate; formatPublished renders it as RFC3339 UTC.
	assert.Equal(t, "2024-01-10T08:30:00Z", first.Published)

	assert.Empty(t, results[1].Summary)
	assert.Empty(t, results[2].Published)
}

func TestFetchFeed_HonorsPerFeedLimit(t *testing.T) {
	srv, _ := rssServer(t)

	cfg := testCfg()
	cfg.PerFeedLimit = 2
	results, err := fetchFeed(context.Background(), srv.Client(), "Test Feed", srv.URL, cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "https://example.org/microbiome", results[0].Link)
	assert.Equal(t, "https://example.org/bare", results[1].Link)
}

func TestFetchFeed_SetsUserAgent(t *testing.T) {
	srv, captured := rssServer(t)

	_, err := fetchFeed(context.Background(), srv.Client(), "Test Feed", srv.URL, testCfg())
	require.NoError(t, err)
	assert.Equal(t, "test/0.1", captured.Header.Get("User-Agent"))
}

func TestFetchFeed_BadPayloadIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	_, err := fetchFeed(context.Background(), srv.Client(), "Broken", srv.URL, testCfg())
	assert.Error(t, err)
}

func TestGoogleNewsSource_QueryParameters(t *testing.T) {
	srv, captured := rssServer(t)

	old := googleNewsBase
	googleNewsBase = srv.URL
	defer func() { googleNewsBase = old }()

	s := &GoogleNewsSource{Query: "longevity OR aging"}
	results, err := s.Fetch(context.Background(), srv.Client(), testCfg())
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "Google News", results[0].Source)

	q := captured.URL.Query()
	assert.Equal(t, "longevity OR aging", q.Get("q"))
	assert.Equal(t, "en-IN", q.Get("hl"))
	assert.Equal(t, "IN", q.Get("gl"))
	assert.Equal(t, "IN:en", q.Get("ceid"))
}

func TestGoogleNewsSource_EmptyQuery(t *testing.T) {
	s := &GoogleNewsSource{}
	_, err := s.Fetch(context.Background(), http.DefaultClient, testCfg())
	assert.Error(t, err)
}

func TestPubMedSource_QueryParameters(t *testing.T) {
	srv, captured := rssServer(t)

	old := pubmedBase
	pubmedBase = srv.URL
	defer func() { pubmedBase = old }()

	s := &PubMedSource{Query: "chronic disease treatment", APIKey: "k123"}
	results, err := s.Fetch(context.Background(), srv.Client(), testCfg())
	require.NoError(t, err)
	assert.Equal(t, "PubMed", results[0].Source)

	q := captured.URL.Query()
	assert.Equal(t, "pubmed", q.Get("db"))
	assert.Equal(t, "chronic disease treatment", q.Get("term"))
	assert.Equal(t, "date", q.Get("sort"))
	assert.Equal(t, "k123", q.Get("api_key"))
}

func TestPubMedSource_OmitsAPIKeyWhenUnset(t *testing.T) {
	srv, captured := rssServer(t)

	old := pubmedBase
	pubmedBase = srv.URL
	defer func() { pubmedBase = old }()

	s := &PubMedSource{Query: "aging"}
	_, err := s.Fetch(context.Background(), srv.Client(), testCfg())
	require.NoError(t, err)
	assert.False(t, captured.URL.Query().Has("api_key"))
}
