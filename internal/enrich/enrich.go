// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich fills missing item thumbnails by scraping link targets for
// social-preview image metadata.
package enrich

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	"github.com/universalbeat/evidence-engine/internal/httputil"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

// maxPageBytes bounds how much of a page is read while hunting for an image.
const maxPageBytes = 2 << 20

// metaSelectors lists the preview-image meta tags, in preference order.
var metaSelectors = []string{
	`meta[property="og:image"]`,
	`meta[property="og:image:url"]`,
	`meta[name="twitter:image"]`,
}

// badSrcMarkers marks img sources that are never real thumbnails.
var badSrcMarkers = []string{"data:", "sprite", "pixel", "base64"}

// Items fills Image on items that lack one by looking up their pages, at
// most cfg.Budget lookups with cfg.Concurrency in flight. Items are visited
// in slice order so the budget favors the front of the batch (newest first
// once the batch is sorted). Lookup failures are warnings, not errors.
// Returns the number of items enriched.
func Items(ctx context.Context, client *http.Client, items []types.Item, cfg types.EnrichConfig, w io.Writer) int {
	budget := cfg.Budget
	if budget <= 0 {
		budget = 220
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	enriched := 0

	for i := range items {
		if budget <= 0 {
			break
		}
		if items[i].Image != "" {
			continue
		}
		budget--
		i := i
		g.Go(func() error {
			img, err := OGImage(gctx, client, items[i].Link, cfg.UserAgent)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(w, "warning: thumbnail lookup %s: %v\n", items[i].Link, err)
				return nil
			}
			if img != "" {
				items[i].Image = img
				enriched++
			}
			return nil
		})
	}
	g.Wait()
	return enriched
}

// OGImage fetches a page and returns its preview image URL: og:image,
// og:image:url, or twitter:image metadata, else the first plausible <img>.
// Returns "" with a nil error when the page has no usable image.
func OGImage(ctx context.Context, client *http.Client, pageURL, userAgent string) (string, error) {
	resp, err := httputil.Get(ctx, client, pageURL, userAgent)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}

	// Pages declare all sorts of encodings; decode to UTF-8 before parsing.
	enc, _, _ := charset.DetermineEncoding(data, resp.Header.Get("Content-Type"))
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}

	for _, sel := range metaSelectors {
		if v := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); v != "" {
			return resolveRef(pageURL, v), nil
		}
	}

	img := ""
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" {
			return true
		}
		for _, bad := range badSrcMarkers {
			if strings.Contains(src, bad) {
				return true
			}
		}
		img = resolveRef(pageURL, src)
		return false
	})
	return img, nil
}

// resolveRef resolves ref against base, returning ref unchanged when either
// side does not parse.
func resolveRef(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
