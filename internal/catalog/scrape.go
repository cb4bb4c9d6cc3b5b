// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/universalbeat/evidence-engine/internal/httputil"
	"github.com/universalbeat/evidence-engine/internal/normalize"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

// socialDomains are link targets that are never catalog entries.
var socialDomains = []string{
	"facebook.", "twitter.", "x.com", "instagram.", "linkedin.",
	"pinterest.", "reddit.", "youtube.",
}

// scrapeSite dispatches on the site's mode.
func scrapeSite(ctx context.Context, client *http.Client, site Site, cfg types.CatalogConfig) ([]types.CatalogEntry, error) {
	if site.Mode == ModeSingle {
		return scrapeSingle(site), nil
	}
	return scrapeOutlinks(ctx, client, site, cfg)
}

// scrapeSingle records the site itself as one entry.
func scrapeSingle(site Site) []types.CatalogEntry {
	name := site.Name
	if name == "" {
		name = bareDomain(site.URL)
	}
	return []types.CatalogEntry{{
		Kind:     site.Kind,
		Name:     name,
		URL:      site.URL,
		Location: site.Location,
		Tags:     site.Tags,
	}}
}

// scrapeOutlinks harvests external links from the site's content region.
// Same-domain navigation and social links are skipped; each distinct
// external target becomes one entry named after its anchor text.
func scrapeOutlinks(ctx context.Context, client *http.Client, site Site, cfg types.CatalogConfig) ([]types.CatalogEntry, error) {
	resp, err := httputil.Get(ctx, client, site.URL, cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	container := doc.Selection
	for _, sel := range strings.Split(site.Container, ",") {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		if node := doc.Find(sel).First(); node.Length() > 0 {
			container = node
			break
		}
	}

	pageDomain := normalize.Host(site.URL)
	seen := make(map[string]bool)
	var entries []types.CatalogEntry

	container.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := resolveHref(site.URL, a.AttrOr("href", ""))
		if href == "" {
			return
		}
		domain := normalize.Host(href)
		if domain == "" || domain == pageDomain {
			return
		}
		for _, social := range socialDomains {
			if strings.Contains(domain, social) {
				return
			}
		}
		key := domain + "|" + strings.SplitN(href, "#", 2)[0]
		if seen[key] {
			return
		}
		seen[key] = true

		entries = append(entries, types.CatalogEntry{
			Kind:        site.Kind,
			Name:        nameFromAnchor(a, href),
			URL:         href,
			Description: "External resource listed by " + site.Name,
			Tags:        site.Tags,
		})
	})
	return entries, nil
}

// nameFromAnchor prefers the anchor text; bare-URL anchors fall back to the
// target's domain.
func nameFromAnchor(a *goquery.Selection, href string) string {
	txt := strings.Join(strings.Fields(a.Text()), " ")
	if len(txt) > 120 {
		txt = txt[:120]
	}
	lower := strings.ToLower(txt)
	if txt != "" && !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return txt
	}
	if d := bareDomain(href); d != "" {
		return d
	}
	return href
}

// bareDomain returns the host without a www. prefix.
func bareDomain(raw string) string {
	return strings.TrimPrefix(normalize.Host(raw), "www.")
}

func resolveHref(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(href)
	if err != nil {
		return ""
	}
	u := b.ResolveReference(r)
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
