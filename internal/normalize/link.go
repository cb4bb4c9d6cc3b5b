// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"net/url"
	"strings"
)

// trackingParams lists query parameters that never change what a link
// points at and must not split identity.
var trackingParams = map[string]bool{
	"fbclid": true,
	"gclid":  true,
	"igshid": true,
	"mc_cid": true,
	"mc_eid": true,
}

// httpsHosts lists origins known to redirect plain http to https. Links to
// these hosts are canonicalized to https so the two schemes share identity.
var httpsHosts = map[string]bool{
	"news.google.com":         true,
	"pubmed.ncbi.nlm.nih.gov": true,
	"www.nih.gov":             true,
	"www.who.int":             true,
	"www.cdc.gov":             true,
	"www.nature.com":          true,
	"www.bmj.com":             true,
	"www.thelancet.com":       true,
	"www.sciencedaily.com":    true,
	"www.biorxiv.org":         true,
	"www.medrxiv.org":         true,
	"journals.plos.org":       true,
	"www.cochrane.org":        true,
}

// CanonicalLink reduces a URL to the item's identity: lowercased scheme and
// host, tracking parameters and fragment dropped, trailing slash dropped,
// https forced for hosts known to redirect. Query parameter order is
// preserved so canonicalization is stable.
func CanonicalLink(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parsing link: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	host := strings.ToLower(u.Host)
	if host == "" {
		return "", fmt.Errorf("link %q has no host", raw)
	}
	if scheme == "http" && httpsHosts[host] {
		scheme = "https"
	}

	path := strings.TrimSuffix(u.EscapedPath(), "/")

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	b.WriteString(path)
	if q := stripTracking(u.RawQuery); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	return b.String(), nil
}

// stripTracking removes utm_* and known click-tracking parameters from a raw
// query string, keeping the remaining parameters in their original order.
func stripTracking(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	var kept []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		key = strings.ToLower(key)
		if strings.HasPrefix(key, "utm_") || trackingParams[key] {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}

// Host returns the lowercased host of a URL, or "" when it cannot be parsed.
func Host(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
