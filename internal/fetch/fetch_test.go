// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

// --- mock source ---

type mockSource struct {
	name    string
	results []types.RawResult
	err     error
	delay   time.Duration
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) Fetch(ctx context.Context, _ *http.Client, _ types.FetchConfig) ([]types.RawResult, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.results, m.err
}

func testCfg() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig:   types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"},
		PerFeedLimit: 80,
		MaxTotal:     700,
	}
}

func raw(source, link string) types.RawResult {
	return types.RawResult{Source: source, Title: "Title " + link, Link: link}
}

func TestFetchAllJoinsInSourceOrder(t *testing.T) {
	// The slow source finishes last but is configured first; its results
	// must still lead the joined batch.
	sources := []Source{
		&mockSource{name: "slow", delay: 50 * time.Millisecond, results: []types.RawResult{raw("slow", "https://ex.com/1")}},
		&mockSource{name: "fast", results: []types.RawResult{raw("fast", "https://ex.com/2")}},
	}

	var buf bytes.Buffer
	out := FetchAll(context.Background(), http.DefaultClient, sources, testCfg(), &buf)

	if len(out.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(out.Results))
	}
	if out.Results[0].Source != "slow" || out.Results[1].Source != "fast" {
		t.Errorf("join order = [%s, %s], want configured order", out.Results[0].Source, out.Results[1].Source)
	}
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	sources := []Source{
		&mockSource{name: "broken", err: fmt.Errorf("connection refused")},
		&mockSource{name: "healthy", results: []types.RawResult{raw("healthy", "https://ex.com/1")}},
	}

	var buf bytes.Buffer
	out := FetchAll(context.Background(), http.DefaultClient, sources, testCfg(), &buf)

	if len(out.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(out.Results))
	}
	if len(out.SourceErrors) != 1 || !strings.Contains(out.SourceErrors[0], "broken") {
		t.Errorf("SourceErrors = %v", out.SourceErrors)
	}
	if !strings.Contains(buf.String(), "warning: source broken failed") {
		t.Errorf("missing failure warning in output: %q", buf.String())
	}
}

func TestFetchAllAllSourcesFail(t *testing.T) {
	sources := []Source{
		&mockSource{name: "a", err: fmt.Errorf("boom")},
		&mockSource{name: "b", err: fmt.Errorf("boom")},
	}

	var buf bytes.Buffer
	out := FetchAll(context.Background(), http.DefaultClient, sources, testCfg(), &buf)

	if len(out.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(out.Results))
	}
	if len(out.SourceErrors) != 2 {
		t.Errorf("len(SourceErrors) = %d, want 2", len(out.SourceErrors))
	}
}

func TestFetchAllPerSourceTimeout(t *testing.T) {
	cfg := testCfg()
	cfg.Timeout = 20 * time.Millisecond

	sources := []Source{
		&mockSource{name: "hung", delay: 5 * time.Second},
		&mockSource{name: "quick", results: []types.RawResult{raw("quick", "https://ex.com/1")}},
	}

	var buf bytes.Buffer
	start := time.Now()
	out := FetchAll(context.Background(), http.DefaultClient, sources, cfg, &buf)

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("a hung source blocked the run for %v", elapsed)
	}
	if len(out.Results) != 1 || out.Results[0].Source != "quick" {
		t.Errorf("Results = %v, want only the quick source", out.Results)
	}
	if len(out.SourceErrors) != 1 {
		t.Errorf("SourceErrors = %v, want the hung source reported", out.SourceErrors)
	}
}

func TestSourcesOrderAndComposition(t *testing.T) {
	withQuery := Sources("longevity OR aging", "")
	if len(withQuery) != 2+len(baseFeeds) {
		t.Fatalf("len(sources) = %d, want %d", len(withQuery), 2+len(baseFeeds))
	}
	if withQuery[0].Name() != "Google News" || withQuery[1].Name() != "PubMed" {
		t.Errorf("query sources must lead: [%s, %s]", withQuery[0].Name(), withQuery[1].Name())
	}

	withoutQuery := Sources("", "")
	if len(withoutQuery) != len(baseFeeds) {
		t.Errorf("len(sources) = %d without query, want %d", len(withoutQuery), len(baseFeeds))
	}
}
