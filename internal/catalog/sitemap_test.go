// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universalbeat/evidence-engine/pkg/types"
)

func writeSiteMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSites(t *testing.T) {
	path := writeSiteMap(t, `sites:
  - name: Example roadmap
    url: https://example.org/roadmap
    mode: outlinks
    kind: program
    container: "article, main"
    tags: [roadmap, programs]
  - name: Example clinic
    url: https://clinic.example.org/
    mode: single
    kind: institution
    location: Zurich, Switzerland
`)

	sites, err := LoadSites(path)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, "Example roadmap", sites[0].Name)
	assert.Equal(t, ModeOutlinks, sites[0].Mode)
	assert.Equal(t, types.KindProgram, sites[0].Kind)
	assert.Equal(t, "article, main", sites[0].Container)
	assert.Equal(t, []string{"roadmap", "programs"}, sites[0].Tags)

	assert.Equal(t, ModeSingle, sites[1].Mode)
	assert.Equal(t, types.KindInstitution, sites[1].Kind)
	assert.Equal(t, "Zurich, Switzerland", sites[1].Location)
}

func TestLoadSitesRejectsBadMaps(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty list", "sites: []\n"},
		{"missing url", "sites:\n  - name: x\n    mode: single\n    kind: expert\n"},
		{"unknown mode", "sites:\n  - url: https://example.org\n    mode: crawl\n    kind: expert\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSites(writeSiteMap(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadSitesMissingFile(t *testing.T) {
	_, err := LoadSites(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultSitesAreValid(t *testing.T) {
	sites := DefaultSites()
	require.NotEmpty(t, sites)
	for _, s := range sites {
		assert.NotEmpty(t, s.URL)
		assert.Contains(t, []ScrapeMode{ModeOutlinks, ModeSingle}, s.Mode)
		assert.NotEmpty(t, s.Kind)
	}
}
