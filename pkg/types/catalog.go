// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CatalogKind classifies a catalog entry as a program, expert, or institution.
// The three kinds are disjoint namespaces: the same URL may legitimately
// appear once per kind.
type CatalogKind string

const (
	KindProgram     CatalogKind = "program"
	KindExpert      CatalogKind = "expert"
	KindInstitution CatalogKind = "institution"
)

// CatalogEntry is one program, expert, or institution record. The shared
// shape is name/url/description/tags/location; Category, Specialty, and
// Focus are the per-kind variant fields and only one of them is set.
type CatalogEntry struct {
	Kind CatalogKind `json:"-" yaml:"kind"`

	Name        string   `json:"name" yaml:"name"`
	URL         string   `json:"url" yaml:"url"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`

	// Category is set for programs (e.g. "roadmap").
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Specialty is set for experts.
	Specialty string `json:"specialty,omitempty" yaml:"specialty,omitempty"`

	// Focus is set for institutions (e.g. "Longevity / Clinic / Biotech").
	Focus string `json:"focus,omitempty" yaml:"focus,omitempty"`
}

// Catalog is the published catalog.json shape: entries bucketed by kind.
type Catalog struct {
	Programs     []CatalogEntry `json:"programs"`
	Experts      []CatalogEntry `json:"experts"`
	Institutions []CatalogEntry `json:"institutions"`
}

// Add appends e to the bucket matching its kind. Unknown kinds go to
// institutions, the broadest bucket.
func (c *Catalog) Add(e CatalogEntry) {
	switch e.Kind {
	case KindProgram:
		c.Programs = append(c.Programs, e)
	case KindExpert:
		c.Experts = append(c.Experts, e)
	default:
		c.Institutions = append(c.Institutions, e)
	}
}

// Size returns the total number of entries across all three buckets.
func (c *Catalog) Size() int {
	return len(c.Programs) + len(c.Experts) + len(c.Institutions)
}
