// Package roles holds the static job-role catalog and the role-insight
// enrichment step that cross-references an analysis against it.
package roles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed roles.json
var catalogData []byte

// Category groups roles that share a recommendation rule table.
type Category string

// The closed set of role categories.
const (
	CategoryTechnology Category = "technology"
	CategoryManagement Category = "management"
	CategoryDesign     Category = "design"
	CategoryMarketing  Category = "marketing"
	CategorySales      Category = "sales"
	CategoryAnalysis   Category = "analysis"
)

// Role is one catalog entry: a known job role and its commonly expected skills.
type Role struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	CommonSkills []string `json:"common_skills"`
}

// Catalog is process-wide read-only reference data. Load it once at startup;
// it is safe for unsynchronized concurrent reads afterwards.
type Catalog struct {
	roles   []Role
	byTitle map[string]int
	bySlug  map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var roles []Role
	if err := json.Unmarshal(catalogData, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog: %w", err)
	}

	c := &Catalog{
		roles:   roles,
		byTitle: make(map[string]int, len(roles)),
		bySlug:  make(map[string]int, len(roles)),
	}
	for i, role := range roles {
		c.byTitle[strings.ToLower(role.Title)] = i
		c.bySlug[role.ID] = i
	}
	return c, nil
}

// MustLoad parses the embedded catalog, panicking on failure. The catalog is
// compiled in, so failure here is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Find looks up a role by case-insensitive exact title match, or by the slug
// derived from the title. Returns false when the role is unknown.
func (c *Catalog) Find(title string) (*Role, bool) {
	key := strings.ToLower(strings.TrimSpace(title))
	if key == "" {
		return nil, false
	}
	if i, ok := c.byTitle[key]; ok {
		return &c.roles[i], true
	}
	if i, ok := c.bySlug[Slug(title)]; ok {
		return &c.roles[i], true
	}
	return nil, false
}

// Roles returns a copy of the catalog entries.
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	copy(out, c.roles)
	return out
}

// Slug lower-cases a title and joins its words with hyphens
// ("Data Scientist" -> "data-scientist").
func Slug(title string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(title)))
	return strings.Join(fields, "-")
}
