package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesEmbeddedCatalog(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(catalog.Roles()), 12)

	for _, role := range catalog.Roles() {
		assert.NotEmpty(t, role.ID)
		assert.NotEmpty(t, role.Title)
		assert.NotEmpty(t, role.Category)
		assert.NotEmpty(t, role.CommonSkills, "role %s has no skills", role.ID)
	}
}

func TestCatalog_Find(t *testing.T) {
	catalog := MustLoad()

	tests := []struct {
		name   string
		query  string
		wantID string
		found  bool
	}{
		{"exact title", "Data Scientist", "data-scientist", true},
		{"lowercase title", "data scientist", "data-scientist", true},
		{"uppercase title", "DATA SCIENTIST", "data-scientist", true},
		{"padded title", "  Software Engineer  ", "software-engineer", true},
		{"slug form", "data-scientist", "data-scientist", true},
		{"unknown role", "Underwater Basket Weaver", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := catalog.Find(tt.query)
			if !tt.found && tt.wantID == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, role.ID)
		})
	}
}

func TestCatalog_RolesReturnsCopy(t *testing.T) {
	catalog := MustLoad()

	first := catalog.Roles()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", catalog.Roles()[0].Title)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Data Scientist", "data-scientist"},
		{"data scientist", "data-scientist"},
		{"  Product   Manager  ", "product-manager"},
		{"UX/UI Designer", "ux/ui-designer"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.input), "input %q", tt.input)
	}
}
