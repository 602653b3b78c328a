package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babysteps/internal/domain"
)

func TestNew_RejectsEmptyAndDuplicateIDs(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]domain.Document{{Title: "No ID"}})
	assert.Error(t, err)

	_, err = New([]domain.Document{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)
}

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]domain.Document{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	require.NoError(t, err)

	docs := c.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestBuiltin(t *testing.T) {
	c := Builtin()
	require.Greater(t, c.Len(), 0)

	valid := map[domain.Category]bool{
		domain.CategoryDevelopment: true,
		domain.CategorySleep:       true,
		domain.CategoryFeeding:     true,
		domain.CategorySafety:      true,
		domain.CategoryLanguage:    true,
		domain.CategoryHealth:      true,
	}
	for _, d := range c.Documents() {
		assert.True(t, valid[d.Category], "document %s has unknown category %s", d.ID, d.Category)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Content)
		assert.NotEmpty(t, d.URL)
		if d.AgeRange != "" {
			// Every configured range must parse for some plausible age.
			matched := false
			for age := 0; age <= 36; age++ {
				if MatchesAge(d.AgeRange, age) {
					matched = true
					break
				}
			}
			assert.True(t, matched, "document %s has unusable age range %q", d.ID, d.AgeRange)
		}
	}
}

func TestBuiltin_HasDevelopmentDocsForFallback(t *testing.T) {
	devDocs := Builtin().ByCategory(domain.CategoryDevelopment)
	assert.GreaterOrEqual(t, len(devDocs), 4)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	data := `documents:
  - id: doc-1
    title: Sample Document
    content: Some body text about sleep routines.
    url: https://example.org/doc-1
    category: sleep
    age_range: 0+ months
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, domain.CategorySleep, c.Documents()[0].Category)
	assert.Equal(t, "0+ months", c.Documents()[0].AgeRange)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
