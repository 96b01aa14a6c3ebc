package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal = `
name: demo
fallback: misc
categories:
  - name: langs
    terms: [Go, Python, go]
  - name: tools
    terms: [Docker, Python]
ranking: [tools, langs, misc]
top_per_category: 2
top_limit: 5
section_headers: [skills]
separators: [","]
patterns: ['know\s+(?P<phrase>\w+)']
abbreviations:
  - {code: dk, name: Docker}
`

func TestDefaultTaxonomiesAreValid(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "skills", set.Skills.Name)
	assert.Equal(t, "other", set.Skills.CategoryNames()[len(set.Skills.CategoryNames())-1])
	assert.Empty(t, set.Skills.Abbreviations)

	assert.Equal(t, "certifications", set.Certifications.Name)
	assert.Equal(t, "cloud_certifications", set.Certifications.Categories[0].Name)
	assert.NotEmpty(t, set.Certifications.Abbreviations)
	assert.Equal(t, 200, set.Certifications.DetailWindow)
}

func TestParseBuildsLookup(t *testing.T) {
	tax, err := Parse([]byte(minimal))
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Python", "Docker"}, tax.Terms())
	assert.Equal(t, []string{"Go", "Python"}, tax.Categories[0].Terms)

	term, ok := tax.Lookup("PYTHON")
	assert.True(t, ok)
	assert.Equal(t, "Python", term)

	assert.Equal(t, 2, tax.Position("docker"))
	assert.Equal(t, -1, tax.Position("rust"))
	assert.True(t, tax.Categories[1].Contains("python"))
	assert.Equal(t, []string{"langs", "tools", "misc"}, tax.CategoryNames())
}

func TestValidateRejectsDefects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Taxonomy)
		message string
	}{
		{"ranking misses fallback", func(t *Taxonomy) { t.Ranking = []string{"tools", "langs"} }, `missing category "misc"`},
		{"ranking unknown", func(t *Taxonomy) { t.Ranking = append(t.Ranking, "nope") }, `unknown category "nope"`},
		{"cap", func(t *Taxonomy) { t.TopPerCategory = 0 }, "top_per_category"},
		{"pattern group", func(t *Taxonomy) { t.Patterns = []string{`know\s+(\w+)`} }, "no (?P<phrase>...) group"},
		{"bad regexp", func(t *Taxonomy) { t.Patterns = []string{`(`} }, "pattern"},
		{"abbreviation target", func(t *Taxonomy) { t.Abbreviations[0].Name = "Podman" }, "not in the vocabulary"},
		{"abbreviation casing", func(t *Taxonomy) { t.Abbreviations[0].Name = "docker" }, "spells it"},
		{"uppercase header", func(t *Taxonomy) { t.SectionHeaders = []string{"Skills"} }, "lowercase"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tax, err := Parse([]byte(minimal))
			require.NoError(t, err)
			tc.mutate(tax)
			err = Validate(tax)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestParseRejectsCasingConflict(t *testing.T) {
	doc := `
name: demo
fallback: misc
categories:
  - {name: a, terms: [GitHub]}
  - {name: b, terms: [Github]}
ranking: [a, b, misc]
top_per_category: 1
top_limit: 1
separators: [","]
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent term casing")
}

func TestLoadOverridesFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SkillsFile), []byte(minimal), 0o600))

	set, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "demo", set.Skills.Name)
	assert.Equal(t, "certifications", set.Certifications.Name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, CertificationsFile), []byte("name: [broken"), 0o600))
	_, err = Load(dir)
	require.Error(t, err)
}
