package taxonomy

import (
	"fmt"
	"strings"
)

// Category is a named, ordered subset of the vocabulary.
type Category struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`

	set map[string]struct{}
}

// Contains reports whether term belongs to the category, ignoring case.
func (c Category) Contains(term string) bool {
	_, ok := c.set[strings.ToLower(term)]
	return ok
}

// Abbreviation maps a short code to exactly one canonical certification name.
// The mapping is a deliberate simplification: a code shared by several real
// certifications resolves to the single listed Name.
type Abbreviation struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Taxonomy is a vocabulary plus the ordered configuration that drives
// extraction, categorization and summary ranking. It is immutable once
// returned by Parse or Load and safe for concurrent reads.
type Taxonomy struct {
	Name       string     `yaml:"name"`
	Fallback   string     `yaml:"fallback"`
	Categories []Category `yaml:"categories"`

	// Ranking is the order used when building the top-terms summary. It lists
	// every category plus the fallback.
	Ranking        []string `yaml:"ranking"`
	TopPerCategory int      `yaml:"top_per_category"`
	TopLimit       int      `yaml:"top_limit"`

	SectionHeaders []string `yaml:"section_headers"`
	Separators     []string `yaml:"separators"`
	Patterns       []string `yaml:"patterns"`

	Abbreviations []Abbreviation `yaml:"abbreviations"`
	Organizations []string       `yaml:"organizations"`
	DetailWindow  int            `yaml:"detail_window"`

	terms     []string
	index     map[string]int
	conflicts []string
}

// Terms returns every distinct vocabulary term in declaration order.
func (t *Taxonomy) Terms() []string {
	return append([]string(nil), t.terms...)
}

// Lookup resolves s to its canonical display form, ignoring case.
func (t *Taxonomy) Lookup(s string) (string, bool) {
	i, ok := t.index[strings.ToLower(s)]
	if !ok {
		return "", false
	}
	return t.terms[i], true
}

// Position returns the declaration index of term, or -1 when it is unknown.
func (t *Taxonomy) Position(term string) int {
	if i, ok := t.index[strings.ToLower(term)]; ok {
		return i
	}
	return -1
}

// CategoryNames lists category names in classification order, fallback last.
func (t *Taxonomy) CategoryNames() []string {
	out := make([]string, 0, len(t.Categories)+1)
	for _, c := range t.Categories {
		out = append(out, c.Name)
	}
	return append(out, t.Fallback)
}

// build fills the lookup tables. Casing conflicts are recorded for Validate.
func (t *Taxonomy) build() {
	t.terms = t.terms[:0]
	t.index = make(map[string]int)
	t.conflicts = nil
	for i := range t.Categories {
		c := &t.Categories[i]
		c.set = make(map[string]struct{}, len(c.Terms))
		deduped := c.Terms[:0]
		for _, term := range c.Terms {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			low := strings.ToLower(term)
			if _, dup := c.set[low]; dup {
				continue
			}
			c.set[low] = struct{}{}
			deduped = append(deduped, term)
			if j, seen := t.index[low]; seen {
				if t.terms[j] != term {
					t.conflicts = append(t.conflicts, fmt.Sprintf("%q in %s vs %q", term, c.Name, t.terms[j]))
				}
				continue
			}
			t.index[low] = len(t.terms)
			t.terms = append(t.terms, term)
		}
		c.Terms = deduped
	}
}
