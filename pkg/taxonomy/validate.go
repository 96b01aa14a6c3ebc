package taxonomy

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// PhraseGroup is the capture group every pattern must define.
const PhraseGroup = "phrase"

var reWordCode = regexp.MustCompile(`^[a-z0-9]+$`)

// Validate reports configuration defects. All problems are joined into one
// error so a broken file can be fixed in a single pass.
func Validate(t *Taxonomy) error {
	if t == nil {
		return errors.New("taxonomy is nil")
	}
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(t.Name) == "" {
		add("name must be set")
	}
	if strings.TrimSpace(t.Fallback) == "" {
		add("fallback must be set")
	}
	if len(t.Categories) == 0 {
		add("at least one category must be defined")
	}

	names := make(map[string]struct{}, len(t.Categories)+1)
	for _, c := range t.Categories {
		if strings.TrimSpace(c.Name) == "" {
			add("category name must be set")
			continue
		}
		if _, dup := names[c.Name]; dup {
			add("category %q defined twice", c.Name)
		}
		names[c.Name] = struct{}{}
		if len(c.Terms) == 0 {
			add("category %q has no terms", c.Name)
		}
	}
	if _, clash := names[t.Fallback]; clash {
		add("fallback %q collides with a category", t.Fallback)
	}
	names[t.Fallback] = struct{}{}

	for _, conflict := range t.conflicts {
		add("inconsistent term casing: %s", conflict)
	}

	ranked := make(map[string]struct{}, len(t.Ranking))
	for _, r := range t.Ranking {
		if _, ok := names[r]; !ok {
			add("ranking references unknown category %q", r)
		}
		if _, dup := ranked[r]; dup {
			add("ranking lists %q twice", r)
		}
		ranked[r] = struct{}{}
	}
	for n := range names {
		if _, ok := ranked[n]; !ok {
			add("ranking is missing category %q", n)
		}
	}

	if t.TopPerCategory <= 0 {
		add("top_per_category must be positive")
	}
	if t.TopLimit <= 0 {
		add("top_limit must be positive")
	}
	if len(t.Separators) == 0 {
		add("separators must not be empty")
	}
	for _, h := range t.SectionHeaders {
		if strings.TrimSpace(h) == "" || h != strings.ToLower(h) {
			add("section header %q must be non-empty lowercase", h)
		}
	}

	for _, p := range t.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			add("pattern %q: %v", p, err)
			continue
		}
		if re.SubexpIndex(PhraseGroup) < 0 {
			add("pattern %q has no (?P<%s>...) group", p, PhraseGroup)
		}
	}

	codes := make(map[string]struct{}, len(t.Abbreviations))
	for _, a := range t.Abbreviations {
		if !reWordCode.MatchString(a.Code) {
			add("abbreviation code %q must be a lowercase word", a.Code)
		}
		if _, dup := codes[a.Code]; dup {
			add("abbreviation %q mapped twice", a.Code)
		}
		codes[a.Code] = struct{}{}
		if canonical, ok := t.Lookup(a.Name); !ok {
			add("abbreviation %q targets %q which is not in the vocabulary", a.Code, a.Name)
		} else if canonical != a.Name {
			add("abbreviation %q targets %q but the vocabulary spells it %q", a.Code, a.Name, canonical)
		}
	}

	if len(t.Organizations) > 0 && t.DetailWindow <= 0 {
		add("detail_window must be positive when organizations are set")
	}

	return errors.Join(errs...)
}
