package certification

import (
	"regexp"
	"strings"

	"github.com/py2k5/resume-analyzer/pkg/nlp"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

// First alternative that matches at the leftmost position wins.
var reDate = regexp.MustCompile(`\d{4}|\d{1,2}/\d{1,2}/\d{4}|\d{1,2}-\d{1,2}-\d{4}`)

// Enricher attaches a date and an issuing organization to each found
// certification by looking at the text around its first mention.
type Enricher struct {
	window        int
	organizations []string
	// canonical name (lowercase) -> case-insensitive literal pattern
	names map[string]*regexp.Regexp
	// canonical name (lowercase) -> whole-word patterns of its codes
	codes map[string][]*regexp.Regexp
}

// NewEnricher reads the window size, organization list and abbreviation
// table from the certifications taxonomy and compiles a locator per term.
func NewEnricher(tax *taxonomy.Taxonomy) *Enricher {
	terms := tax.Terms()
	e := &Enricher{
		window:        tax.DetailWindow,
		organizations: append([]string(nil), tax.Organizations...),
		names:         make(map[string]*regexp.Regexp, len(terms)),
		codes:         make(map[string][]*regexp.Regexp),
	}
	for _, term := range terms {
		e.names[strings.ToLower(term)] = nlp.FoldPattern(term)
	}
	for _, a := range tax.Abbreviations {
		key := strings.ToLower(a.Name)
		e.codes[key] = append(e.codes[key], nlp.WordPattern(a.Code))
	}
	return e
}

// Enrich returns one Detail per certification, in the given order. text must
// be the normalized original text, not the lowercased copy.
func (e *Enricher) Enrich(text string, certifications []string) []Detail {
	details := make([]Detail, 0, len(certifications))
	for _, cert := range certifications {
		d := Detail{Certification: cert}
		if start, length := e.locate(text, cert); start >= 0 {
			ctx := nlp.RuneWindow(text, start, length, e.window)
			d.Date = reDate.FindString(ctx)
			d.IssuingOrganization = e.organization(ctx)
		}
		details = append(details, d)
	}
	return details
}

// locate finds the full name first and falls back to a code that maps to it.
func (e *Enricher) locate(text, cert string) (int, int) {
	key := strings.ToLower(cert)
	name, ok := e.names[key]
	if !ok {
		name = nlp.FoldPattern(cert)
	}
	if loc := name.FindStringIndex(text); loc != nil {
		return loc[0], loc[1] - loc[0]
	}
	for _, re := range e.codes[key] {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc[0], loc[1] - loc[0]
		}
	}
	return -1, 0
}

func (e *Enricher) organization(ctx string) string {
	lower := strings.ToLower(ctx)
	for _, org := range e.organizations {
		if strings.Contains(lower, strings.ToLower(org)) {
			return org
		}
	}
	return ""
}
