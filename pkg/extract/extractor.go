package extract

import (
	"strings"

	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

// Result is the outcome of one extraction run.
type Result struct {
	Found       []string
	Categorized Categorized
}

// Extractor runs the strategies derived from one taxonomy. It holds only
// compiled, read-only state and may be shared across goroutines.
type Extractor struct {
	tax        *taxonomy.Taxonomy
	strategies []Strategy
	// lowercase code -> canonical name; applied after the strategy union
	collapse map[string]string
}

// New compiles the strategies for t: direct, section and pattern always, and
// abbreviation when t defines any codes.
func New(t *taxonomy.Taxonomy) *Extractor {
	strategies := []Strategy{
		newDirectStrategy(t),
		newSectionStrategy(t, t.SectionHeaders, t.Separators),
		newPatternStrategy(t, t.Patterns, taxonomy.PhraseGroup),
	}
	collapse := make(map[string]string, len(t.Abbreviations))
	if len(t.Abbreviations) > 0 {
		strategies = append(strategies, newAbbreviationStrategy(t.Abbreviations))
		for _, a := range t.Abbreviations {
			collapse[a.Code] = a.Name
		}
	}
	return &Extractor{tax: t, strategies: strategies, collapse: collapse}
}

// Taxonomy returns the taxonomy the extractor was built from.
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// Strategies lists the strategy names in run order.
func (e *Extractor) Strategies() []string {
	out := make([]string, len(e.strategies))
	for i, s := range e.strategies {
		out[i] = s.Name()
	}
	return out
}

// Extract runs every strategy and categorizes the union. text is expected to
// be normalized with nlp.NormalizeText already; blank text yields an empty
// result.
func (e *Extractor) Extract(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Found: []string{}, Categorized: Categorized{}}
	}

	in := NewInput(text)
	found := NewTermSet()
	for _, s := range e.strategies {
		s.Find(in, found)
	}

	categorized := Categorize(e.tax, e.collapsed(found))
	ordered := make([]string, 0, found.Len())
	for _, b := range categorized {
		ordered = append(ordered, b.Terms...)
	}
	return Result{Found: ordered, Categorized: categorized}
}

// collapsed replaces terms that are themselves abbreviation codes ("PMP",
// "CISSP") with the name the code maps to. A resume mentioning only "PMP"
// therefore counts one certification, "Project Management Professional",
// not two entries for the code and the expanded name.
func (e *Extractor) collapsed(found *TermSet) []string {
	if len(e.collapse) == 0 {
		return found.Slice()
	}
	out := NewTermSet()
	for _, term := range found.Slice() {
		if name, ok := e.collapse[strings.ToLower(term)]; ok {
			term = name
		}
		out.Add(term)
	}
	return out.Slice()
}

// Summarize builds the summary of a categorized result under this extractor's
// ranking.
func (e *Extractor) Summarize(c Categorized) Summary {
	return Summarize(e.tax, c)
}
