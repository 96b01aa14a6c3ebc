package extract

import (
	"regexp"
	"strings"

	"github.com/py2k5/resume-analyzer/pkg/nlp"
)

type directTerm struct {
	vocabTerm
	word *regexp.Regexp // nil for multi-word terms
}

// directStrategy looks every vocabulary term up in the lowercased text.
// Multi-word terms use plain containment; single words need word boundaries.
type directStrategy struct {
	terms []directTerm
}

func newDirectStrategy(v vocabulary) *directStrategy {
	base := lowered(v)
	terms := make([]directTerm, len(base))
	for i, t := range base {
		terms[i] = directTerm{vocabTerm: t}
		if !nlp.IsMultiWord(t.lower) {
			terms[i].word = nlp.WordPattern(t.lower)
		}
	}
	return &directStrategy{terms: terms}
}

func (s *directStrategy) Name() string { return "direct" }

func (s *directStrategy) Find(in Input, found *TermSet) {
	for _, t := range s.terms {
		if t.word == nil {
			if strings.Contains(in.Lower, t.lower) {
				found.Add(t.display)
			}
			continue
		}
		if t.word.MatchString(in.Lower) {
			found.Add(t.display)
		}
	}
}
