package extract

import (
	"regexp"
	"strings"

	"github.com/py2k5/resume-analyzer/pkg/nlp"
)

type phrasePattern struct {
	re    *regexp.Regexp
	group int
}

// patternStrategy captures phrases around trigger words ("proficient in",
// "certified", vendor names, seniority titles) and keeps every vocabulary term
// that contains the cleaned phrase or is contained in it.
//
// The two-way substring test over-matches: a short capture such as
// "go" pulls in every term containing "go", and a long capture pulls in every
// short term it happens to contain ("c", "r").
type patternStrategy struct {
	patterns []phrasePattern
	terms    []vocabTerm
}

// newPatternStrategy compiles the templates. Each must define a "phrase"
// group; taxonomy validation guarantees that for loaded taxonomies.
func newPatternStrategy(v vocabulary, templates []string, group string) *patternStrategy {
	patterns := make([]phrasePattern, 0, len(templates))
	for _, tpl := range templates {
		re := regexp.MustCompile(tpl)
		idx := re.SubexpIndex(group)
		if idx < 0 {
			continue
		}
		patterns = append(patterns, phrasePattern{re: re, group: idx})
	}
	return &patternStrategy{patterns: patterns, terms: lowered(v)}
}

func (s *patternStrategy) Name() string { return "pattern" }

func (s *patternStrategy) Find(in Input, found *TermSet) {
	for _, p := range s.patterns {
		for _, m := range p.re.FindAllStringSubmatch(in.Lower, -1) {
			s.matchPhrase(m[p.group], found)
		}
	}
}

func (s *patternStrategy) matchPhrase(phrase string, found *TermSet) {
	clean := nlp.CleanPhrase(phrase)
	if clean == "" {
		return
	}
	for _, t := range s.terms {
		if strings.Contains(t.lower, clean) || strings.Contains(clean, t.lower) {
			found.Add(t.display)
		}
	}
}
