package extract

import (
	"regexp"

	"github.com/py2k5/resume-analyzer/pkg/nlp"
	"github.com/py2k5/resume-analyzer/pkg/taxonomy"
)

type abbreviationRule struct {
	word *regexp.Regexp
	name string
}

// abbreviationStrategy expands short codes ("pmp", "cissp") found as whole
// words into the single canonical name each one maps to.
type abbreviationStrategy struct {
	rules []abbreviationRule
}

func newAbbreviationStrategy(abbrevs []taxonomy.Abbreviation) *abbreviationStrategy {
	rules := make([]abbreviationRule, len(abbrevs))
	for i, a := range abbrevs {
		rules[i] = abbreviationRule{word: nlp.WordPattern(a.Code), name: a.Name}
	}
	return &abbreviationStrategy{rules: rules}
}

func (s *abbreviationStrategy) Name() string { return "abbreviation" }

func (s *abbreviationStrategy) Find(in Input, found *TermSet) {
	for _, r := range s.rules {
		if r.word.MatchString(in.Lower) {
			found.Add(r.name)
		}
	}
}
