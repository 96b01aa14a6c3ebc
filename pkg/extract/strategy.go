package extract

import "strings"

// Input is the text handed to every strategy, in original and lowercase form.
type Input struct {
	Raw   string
	Lower string
}

// NewInput derives the lowercase view once per request.
func NewInput(text string) Input {
	return Input{Raw: text, Lower: strings.ToLower(text)}
}

// Strategy finds vocabulary terms in the input and adds their canonical form
// to found. Implementations are immutable and safe for concurrent use.
type Strategy interface {
	Name() string
	Find(in Input, found *TermSet)
}

// vocabulary is the subset of taxonomy.Taxonomy the strategies need.
type vocabulary interface {
	Terms() []string
	Lookup(s string) (string, bool)
}

type vocabTerm struct {
	display string
	lower   string
}

func lowered(v vocabulary) []vocabTerm {
	terms := v.Terms()
	out := make([]vocabTerm, len(terms))
	for i, t := range terms {
		out[i] = vocabTerm{display: t, lower: strings.ToLower(t)}
	}
	return out
}
