package extract

import "strings"

// TermSet is an insertion-ordered set of canonical terms keyed by their
// lowercase form. A term added by several strategies is kept once.
type TermSet struct {
	order []string
	seen  map[string]struct{}
}

// NewTermSet returns an empty set.
func NewTermSet() *TermSet {
	return &TermSet{seen: make(map[string]struct{})}
}

// Add inserts term unless an equal term (ignoring case) is already present.
func (s *TermSet) Add(term string) {
	key := strings.ToLower(term)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, term)
}

// Has reports whether term is in the set, ignoring case.
func (s *TermSet) Has(term string) bool {
	_, ok := s.seen[strings.ToLower(term)]
	return ok
}

// Len is the number of distinct terms.
func (s *TermSet) Len() int { return len(s.order) }

// Slice returns the terms in insertion order.
func (s *TermSet) Slice() []string {
	return append([]string(nil), s.order...)
}
