package extract

import (
	"strings"

	"github.com/py2k5/resume-analyzer/pkg/nlp"
)

// sectionStrategy reads list-like sections introduced by a header such as
// "Skills:" and keeps items that are exactly a vocabulary term.
//
// A header counts only at the start of a line and must be followed by a colon,
// whitespace or the end of the line. The section runs until a blank line, a
// line starting with an uppercase ASCII letter or a digit, or the end of text.
type sectionStrategy struct {
	headers    []string
	separators []string
	vocab      vocabulary
}

func newSectionStrategy(v vocabulary, headers, separators []string) *sectionStrategy {
	return &sectionStrategy{
		headers:    append([]string(nil), headers...),
		separators: append([]string(nil), separators...),
		vocab:      v,
	}
}

func (s *sectionStrategy) Name() string { return "section" }

func (s *sectionStrategy) Find(in Input, found *TermSet) {
	for _, section := range s.sections(in.Raw) {
		s.scan(section, found)
	}
}

// sections returns the section bodies in text, one per header hit. Two
// headers matching the same line yield the same body twice.
func (s *sectionStrategy) sections(text string) []string {
	var out []string
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		head := strings.ToLower(strings.TrimLeft(line, " \t"))
		for _, h := range s.headers {
			if rest, ok := afterHeader(head, h); ok {
				out = append(out, collectSection(rest, lines[i+1:]))
			}
		}
	}
	return out
}

func (s *sectionStrategy) scan(section string, found *TermSet) {
	s.match(section, found)
	for _, sep := range s.separators {
		if !strings.Contains(section, sep) {
			continue
		}
		for _, item := range strings.Split(section, sep) {
			s.match(item, found)
		}
	}
}

func (s *sectionStrategy) match(item string, found *TermSet) {
	key := nlp.TrimItem(item)
	if key == "" {
		return
	}
	if term, ok := s.vocab.Lookup(key); ok {
		found.Add(term)
	}
}

func afterHeader(line, header string) (string, bool) {
	if !strings.HasPrefix(line, header) {
		return "", false
	}
	rest := line[len(header):]
	if rest != "" && rest[0] != ':' && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimLeft(rest, ": \t"), true
}

func collectSection(first string, following []string) string {
	parts := []string{first}
	for _, line := range following {
		if strings.TrimSpace(line) == "" || startsSection(line) {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}

func startsSection(line string) bool {
	c := line[0]
	return ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
