package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	rePunct      = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	reSpaceRun   = regexp.MustCompile(` {2,}`)
	reTrailSpace = regexp.MustCompile(`(?m)[ \t]+$`)
)

// NormalizeText prepares extracted document text for matching:
//   - NFKC folds ligatures, full-width forms and non-breaking spaces
//   - CRLF / CR become LF
//   - control characters other than \n and \t are dropped
//   - runs of spaces collapse and trailing blanks are cut, so whitespace-only
//     lines become empty lines
//
// Line structure is kept intact: blank lines delimit resume sections.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = reSpaceRun.ReplaceAllString(s, " ")
	s = reTrailSpace.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CleanPhrase lowercases s and removes every character that is neither a
// letter, digit, underscore nor whitespace.
func CleanPhrase(s string) string {
	s = strings.ToLower(s)
	s = rePunct.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// itemCutset is what TrimItem strips from both ends of a list item.
const itemCutset = " \t\n.:;,*•·-–()[]\"'`"

// TrimItem lowercases a list item and cuts surrounding whitespace, bullets and
// punctuation. Inner characters are kept so "node.js" and "c++" survive.
func TrimItem(s string) string {
	return strings.ToLower(strings.Trim(s, itemCutset))
}
