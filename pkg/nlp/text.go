package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// IsMultiWord reports whether phrase contains a space.
func IsMultiWord(phrase string) bool {
	return strings.Contains(phrase, " ")
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// WordPattern compiles a case-insensitive regexp matching word as a whole word.
// A \b anchor is only placed on a side that ends in a word character: "java"
// gets both anchors, "c++" only a leading one, so symbol-suffixed terms remain
// matchable.
func WordPattern(word string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)`)
	if word != "" && isWordByte(word[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(word))
	if word != "" && isWordByte(word[len(word)-1]) {
		b.WriteString(`\b`)
	}
	return regexp.MustCompile(b.String())
}

// FoldPattern compiles a case-insensitive regexp matching substr literally.
func FoldPattern(substr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(substr))
}

// RuneWindow returns the part of s spanning radius runes before and after the
// byte range [start, start+length). Offsets must sit on rune boundaries.
func RuneWindow(s string, start, length, radius int) string {
	if start < 0 || start > len(s) {
		return ""
	}
	lo := start
	for i := 0; i < radius && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:lo])
		lo -= size
	}
	hi := start + length
	if hi > len(s) {
		hi = len(s)
	}
	for i := 0; i < radius && hi < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[hi:])
		hi += size
	}
	return s[lo:hi]
}
