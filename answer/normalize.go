package answer

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes s for comparison. It lowercases the text,
// strips ASCII punctuation, removes the articles "a", "an" and "the"
// as whole words, and collapses whitespace runs to single spaces with
// no leading or trailing space.
//
// The stages run in that order: punctuation must be gone before
// article removal so that "the," reduces to a removable word. Every
// input normalizes without error; the result may be empty.
func Normalize(s string) string {
	return collapseWhitespace(removeArticles(stripPunct(strings.ToLower(s))))
}

// Tokens splits s into comparison tokens. An empty input yields no
// tokens without being normalized.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(Normalize(s))
}

// stripPunct removes every ASCII punctuation character.
func stripPunct(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIIPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
	case r >= ':' && r <= '@':
	case r >= '[' && r <= '`':
	case r >= '{' && r <= '~':
	default:
		return false
	}
	return true
}

// removeArticles replaces "a", "an" and "the" with a space wherever
// they appear as maximal runs of word characters. Word characters
// cover Unicode letters and digits plus underscore, so boundaries next
// to non-ASCII letters behave the same as ASCII ones.
func removeArticles(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var word []rune

	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		if w == "a" || w == "an" || w == "the" {
			b.WriteByte(' ')
		} else {
			b.WriteString(w)
		}
		word = word[:0]
	}

	for _, r := range s {
		if isWordChar(r) {
			word = append(word, r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()

	return b.String()
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// collapseWhitespace reduces whitespace runs to single spaces and
// trims both ends.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false

	for _, r := range s {
		if unicode.IsSpace(r) {
			// Only separate characters already written; leading
			// whitespace is dropped.
			if b.Len() > 0 {
				pending = true
			}
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
