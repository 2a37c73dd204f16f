package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher finds taxonomy terms in free text.
type Matcher struct {
	terms []string
}

// NewMatcher prepares a matcher for every term in t.
func NewMatcher(t Taxonomy) *Matcher {
	return &Matcher{terms: t.Terms()}
}

// Extract returns the sorted set of terms that occur in text as whole words,
// ignoring case. Empty text yields nil.
func (m *Matcher) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, term := range m.terms {
		if containsWord(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// containsWord reports whether term occurs in text with a non-word rune (or
// the text edge) on both sides.
func containsWord(text, term string) bool {
	for offset := 0; offset <= len(text)-len(term); {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
