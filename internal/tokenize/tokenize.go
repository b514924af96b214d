// Package tokenize turns free text into the lexical tokens used for relevance matching.
package tokenize

import (
	"sort"
	"strings"
	"unicode"
)

// TokenSet is an unordered set of normalized tokens
type TokenSet map[string]struct{}

// Normalize lower-cases text and returns the maximal runs of [a-z0-9+#.]
// in order of appearance. Every other character is a separator, so
// "c++", "c#" and "node.js" survive intact.
func Normalize(text string) []string {
	lower := toLower(text)
	tokens := make([]string, 0)
	start := -1
	for i := 0; i < len(lower); i++ {
		if isTokenByte(lower[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, lower[start:])
	}
	return tokens
}

// toLower lower-cases rune by rune. U+0130 (dotted capital I) becomes
// "i" plus U+0307 using its full case mapping, so the combining dot
// separates it from what follows.
func toLower(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\u0130' {
			sb.WriteString("i\u0307")
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// isTokenByte reports whether b belongs to a token. Multi-byte UTF-8
// sequences never match, so non-ASCII text acts as a separator.
func isTokenByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '+' || b == '#' || b == '.':
		return true
	}
	return false
}

// Tokenize returns the deduplicated set of Normalize(text).
func Tokenize(text string) TokenSet {
	tokens := Normalize(text)
	set := make(TokenSet, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

// Has reports whether token is in the set
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of distinct tokens
func (s TokenSet) Len() int {
	return len(s)
}

// IntersectCount returns |s ∩ other|.
func (s TokenSet) IntersectCount(other TokenSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	count := 0
	for token := range small {
		if large.Has(token) {
			count++
		}
	}
	return count
}

// Intersects reports whether the two sets share at least one token
func (s TokenSet) Intersects(other TokenSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for token := range small {
		if large.Has(token) {
			return true
		}
	}
	return false
}

// Sorted returns the tokens in lexicographic order
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for token := range s {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}
