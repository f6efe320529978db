package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// A WordSet is a set of uppercase words. The zero (nil) value behaves as an
// empty set for reads.
type WordSet map[string]struct{}

// Add inserts a word into the set.
func (s WordSet) Add(word string) {
	s[word] = struct{}{}
}

// Contains reports set membership.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Copy returns a fresh set with the same members.
func (s WordSet) Copy() WordSet {
	out := make(WordSet, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order. Set iteration order is not
// deterministic, so anything returned to a caller goes through here first.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the words common to all given sets. With no sets the
// result is empty.
func Intersect(sets ...WordSet) WordSet {
	if len(sets) == 0 {
		return make(WordSet)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if len(s) < len(smallest) {
			smallest = s
		}
	}
	out := make(WordSet)
outer:
	for w := range smallest {
		for _, s := range sets {
			if !s.Contains(w) {
				continue outer
			}
		}
		out.Add(w)
	}
	return out
}

// Subtract removes every member of each given set from s, in place.
func (s WordSet) Subtract(sets ...WordSet) {
	for _, other := range sets {
		for w := range other {
			delete(s, w)
		}
	}
}

// Substitutions maps multi-letter tokens to the single characters that stand
// in for them inside the indices, e.g. {"QU": "Q"}. Keys and values are
// uppercase. Each solver stores its own value; there is no shared default
// state to mutate.
type Substitutions map[string]string

// DefaultSubstitutions returns the standard Boggle mapping of the "QU" face
// to a single Q.
func DefaultSubstitutions() Substitutions {
	return Substitutions{"QU": "Q"}
}

// Apply replaces every token in the word with its single-character
// substitution, e.g. SQUID -> SQID.
func (su Substitutions) Apply(word string) string {
	for token, char := range su {
		word = strings.ReplaceAll(word, token, char)
	}
	return word
}

// Expand replaces every single-character substitution with its original
// token, e.g. SQID -> SQUID.
func (su Substitutions) Expand(word string) string {
	for token, char := range su {
		word = strings.ReplaceAll(word, char, token)
	}
	return word
}

var tokenRegex = regexp.MustCompile(`[\w']+`)

// Tokenize extracts candidate words from raw text: maximal runs of word
// characters and apostrophes. Case is preserved; solvers normalize on load.
func Tokenize(text string) []string {
	return tokenRegex.FindAllString(text, -1)
}

// IsAlpha reports whether the word is non-empty and made of ASCII letters
// only, either case.
func IsAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// IsLetter reports whether r is an ASCII letter, either case.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
