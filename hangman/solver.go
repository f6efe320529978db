// Package hangman reduces a dictionary against the state of a hangman game
// and ranks the unguessed letters by their chance of being in the word.
package hangman

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mvarley/wordsolver/lexicon"
)

// A LetterProb pairs a letter with the fraction of remaining candidate
// words that contain it at least once.
type LetterProb struct {
	Letter      rune
	Probability float64
}

// A Solver answers hangman queries against one dictionary. Safe for
// concurrent readers once built.
type Solver struct {
	index *lexicon.PositionalIndex
}

// New builds a solver from a word collection. Entries are upper-cased;
// non-alphabetic entries are dropped.
func New(collection []string) *Solver {
	s := &Solver{index: lexicon.NewPositionalIndex()}
	for _, word := range collection {
		if !lexicon.IsAlpha(word) {
			continue
		}
		s.index.Add(strings.ToUpper(word))
	}
	log.Debug().Msg("populated hangman positional index")
	return s
}

// Solve returns every dictionary word consistent with the game state.
// attempt is the revealed pattern: letters are known, any non-letter rune
// stands for an unknown square. incorrect holds the letters guessed and
// rejected. An empty result is a valid outcome.
//
// A revealed letter constrains both ways: the word must have it at every
// revealed position, and must not have it anywhere else. If it did, that
// square would have been revealed too.
func (s *Solver) Solve(attempt, incorrect string) (lexicon.WordSet, error) {
	pattern, wrong, err := validateGame(attempt, incorrect)
	if err != nil {
		return nil, err
	}
	return s.reduce(pattern, wrong), nil
}

// GuessDistribution returns, for every letter not yet guessed, the
// probability that it appears in the word, highest first (letter order
// breaks ties). Guessing is meaningless with no candidates left, so that
// returns an error rather than a zero distribution.
func (s *Solver) GuessDistribution(attempt, incorrect string) ([]LetterProb, error) {
	pattern, wrong, err := validateGame(attempt, incorrect)
	if err != nil {
		return nil, err
	}
	candidates := s.reduce(pattern, wrong)
	if len(candidates) == 0 {
		return nil, errors.New("no candidate words remain for the given game state")
	}

	guessed := make(map[rune]struct{}, len(wrong))
	for _, letter := range wrong {
		guessed[letter] = struct{}{}
	}
	for _, letter := range pattern {
		if lexicon.IsLetter(letter) {
			guessed[letter] = struct{}{}
		}
	}

	tally := make(map[rune]int, 26)
	for letter := 'A'; letter <= 'Z'; letter++ {
		if _, ok := guessed[letter]; !ok {
			tally[letter] = 0
		}
	}
	for word := range candidates {
		for _, letter := range lo.Uniq([]rune(word)) {
			if _, ok := tally[letter]; ok {
				tally[letter]++
			}
		}
	}

	total := float64(len(candidates))
	dist := make([]LetterProb, 0, len(tally))
	for _, letter := range lo.Keys(tally) {
		dist = append(dist, LetterProb{Letter: letter, Probability: float64(tally[letter]) / total})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Probability != dist[j].Probability {
			return dist[i].Probability > dist[j].Probability
		}
		return dist[i].Letter < dist[j].Letter
	})
	return dist, nil
}

// reduce runs the candidate filter: start from the length class, keep words
// matching every revealed letter, then subtract words carrying a letter at
// any forbidden position.
func (s *Solver) reduce(pattern []rune, wrong []rune) lexicon.WordSet {
	length := len(pattern)

	required := make(map[rune][]int)
	for pos, letter := range pattern {
		if lexicon.IsLetter(letter) {
			required[letter] = append(required[letter], pos)
		}
	}

	candidates := s.index.WordsOfLength(length).Copy()
	for letter, positions := range required {
		for _, pos := range positions {
			candidates = lexicon.Intersect(candidates, s.index.Lookup(length, letter, pos))
		}
	}

	for letter, positions := range required {
		revealed := make(map[int]struct{}, len(positions))
		for _, pos := range positions {
			revealed[pos] = struct{}{}
		}
		for pos := 0; pos < length; pos++ {
			if _, ok := revealed[pos]; ok {
				continue
			}
			candidates.Subtract(s.index.Lookup(length, letter, pos))
		}
	}
	for _, letter := range wrong {
		for pos := 0; pos < length; pos++ {
			candidates.Subtract(s.index.Lookup(length, letter, pos))
		}
	}
	return candidates
}

// validateGame normalizes the attempt pattern and the incorrect-letter set.
func validateGame(attempt, incorrect string) (pattern []rune, wrong []rune, err error) {
	pattern = []rune(strings.ToUpper(attempt))
	if len(pattern) == 0 {
		return nil, nil, errors.New("invalid attempt: the pattern is empty")
	}
	for _, letter := range strings.ToUpper(incorrect) {
		if !lexicon.IsLetter(letter) {
			return nil, nil, fmt.Errorf("invalid incorrect letters: %q is not a letter", letter)
		}
		wrong = append(wrong, letter)
	}
	return pattern, wrong, nil
}
