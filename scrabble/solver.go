// Package scrabble enumerates and scores legal tile placements on a
// Scrabble board, using a positional word index to resolve the letter
// constraints that existing tiles and crossing words impose.
package scrabble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mvarley/wordsolver/lexicon"
)

// NoPlacementScore is returned by GetScore when the attempt cannot be
// legally placed: a tile mismatch, a disconnected word, running off the
// board, or a rack that cannot supply the needed tiles.
const NoPlacementScore = -1

const bingoBonus = 50

// A Solution is one legal placement. X is the column and Y the row of the
// word's first letter; a vertical word runs downward from there. Letters
// supplied by blanks appear lower-case in Word.
type Solution struct {
	Word     string
	X        int
	Y        int
	Vertical bool
	Score    int
}

// A Solver holds the positional index for one dictionary plus the value and
// premium tables in effect. The board, minor matrix and rack fields are
// per-call scratch: at most one Solve or GetScore may be in flight per
// instance.
type Solver struct {
	index    *lexicon.PositionalIndex
	values   map[rune]int
	premium  []string
	allowAll map[rune]int

	board *board
	minor [][]map[rune]int
	rack  []rune
}

// An Option configures a Solver at construction.
type Option func(*Solver)

// TileValues overrides the standard letter value table.
func TileValues(values map[rune]int) Option {
	return func(s *Solver) { s.values = values }
}

// PremiumLayout overrides the standard premium square layout. The layout
// must be 15 rows of 15 symbols drawn from "*dtDT" and symmetric about the
// main diagonal.
func PremiumLayout(layout []string) Option {
	return func(s *Solver) { s.premium = layout }
}

// New builds a solver from a word collection. Entries are upper-cased;
// non-alphabetic entries are dropped.
func New(collection []string, opts ...Option) (*Solver, error) {
	s := &Solver{
		index:   lexicon.NewPositionalIndex(),
		values:  StandardTileValues,
		premium: StandardPremiumLayout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := validateLayout(s.premium); err != nil {
		return nil, err
	}
	// A square with no crossing constraints permits any letter, either
	// case, at no bonus. Shared read-only across all minor matrices.
	s.allowAll = make(map[rune]int, 52)
	for r := 'A'; r <= 'Z'; r++ {
		s.allowAll[r] = 0
		s.allowAll[toLower(r)] = 0
	}
	for _, word := range collection {
		if !lexicon.IsAlpha(word) {
			continue
		}
		s.index.Add(strings.ToUpper(word))
	}
	log.Debug().Msg("populated scrabble positional index")
	return s, nil
}

// Solve returns every legal placement of rack tiles on the board, highest
// score first. The vertical axis is solved by transposing the board and
// swapping coordinates on the way out.
func (s *Solver) Solve(boardIn [][]string, rackIn []string) ([]Solution, error) {
	b, err := validateBoard(boardIn)
	if err != nil {
		return nil, err
	}
	rack, err := validateRack(rackIn)
	if err != nil {
		return nil, err
	}

	// A word reachable by two equivalent derivations collapses to one entry.
	set := make(map[Solution]struct{})
	s.solveAxis(b, rack, func(word string, x, y, score int) {
		set[Solution{Word: word, X: x, Y: y, Score: score}] = struct{}{}
	})
	s.solveAxis(b.transpose(), rack, func(word string, x, y, score int) {
		set[Solution{Word: word, X: y, Y: x, Vertical: true, Score: score}] = struct{}{}
	})

	solutions := lo.Keys(set)
	sort.Slice(solutions, func(i, j int) bool {
		si, sj := solutions[i], solutions[j]
		if si.Score != sj.Score {
			return si.Score > sj.Score
		}
		if si.Word != sj.Word {
			return si.Word < sj.Word
		}
		if si.X != sj.X {
			return si.X < sj.X
		}
		if si.Y != sj.Y {
			return si.Y < sj.Y
		}
		return !si.Vertical && sj.Vertical
	})
	return solutions, nil
}

// GetScore replays a single fixed placement through the same validation and
// scoring path as Solve, without enumerating alternatives. Lower-case
// letters in the attempt word are accepted as already-resolved blanks.
// An illegal placement returns NoPlacementScore, not an error.
func (s *Solver) GetScore(boardIn [][]string, rackIn []string, attempt Placement) (int, error) {
	b, err := validateBoard(boardIn)
	if err != nil {
		return 0, err
	}
	rack, err := validateRack(rackIn)
	if err != nil {
		return 0, err
	}
	if !lexicon.IsAlpha(attempt.Word) {
		return 0, fmt.Errorf("invalid attempt: word %q is not an alphabetic string", attempt.Word)
	}

	x, y := attempt.X, attempt.Y
	if attempt.Vertical {
		b = b.transpose()
		x, y = y, x
	}
	s.prepare(b, rack)

	var placements []int
	adjacent := false
	for n := range []rune(attempt.Word) {
		t := s.tile(x+n, y)
		switch {
		case isLetterRune(t):
			adjacent = true
		case t == 0:
			return NoPlacementScore, nil
		default:
			if len(placements) == len(s.rack) {
				return NoPlacementScore, nil
			}
			placements = append(placements, n)
			if !adjacent {
				adjacent = s.verticallyAdjacent(x+n, y)
			}
		}
	}
	if !adjacent {
		return NoPlacementScore, nil
	}

	score := NoPlacementScore
	s.yieldSolutions([]string{attempt.Word}, x, y, placements, func(_ string, sc int) {
		score = sc
	})
	return score, nil
}

// A Placement is a fixed attempt for GetScore: word, origin cell and axis.
type Placement struct {
	Word     string
	X        int
	Y        int
	Vertical bool
}

// prepare loads the per-call scratch state for one axis.
func (s *Solver) prepare(b *board, rack []rune) {
	s.board = b
	s.minor = s.minorScores()
	s.rack = rack
}

func (s *Solver) tile(x, y int) rune {
	return s.board.tile(x, y)
}

// solveAxis emits every solution along the horizontal axis of the given
// board orientation.
func (s *Solver) solveAxis(b *board, rack []rune, emit func(word string, x, y, score int)) {
	s.prepare(b, rack)
	for y := 0; y < BoardDim; y++ {
		for x := 0; x < BoardDim; x++ {
			s.runSolutions(x, y, func(word string, score int) {
				emit(word, x, y, score)
			})
		}
	}
}

// requirement pins a letter that must appear at an offset of a candidate
// word, because a tile is already on the board there.
type requirement struct {
	letter rune
	offset int
}

// runSolutions streams squares rightward from (x, y), accumulating board
// tiles as requirements and free squares as placement slots, and emits every
// candidate word that survives rack and cross-word checks. The stream stops
// at the board edge, or once the rack cannot fill another free square.
func (s *Solver) runSolutions(x, y int, emit func(word string, score int)) {
	// Runs never begin immediately after a tile; the run starting at that
	// tile covers them.
	if isLetterRune(s.tile(x-1, y)) {
		return
	}
	var placements []int
	var reqs []requirement
	adjacent := false
	for n := 0; ; n++ {
		t := s.tile(x+n, y)
		if isLetterRune(t) {
			reqs = append(reqs, requirement{t, n})
		} else if len(reqs) > 0 || adjacent {
			s.yieldSolutions(s.findWords(n, reqs).Sorted(), x, y, placements, emit)
		}
		if t == 0 {
			break
		}
		if t == freeCell {
			if len(placements) == len(s.rack) {
				break
			}
			placements = append(placements, n)
			if !adjacent {
				adjacent = s.verticallyAdjacent(x+n, y)
			}
		}
	}
}

// yieldSolutions checks each candidate word for one run: the rack must
// supply the letters at the placement offsets, and every placed letter must
// be permitted by the minor matrix. Surviving words are emitted with their
// total score; blanks come through lower-case in the emitted word.
func (s *Solver) yieldSolutions(words []string, x, y int, placements []int, emit func(word string, score int)) {
	for _, word := range words {
		letters := []rune(word)
		tiles, ok := rackTiles(s.rack, letters, placements)
		if !ok || len(tiles) == 0 {
			continue
		}
		score := 0
		legal := true
		for i, pos := range placements {
			letter := tiles[i]
			bonus, allowed := s.minor[y][x+pos][letter]
			if !allowed {
				legal = false
				break
			}
			if letter >= 'a' && letter <= 'z' {
				letters[pos] = letter
			}
			score += bonus
		}
		if !legal {
			continue
		}
		score += s.majorScore(letters, x, y, len(placements) == 7)
		emit(string(letters), score)
	}
}

// majorScore scores the main word at (x, y). Premium squares count only
// under newly placed tiles.
func (s *Solver) majorScore(letters []rune, x, y int, bingo bool) int {
	total, wordMult := 0, 1
	for n, letter := range letters {
		letterMult := 1
		if s.tile(x+n, y) == freeCell {
			switch s.premiumAt(x+n, y) {
			case doubleLetter:
				letterMult = 2
			case tripleLetter:
				letterMult = 3
			case doubleWord:
				wordMult *= 2
			case tripleWord:
				wordMult *= 3
			}
		}
		total += s.value(letter) * letterMult
	}
	score := total * wordMult
	if bingo {
		score += bingoBonus
	}
	return score
}

// findWords returns the words of the given length meeting every letter
// requirement, or the whole length class when unconstrained.
func (s *Solver) findWords(length int, reqs []requirement) lexicon.WordSet {
	if len(reqs) == 0 {
		return s.index.WordsOfLength(length)
	}
	sets := make([]lexicon.WordSet, len(reqs))
	for i, r := range reqs {
		sets[i] = s.index.Lookup(length, r.letter, r.offset)
	}
	return lexicon.Intersect(sets...)
}

// verticallyAdjacent reports whether (x, y) touches a tile above or below,
// or is the board center. This is the connectivity rule: a run is playable
// only if it touches the existing position somewhere.
func (s *Solver) verticallyAdjacent(x, y int) bool {
	center := (BoardDim - 1) / 2
	if x == center && y == center {
		return true
	}
	return isLetterRune(s.tile(x, y-1)) || isLetterRune(s.tile(x, y+1))
}

// value returns the points for a letter. Lower-case letters are blanks and
// score nothing.
func (s *Solver) value(letter rune) int {
	return s.values[letter]
}

// premiumAt reads the premium symbol for (x, y). The layout is required to
// be symmetric, so the same table serves both board orientations.
func (s *Solver) premiumAt(x, y int) rune {
	return rune(s.premium[y][x])
}

func validateLayout(layout []string) error {
	if len(layout) != BoardDim {
		return fmt.Errorf("invalid premium layout: expected %d rows, received %d", BoardDim, len(layout))
	}
	for y, row := range layout {
		if len(row) != BoardDim {
			return fmt.Errorf("invalid premium layout at row %d: expected %d symbols, received %d",
				y, BoardDim, len(row))
		}
		for x := range row {
			switch row[x] {
			case noPremium, doubleLetter, tripleLetter, doubleWord, tripleWord:
			default:
				return fmt.Errorf("invalid premium layout at row %d: unknown symbol %q", y, row[x])
			}
		}
	}
	// Scoring reads the layout untransposed for both axes, so it must be
	// symmetric about the main diagonal.
	for y, row := range layout {
		for x := range row {
			if layout[x][y] != row[x] {
				return fmt.Errorf("invalid premium layout: not symmetric at row %d column %d", y, x)
			}
		}
	}
	return nil
}
