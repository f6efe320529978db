// Package wordsearch locates hidden words in a letter grid by scanning 1-D
// slices of the grid in up to eight compass directions.
package wordsearch

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvarley/wordsolver/lexicon"
)

// A Coord is a grid position: x is the column, y is the row, (0, 0) top left.
type Coord struct {
	X int
	Y int
}

// A Match is one hidden word occurrence, from its first letter to its last.
type Match struct {
	Word  string
	Start Coord
	End   Coord
}

// A Solver holds the letter trie for one hidden-word list.
type Solver struct {
	trie *lexicon.Trie
}

// New builds a solver from the hidden words. Words are upper-cased; no
// substitution or minimum length applies.
func New(collection []string) *Solver {
	trie := lexicon.NewTrie()
	for _, word := range collection {
		trie.Add(strings.ToUpper(word))
	}
	log.Debug().Int("words", trie.Len()).Msg("populated word search trie")
	return &Solver{trie: trie}
}

// Solve scans the grid in the given directions (all eight when none are
// given) and returns every occurrence of a hidden word. A single straight
// run of letters can yield several matches with different end points.
func (s *Solver) Solve(grid [][]string, directions ...Direction) ([]Match, error) {
	cells, err := validateGrid(grid)
	if err != nil {
		return nil, err
	}
	requested, err := validateDirections(directions)
	if err != nil {
		return nil, err
	}
	width, height := len(cells[0]), len(cells)

	var matches []Match
	for _, d := range requested {
		for _, slice := range d.slices(width, height) {
			matches = append(matches, s.scan(cells, slice)...)
		}
	}
	return matches, nil
}

// scan walks the trie along one slice, starting at every offset, and emits a
// match at every word-completing node.
func (s *Solver) scan(cells [][]rune, slice []Coord) []Match {
	var matches []Match
	for i, start := range slice {
		node := s.trie.Root().Child(cells[start.Y][start.X])
		if node == nil {
			continue
		}
		for _, end := range slice[i+1:] {
			node = node.Child(cells[end.Y][end.X])
			if node == nil {
				break
			}
			if node.Word() != "" {
				matches = append(matches, Match{Word: node.Word(), Start: start, End: end})
			}
		}
	}
	return matches
}

func validateGrid(grid [][]string) ([][]rune, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("invalid grid: must have at least one row")
	}
	width := len(grid[0])
	if width == 0 {
		return nil, fmt.Errorf("invalid grid: rows must have at least one cell")
	}
	cells := make([][]rune, len(grid))
	for i, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("invalid grid at row %d: not all rows are the same size", i)
		}
		cells[i] = make([]rune, width)
		for j, cell := range row {
			letters := []rune(strings.ToUpper(cell))
			if len(letters) != 1 {
				return nil, fmt.Errorf("invalid grid at row %d: cannot convert %q into a letter", i, cell)
			}
			cells[i][j] = letters[0]
		}
	}
	return cells, nil
}

// validateDirections checks range and returns the requested directions
// deduplicated, in enumeration order. Empty means all eight.
func validateDirections(directions []Direction) ([]Direction, error) {
	if len(directions) == 0 {
		return AllDirections(), nil
	}
	var seen [NorthWest + 1]bool
	for _, d := range directions {
		if d > NorthWest {
			return nil, fmt.Errorf("invalid direction value %d: permitted directions are N, NE, E, SE, S, SW, W, NW", d)
		}
		seen[d] = true
	}
	var out []Direction
	for _, d := range AllDirections() {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}
