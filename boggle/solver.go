// Package boggle finds every dictionary word reachable on a Boggle board by
// a path of adjacent, non-repeating cells.
package boggle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvarley/wordsolver/lexicon"
)

const defaultMinLength = 3

// A Coord is a board position. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// WordPaths pairs a found word with every distinct board path that spells it.
type WordPaths struct {
	Word  string
	Paths [][]Coord
}

// A Solver holds the letter trie for one dictionary. Solve calls do not
// mutate it, but per-call scratch is not synchronized; use one solver per
// goroutine if solving concurrently.
type Solver struct {
	trie      *lexicon.Trie
	subs      lexicon.Substitutions
	minLength int
}

// An Option configures a Solver at construction.
type Option func(*Solver)

// MinLength sets the minimum length of dictionary words indexed. The default
// is 3, the usual Boggle rule.
func MinLength(n int) Option {
	return func(s *Solver) { s.minLength = n }
}

// Substitutions sets the token substitution scheme applied to dictionary
// words and board cells. The default maps QU to Q.
func Substitutions(subs lexicon.Substitutions) Option {
	return func(s *Solver) { s.subs = subs }
}

// New builds a solver from a word collection. Non-alphabetic entries and
// words shorter than the minimum length are dropped; the rest are upper-cased,
// substituted, and inserted into the trie.
func New(collection []string, opts ...Option) (*Solver, error) {
	s := &Solver{
		trie:      lexicon.NewTrie(),
		subs:      lexicon.DefaultSubstitutions(),
		minLength: defaultMinLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.minLength < 0 {
		return nil, fmt.Errorf("invalid min length %d: value must be non-negative", s.minLength)
	}
	for _, word := range collection {
		if !lexicon.IsAlpha(word) || len(word) < s.minLength {
			continue
		}
		s.trie.Add(s.subs.Apply(strings.ToUpper(word)))
	}
	log.Debug().Int("words", s.trie.Len()).Int("min-length", s.minLength).
		Msg("populated boggle trie")
	return s, nil
}

// Solve returns every word on the board, longest first. Words of equal
// length keep discovery order, so repeated calls return identical slices.
func (s *Solver) Solve(board [][]string) ([]string, error) {
	results, err := s.solve(board)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(results))
	for i, r := range results {
		words[i] = r.Word
	}
	return words, nil
}

// SolveWithPaths returns every word on the board together with all distinct
// paths that spell it, longest word first.
func (s *Solver) SolveWithPaths(board [][]string) ([]WordPaths, error) {
	return s.solve(board)
}

func (s *Solver) solve(board [][]string) ([]WordPaths, error) {
	cells, err := s.validateBoard(board)
	if err != nil {
		return nil, err
	}
	found := make(map[string][][]Coord)
	var order []string
	record := func(word string, path []Coord) {
		if _, seen := found[word]; !seen {
			order = append(order, word)
		}
		found[word] = append(found[word], path)
	}
	for row := range cells {
		for col := range cells[row] {
			s.iterate(cells, row, col, record)
		}
	}
	results := make([]WordPaths, len(order))
	for i, word := range order {
		results[i] = WordPaths{Word: word, Paths: found[word]}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Word) > len(results[j].Word)
	})
	return results, nil
}

// frame is one entry of the explicit DFS stack: the trie node reached so far
// and the path that reached it.
type frame struct {
	node *lexicon.Node
	path []Coord
}

// iterate adds every word attainable from the starting cell. A branch is
// abandoned as soon as no trie child matches, and a path never revisits one
// of its own coordinates.
func (s *Solver) iterate(cells [][]rune, row, col int, record func(string, []Coord)) {
	first := s.trie.Root().Child(cells[row][col])
	if first == nil {
		return
	}
	stack := []frame{{node: first, path: []Coord{{row, col}}}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, adj := range adjacent(cells, cur.path) {
			node := cur.node.Child(cells[adj.Row][adj.Col])
			if node == nil {
				continue
			}
			path := make([]Coord, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, adj)
			if node.Word() != "" {
				record(s.subs.Expand(node.Word()), path)
			}
			stack = append(stack, frame{node: node, path: path})
		}
	}
}

// adjacent returns the coordinates in the 3x3 neighborhood of the path's last
// cell, clipped to the board and excluding anything already on the path.
func adjacent(cells [][]rune, path []Coord) []Coord {
	last := path[len(path)-1]
	var out []Coord
	for row := max(0, last.Row-1); row < min(len(cells), last.Row+2); row++ {
		for col := max(0, last.Col-1); col < min(len(cells[0]), last.Col+2); col++ {
			c := Coord{row, col}
			if !onPath(c, path) {
				out = append(out, c)
			}
		}
	}
	return out
}

func onPath(c Coord, path []Coord) bool {
	for _, p := range path {
		if p == c {
			return true
		}
	}
	return false
}

// validateBoard checks shape and normalizes each cell: upper case, then token
// substitution, e.g. a "Qu" die face becomes the single letter Q.
func (s *Solver) validateBoard(board [][]string) ([][]rune, error) {
	if len(board) == 0 {
		return nil, fmt.Errorf("invalid board: must have at least one row")
	}
	width := len(board[0])
	if width == 0 {
		return nil, fmt.Errorf("invalid board: rows must have at least one cell")
	}
	cells := make([][]rune, len(board))
	for i, row := range board {
		if len(row) != width {
			return nil, fmt.Errorf("invalid board at row %d: not all rows are the same size", i)
		}
		cells[i] = make([]rune, width)
		for j, cell := range row {
			normalized := []rune(s.subs.Apply(strings.ToUpper(cell)))
			if len(normalized) != 1 {
				return nil, fmt.Errorf("invalid board at row %d: cannot convert %q into a letter", i, cell)
			}
			cells[i][j] = normalized[0]
		}
	}
	return cells, nil
}
