package scrabble

import (
	"fmt"

	"github.com/mvarley/wordsolver/lexicon"
)

// A board is the validated, normalized form of a caller board matrix.
// Squares hold an upper-case letter for a regular tile, a lower-case letter
// for a played blank, or freeCell. Indexing is tiles[y][x].
type board struct {
	tiles [BoardDim][BoardDim]rune
}

// tile returns the square at (x, y): the letter on it, freeCell if the
// square is free, or 0 if (x, y) is off the board.
func (b *board) tile(x, y int) rune {
	if x < 0 || x >= BoardDim || y < 0 || y >= BoardDim {
		return 0
	}
	return b.tiles[y][x]
}

// transpose returns a new board with rows and columns swapped. The vertical
// axis is solved by running the horizontal algorithm over the transposition.
func (b *board) transpose() *board {
	t := &board{}
	for y := 0; y < BoardDim; y++ {
		for x := 0; x < BoardDim; x++ {
			t.tiles[x][y] = b.tiles[y][x]
		}
	}
	return t
}

// validateBoard checks the caller matrix shape and normalizes it: any
// non-alphabetic cell (empty, "*", spaces) becomes a free square, and letter
// cells keep their case, lower case signalling a played blank.
func validateBoard(in [][]string) (*board, error) {
	if len(in) != BoardDim {
		return nil, fmt.Errorf("invalid board: expected %d rows, received %d", BoardDim, len(in))
	}
	b := &board{}
	for y, row := range in {
		if len(row) != BoardDim {
			return nil, fmt.Errorf("invalid board at row %d: expected %d cells, received %d",
				y, BoardDim, len(row))
		}
		for x, cell := range row {
			if !lexicon.IsAlpha(cell) {
				b.tiles[y][x] = freeCell
				continue
			}
			letters := []rune(cell)
			if len(letters) != 1 {
				return nil, fmt.Errorf("invalid board at row %d: cannot convert %q into a letter", y, cell)
			}
			b.tiles[y][x] = letters[0]
		}
	}
	return b, nil
}

// validateRack normalizes the rack: every entry must be a single letter or
// the blank marker '#'. Letters are upper-cased. An empty rack is valid.
func validateRack(in []string) ([]rune, error) {
	rack := make([]rune, 0, len(in))
	for i, entry := range in {
		letters := []rune(entry)
		if len(letters) != 1 {
			return nil, fmt.Errorf("invalid rack at index %d: cannot convert %q into a tile", i, entry)
		}
		tile := letters[0]
		switch {
		case tile == BlankTile:
		case tile >= 'a' && tile <= 'z':
			tile -= 'a' - 'A'
		case tile >= 'A' && tile <= 'Z':
		default:
			return nil, fmt.Errorf("invalid rack at index %d: %q is not a letter or blank", i, entry)
		}
		rack = append(rack, tile)
	}
	return rack, nil
}

func isLetterRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
