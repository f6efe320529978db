package scrabble

// BoardDim is the dimension of a standard board.
const BoardDim = 15

// Cell markers. A free square is '*'; a blank tile on the board is written
// as a lower-case letter; a blank on the rack is '#'.
const (
	freeCell  = '*'
	BlankTile = '#'
)

// Premium square symbols used in layout descriptions.
const (
	noPremium    = '*'
	doubleLetter = 'd'
	tripleLetter = 't'
	doubleWord   = 'D'
	tripleWord   = 'T'
)

var (
	// StandardTileValues is the standard English tile value table.
	StandardTileValues map[rune]int

	// StandardPremiumLayout is the standard premium square layout. It is
	// symmetric about the main diagonal, which the solver relies on when
	// it scores transposed (vertical) placements.
	StandardPremiumLayout []string
)

func init() {
	StandardTileValues = map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10,
	}
	StandardPremiumLayout = []string{
		`T**d***T***d**T`,
		`*D***t***t***D*`,
		`**D***d*d***D**`,
		`d**D***d***D**d`,
		`****D*****D****`,
		`*t***t***t***t*`,
		`**d***d*d***d**`,
		`T**d***D***d**T`,
		`**d***d*d***d**`,
		`*t***t***t***t*`,
		`****D*****D****`,
		`d**D***d***D**d`,
		`**D***d*d***D**`,
		`*D***t***t***D*`,
		`T**d***T***d**T`,
	}
}

// EmptyBoard returns a fresh, fully free 15x15 board in the caller-facing
// matrix form.
func EmptyBoard() [][]string {
	board := make([][]string, BoardDim)
	for y := range board {
		row := make([]string, BoardDim)
		for x := range row {
			row[x] = "*"
		}
		board[y] = row
	}
	return board
}
