package scrabble

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{"CAT", "DOG", "TOO", "CATCHT", "TAPING"}

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	solver, err := New(testWords)
	require.NoError(t, err)
	return solver
}

func assertSortedByScore(t *testing.T, solutions []Solution) {
	t.Helper()
	for i := 1; i < len(solutions); i++ {
		assert.GreaterOrEqual(t, solutions[i-1].Score, solutions[i].Score)
	}
}

func TestSolveEmptyBoard(t *testing.T) {
	is := is.New(t)
	solver, err := New([]string{"CAT", "DOG"})
	is.NoErr(err)

	solutions, err := solver.Solve(EmptyBoard(), []string{"C", "A", "T", "D", "O", "G"})
	is.NoErr(err)

	// Each word placed through the center star, three offsets per axis.
	is.Equal(len(solutions), 12)
	for _, sol := range solutions {
		assert.Equal(t, 10, sol.Score, "placement %+v", sol)
	}
	assert.Contains(t, solutions, Solution{Word: "CAT", X: 5, Y: 7, Score: 10})
	assert.Contains(t, solutions, Solution{Word: "CAT", X: 7, Y: 5, Vertical: true, Score: 10})
}

func TestSolveWithBlanks(t *testing.T) {
	solver := newTestSolver(t)

	solutions, err := solver.Solve(BoardCatch, []string{"#", "#", "T"})
	require.NoError(t, err)

	// TOO hooked under the H of CATcH, making CATCHT across; both O tiles
	// are blanks and come back lower-case.
	assert.Contains(t, solutions, Solution{Word: "Too", X: 11, Y: 7, Vertical: true, Score: 16})
	assertSortedByScore(t, solutions)
}

func TestSolveWithoutBlanks(t *testing.T) {
	solver := newTestSolver(t)

	solutions, err := solver.Solve(BoardCatch, []string{"I", "N", "G"})
	require.NoError(t, err)

	assert.Contains(t, solutions, Solution{Word: "TAPING", X: 3, Y: 0, Vertical: true, Score: 18})
	assertSortedByScore(t, solutions)
}

func TestSolveDeterministic(t *testing.T) {
	is := is.New(t)
	solver := newTestSolver(t)

	first, err := solver.Solve(BoardCatch, []string{"#", "#", "T"})
	is.NoErr(err)
	second, err := solver.Solve(BoardCatch, []string{"#", "#", "T"})
	is.NoErr(err)
	is.Equal(first, second)
}

func TestSolveEmptyRack(t *testing.T) {
	is := is.New(t)
	solver := newTestSolver(t)

	solutions, err := solver.Solve(BoardCatch, nil)
	is.NoErr(err)
	is.Equal(len(solutions), 0)
}

func TestGetScore(t *testing.T) {
	solver := newTestSolver(t)

	testCases := []struct {
		name     string
		rack     []string
		attempt  Placement
		expected int
	}{
		{
			name:     "extends existing tiles",
			rack:     []string{"I", "N", "G"},
			attempt:  Placement{Word: "TAPING", X: 3, Y: 0, Vertical: true},
			expected: 18,
		},
		{
			name:     "blanks resolve lower-case letters",
			rack:     []string{"#", "#", "T"},
			attempt:  Placement{Word: "Too", X: 11, Y: 7, Vertical: true},
			expected: 16,
		},
		{
			name:     "rack too small for the free squares",
			rack:     []string{"#", "#", "T"},
			attempt:  Placement{Word: "TOOT", X: 11, Y: 7, Vertical: true},
			expected: NoPlacementScore,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := solver.GetScore(BoardCatch, tc.rack, tc.attempt)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, score)
		})
	}
}

func TestGetScoreTransposeSymmetry(t *testing.T) {
	is := is.New(t)
	solver := newTestSolver(t)

	transposed := EmptyBoard()
	for y := range BoardCatch {
		for x := range BoardCatch[y] {
			transposed[x][y] = BoardCatch[y][x]
		}
	}

	vertical, err := solver.GetScore(BoardCatch, []string{"I", "N", "G"},
		Placement{Word: "TAPING", X: 3, Y: 0, Vertical: true})
	is.NoErr(err)
	horizontal, err := solver.GetScore(transposed, []string{"I", "N", "G"},
		Placement{Word: "TAPING", X: 0, Y: 3})
	is.NoErr(err)
	is.Equal(vertical, horizontal)
	is.Equal(vertical, 18)
}

func TestGetScoreConnectivity(t *testing.T) {
	solver := newTestSolver(t)

	score, err := solver.GetScore(EmptyBoard(), []string{"C", "A", "T"},
		Placement{Word: "CAT", X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, NoPlacementScore, score, "disconnected placement must not score")

	score, err = solver.GetScore(EmptyBoard(), []string{"C", "A", "T"},
		Placement{Word: "CAT", X: 5, Y: 7})
	require.NoError(t, err)
	assert.Equal(t, 10, score, "opening placement through the center")
}

func TestGetScoreOffBoard(t *testing.T) {
	solver := newTestSolver(t)

	score, err := solver.GetScore(EmptyBoard(), []string{"C", "A", "T"},
		Placement{Word: "CAT", X: 13, Y: 7})
	require.NoError(t, err)
	assert.Equal(t, NoPlacementScore, score)
}

func TestGetScoreInvalidWord(t *testing.T) {
	solver := newTestSolver(t)

	_, err := solver.GetScore(BoardCatch, []string{"A"}, Placement{Word: "123", X: 0, Y: 0})
	assert.Error(t, err)
}

func TestTileValuesOption(t *testing.T) {
	is := is.New(t)
	solver, err := New([]string{"CAT"}, TileValues(map[rune]int{'C': 1, 'A': 1, 'T': 1}))
	is.NoErr(err)

	score, err := solver.GetScore(EmptyBoard(), []string{"C", "A", "T"},
		Placement{Word: "CAT", X: 5, Y: 7})
	is.NoErr(err)
	is.Equal(score, 6) // flat values, doubled by the center square
}

func TestPremiumLayoutValidation(t *testing.T) {
	_, err := New(testWords, PremiumLayout([]string{"***"}))
	assert.ErrorContains(t, err, "invalid premium layout")

	asymmetric := append([]string(nil), StandardPremiumLayout...)
	asymmetric[0] = `T**d***d***d**T`
	_, err = New(testWords, PremiumLayout(asymmetric))
	assert.ErrorContains(t, err, "not symmetric")
}

func TestSolveBoardValidation(t *testing.T) {
	solver := newTestSolver(t)

	_, err := solver.Solve([][]string{{"A"}}, []string{"A"})
	assert.ErrorContains(t, err, "invalid board")

	ragged := EmptyBoard()
	ragged[3] = append(ragged[3], "*")
	_, err = solver.Solve(ragged, []string{"A"})
	assert.ErrorContains(t, err, "invalid board at row 3")

	multi := EmptyBoard()
	multi[0][0] = "AB"
	_, err = solver.Solve(multi, []string{"A"})
	assert.ErrorContains(t, err, "cannot convert")

	// Non-alphabetic cells are read as free squares, not rejected.
	digits := EmptyBoard()
	digits[0][0] = "1"
	_, err = solver.Solve(digits, []string{"A"})
	assert.NoError(t, err)
}

func TestSolveRackValidation(t *testing.T) {
	solver := newTestSolver(t)

	for _, rack := range [][]string{{""}, {"AB"}, {"1"}} {
		_, err := solver.Solve(EmptyBoard(), rack)
		assert.ErrorContains(t, err, "invalid rack")
	}

	// Lower-case rack entries are normalized, not rejected.
	solutions, err := solver.Solve(EmptyBoard(), []string{"c", "a", "t"})
	require.NoError(t, err)
	assert.Contains(t, solutions, Solution{Word: "CAT", X: 5, Y: 7, Score: 10})
}

func TestEmptyBoardShape(t *testing.T) {
	is := is.New(t)
	board := EmptyBoard()
	is.Equal(len(board), BoardDim)
	for _, row := range board {
		is.Equal(len(row), BoardDim)
		for _, cell := range row {
			is.Equal(cell, "*")
		}
	}
}
