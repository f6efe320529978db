package scrabble

// This file contains a sample filled board, used solely for testing.

// BoardCatch is a mid-game position with several crossing words and one
// played blank (the lower-case c in CATCH).
var BoardCatch = [][]string{
	{"T", "E", "S", "T", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "B", "O", "A", "R", "D", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "O", "*", "P", "*", "O", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "N", "*", "*", "*", "I", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "Y", "*", "*", "*", "N", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "G", "R", "E", "E", "T", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "R", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "C", "A", "T", "c", "H", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "O", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "P", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
	{"*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*", "*"},
}
