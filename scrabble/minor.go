package scrabble

// minorScores precomputes, for every free square, the set of letters that
// may legally be placed there and the points the resulting cross word is
// worth. The matrix is indexed [y][x]; a missing letter key means the
// cross word it would form is not in the dictionary. Both cases of each
// letter are present: lower-case keys score the cross word with a blank.
//
// Squares are walked down each column. A run of squares around a free cell
// (the letters above it, the cell, the letters below it) fixes the shape of
// any cross word through that cell; a one-square run has no cross word and
// gets the shared allow-anything cell.
func (s *Solver) minorScores() [][]map[rune]int {
	minor := make([][]map[rune]int, BoardDim)
	for y := range minor {
		minor[y] = make([]map[rune]int, BoardDim)
		for x := range minor[y] {
			minor[y][x] = map[rune]int{}
		}
	}
	for x := 0; x < BoardDim; x++ {
		var letters []rune
		var posX, posY int
		posSet := false
		// y runs one past the edge so a run touching the bottom still
		// terminates; tile() reads 0 there.
		for y := 0; y <= BoardDim; y++ {
			t := s.tile(x, y)
			if !isLetterRune(t) && posSet {
				ind := indexRune(letters, freeCell)
				if len(letters) == 1 {
					minor[posY][posX] = s.allowAll
				} else {
					s.generateMinorScores(letters, posX, posY, ind, minor[posY][posX])
				}
				if t == freeCell {
					// The next free cell's run keeps only the letters
					// between the two cells.
					letters = letters[ind+1:]
				}
			}
			if t == 0 {
				letters = nil
				posSet = false
			} else {
				letters = append(letters, toUpper(t))
			}
			if t == freeCell {
				posX, posY = x, y
				posSet = true
			}
		}
	}
	return minor
}

// generateMinorScores fills one matrix cell: letters is the cross-word run
// with freeCell at offset ind marking the square being scored at (x, y).
// Blanks already on the board were upper-cased into the run and count face
// value here.
func (s *Solver) generateMinorScores(letters []rune, x, y, ind int, cell map[rune]int) {
	letterMult, wordMult := 1, 1
	switch s.premiumAt(x, y) {
	case doubleLetter:
		letterMult = 2
	case tripleLetter:
		letterMult = 3
	case doubleWord:
		wordMult = 2
	case tripleWord:
		wordMult = 3
	}
	base := 0
	reqs := make([]requirement, 0, len(letters)-1)
	for off, l := range letters {
		if l == freeCell {
			continue
		}
		base += s.value(l)
		reqs = append(reqs, requirement{l, off})
	}
	for word := range s.findWords(len(letters), reqs) {
		letter := rune(word[ind])
		if _, seen := cell[letter]; seen {
			continue
		}
		cell[letter] = wordMult * (base + letterMult*s.value(letter))
		cell[toLower(letter)] = wordMult * base
	}
}
