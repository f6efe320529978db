package scrabble

// rackTiles works out which rack tiles supply the word's letters at the
// placement offsets. Real tiles are preferred; a blank is consumed only
// when the needed letter is not on the rack, and comes back lower-case so
// later stages can tell it apart. Returns false if the rack cannot supply
// the placements.
func rackTiles(rack []rune, word []rune, placements []int) ([]rune, bool) {
	avail := append([]rune(nil), rack...)
	tiles := make([]rune, 0, len(placements))
	for _, pos := range placements {
		letter := word[pos]
		if i := indexRune(avail, letter); i >= 0 {
			avail = removeAt(avail, i)
			tiles = append(tiles, letter)
		} else if i := indexRune(avail, BlankTile); i >= 0 {
			avail = removeAt(avail, i)
			tiles = append(tiles, toLower(letter))
		} else {
			return nil, false
		}
	}
	return tiles, true
}

func indexRune(runes []rune, r rune) int {
	for i, x := range runes {
		if x == r {
			return i
		}
	}
	return -1
}

func removeAt(runes []rune, i int) []rune {
	return append(runes[:i], runes[i+1:]...)
}
