package lexicon

// indexKey is the composite key of the positional index: a word length, a
// letter, and the letter's position within the word.
type indexKey struct {
	length   int
	letter   rune
	position int
}

// A PositionalIndex maps (length, letter, position) triples to the set of
// words of that length having that letter at that position. A word of length
// L is registered under exactly its own L keys, so it is reachable from
// several of them. The index also keeps a plain length -> word-set table for
// unconstrained lookups.
type PositionalIndex struct {
	table    map[indexKey]WordSet
	byLength map[int]WordSet
}

// NewPositionalIndex creates an empty positional index.
func NewPositionalIndex() *PositionalIndex {
	return &PositionalIndex{
		table:    make(map[indexKey]WordSet),
		byLength: make(map[int]WordSet),
	}
}

// Add registers the word under one key per (length, letter, position) pair
// present in the word, and under its length class.
func (ix *PositionalIndex) Add(word string) {
	letters := []rune(word)
	length := len(letters)
	for position, letter := range letters {
		key := indexKey{length, letter, position}
		set, ok := ix.table[key]
		if !ok {
			set = make(WordSet)
			ix.table[key] = set
		}
		set.Add(word)
	}
	class, ok := ix.byLength[length]
	if !ok {
		class = make(WordSet)
		ix.byLength[length] = class
	}
	class.Add(word)
}

// Lookup returns the set of registered words with the given length and the
// given letter at the given position. Unknown keys yield an empty set, never
// an error. The returned set is shared; callers must not mutate it.
func (ix *PositionalIndex) Lookup(length int, letter rune, position int) WordSet {
	return ix.table[indexKey{length, letter, position}]
}

// WordsOfLength returns the set of all registered words of the given length.
// The returned set is shared; callers must not mutate it.
func (ix *PositionalIndex) WordsOfLength(length int) WordSet {
	return ix.byLength[length]
}

// Clear drops every registered word.
func (ix *PositionalIndex) Clear() {
	ix.table = make(map[indexKey]WordSet)
	ix.byLength = make(map[int]WordSet)
}
