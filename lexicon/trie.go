// Package lexicon contains the dictionary-indexing structures shared by the
// solvers: a letter trie for path-based searches and a positional index for
// constraint-based lookups, along with word normalization helpers.
package lexicon

// A Node is a single node in a Trie. Each outgoing edge is labeled with a
// letter. A node that completes a word holds that word; the root holds none.
// Nodes own their children outright; the structure is a strict tree.
type Node struct {
	children map[rune]*Node
	word     string
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Child returns the child node for the given letter, or nil if there is none.
func (n *Node) Child(letter rune) *Node {
	return n.children[letter]
}

// Word returns the word this node completes, or the empty string.
func (n *Node) Word() string {
	return n.word
}

func (n *Node) child(letter rune) *Node {
	c, ok := n.children[letter]
	if !ok {
		c = newNode()
		n.children[letter] = c
	}
	return c
}

// A Trie stores words as root-to-node letter paths. It is populated once at
// solver construction and read-only during search.
type Trie struct {
	root  *Node
	words WordSet
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode(), words: make(WordSet)}
}

// Root returns the root node, which carries no letter.
func (t *Trie) Root() *Node {
	return t.root
}

// Add inserts a word along a root-to-leaf letter path, creating nodes only
// where absent, and marks the terminal node as word-completing. Re-adding a
// word is a no-op in effect.
func (t *Trie) Add(word string) {
	node := t.root
	for _, letter := range word {
		node = node.child(letter)
	}
	node.word = word
	t.words.Add(word)
}

// Contains reports whether the word was added to the trie.
func (t *Trie) Contains(word string) bool {
	return t.words.Contains(word)
}

// Len returns the number of distinct words added.
func (t *Trie) Len() int {
	return len(t.words)
}

// Clear discards the entire tree below the root. Nodes own their subtrees
// exclusively, so dropping the root releases everything.
func (t *Trie) Clear() {
	t.root = newNode()
	t.words = make(WordSet)
}
