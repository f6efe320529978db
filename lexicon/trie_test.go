package lexicon

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestTrieAdd(t *testing.T) {
	trie := NewTrie()
	trie.Add("CAT")
	trie.Add("CATS")
	trie.Add("COT")

	node := trie.Root().Child('C')
	assert.NotNil(t, node)
	assert.Equal(t, "", node.Word())

	node = node.Child('A')
	assert.NotNil(t, node)
	node = node.Child('T')
	assert.NotNil(t, node)
	assert.Equal(t, "CAT", node.Word())

	// CAT is a prefix of CATS; both terminal nodes are marked.
	assert.Equal(t, "CATS", node.Child('S').Word())
	assert.Nil(t, node.Child('Z'))
}

func TestTrieReAddIsNoop(t *testing.T) {
	is := is.New(t)
	trie := NewTrie()
	trie.Add("DOG")
	trie.Add("DOG")
	is.Equal(trie.Len(), 1)
	is.True(trie.Contains("DOG"))
	is.True(!trie.Contains("DO"))
}

func TestTrieClear(t *testing.T) {
	is := is.New(t)
	trie := NewTrie()
	trie.Add("ONE")
	trie.Add("TWO")
	trie.Clear()
	is.Equal(trie.Len(), 0)
	is.Equal(trie.Root().Child('O'), nil)

	// The trie is usable again after a clear.
	trie.Add("THREE")
	is.True(trie.Contains("THREE"))
}
