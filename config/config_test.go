package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load(nil))
	is.Equal(c.LexiconPath, "./data/lexica")
	is.Equal(c.DefaultLexicon, "CSW19")
	is.Equal(c.MinimumWordLength, 3)
}

func TestLoadArgs(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load([]string{
		"-lexicon-path", "/tmp/lexica",
		"-minimum-word-length", "4",
	}))
	is.Equal(c.LexiconPath, "/tmp/lexica")
	is.Equal(c.MinimumWordLength, 4)
}
