package dataloaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvarley/wordsolver/config"
)

func writeCollection(t *testing.T, dir, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte(text), 0o644))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Load(nil))
	cfg.LexiconPath = t.TempDir()
	return cfg
}

func TestCollection(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	writeCollection(t, cfg.LexiconPath, "animals", "CAT dog\nhorse, mouse.")

	words, err := Collection(cfg, "animals")
	is.NoErr(err)
	is.Equal(words, []string{"CAT", "dog", "horse", "mouse"})
}

func TestCollectionFallsBackToDefault(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	writeCollection(t, cfg.LexiconPath, cfg.DefaultLexicon, "AA AB AD")

	words, err := Collection(cfg, "missing")
	is.NoErr(err)
	is.Equal(words, []string{"AA", "AB", "AD"})
}

func TestCollectionMissing(t *testing.T) {
	cfg := testConfig(t)

	_, err := Collection(cfg, "missing")
	assert.ErrorContains(t, err, `unable to load collection "missing"`)
}
