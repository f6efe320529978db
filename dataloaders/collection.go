// Package dataloaders reads word collections off disk so that the solver
// packages never have to touch files themselves.
package dataloaders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mvarley/wordsolver/config"
	"github.com/mvarley/wordsolver/lexicon"
)

// Collection reads the named word list from the configured lexicon
// directory and tokenizes it into words. When the named list does not
// exist, the configured default lexicon is tried before giving up.
func Collection(cfg *config.Config, name string) ([]string, error) {
	text, err := os.ReadFile(collectionPath(cfg, name))
	if err != nil && name != cfg.DefaultLexicon {
		log.Debug().Str("collection", name).Str("fallback", cfg.DefaultLexicon).
			Msg("collection not found; trying the default lexicon")
		text, err = os.ReadFile(collectionPath(cfg, cfg.DefaultLexicon))
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load collection %q: %w", name, err)
	}

	words := lexicon.Tokenize(string(text))
	log.Info().Str("collection", name).Int("words", len(words)).Msg("loaded collection")
	return words, nil
}

func collectionPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.LexiconPath, name+".txt")
}
