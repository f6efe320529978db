package config

import "github.com/namsral/flag"

type Config struct {
	LexiconPath       string
	DefaultLexicon    string
	MinimumWordLength int
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordsolver", flag.ContinueOnError)
	fs.StringVar(&c.LexiconPath, "lexicon-path", "./data/lexica", "directory holding lexicon files")
	fs.StringVar(&c.DefaultLexicon, "default-lexicon", "CSW19", "the default lexicon to use")
	fs.IntVar(&c.MinimumWordLength, "minimum-word-length", 3, "the shortest word a boggle search will report")
	err := fs.Parse(args)
	return err
}
