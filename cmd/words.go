package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scout"
	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type wordsCmd struct {
	field string
	top   int
}

func (*wordsCmd) Name() string     { return "words" }
func (*wordsCmd) Synopsis() string { return "count the words of a custom field across the network" }
func (*wordsCmd) Usage() string {
	return `scout words [-field <name>] [-top <n>]

  Counts the words used in a custom field of every startup of the network, the
  description by default, most frequent first.

`
}

func (c *wordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "field", "Description", "Custom field whose words are counted")
	f.IntVar(&c.top, "top", 30, "Number of words to print, all when 0")
}

func (c *wordsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig("streak_key", "startup_network")
	if err != nil {
		return fail("%v", err)
	}
	startups, err := newStreak(cfg).Network(ctx)
	if err != nil {
		return fail("cannot list startup network: %v", err)
	}

	var texts []string
	for _, s := range startups {
		if v, ok := s.Field(c.field); ok {
			texts = append(texts, v.String())
		}
	}
	printMarkdown(renderer.WordsMarkdown(scout.CountWords(texts), c.top))
	return subcommands.ExitSuccess
}
