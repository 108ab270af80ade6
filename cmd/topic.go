package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scout/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `scout topic [<topic>...]

  Shows documentation for the given topics, the list of topics by default, '*' for all.

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail("cannot read doc: %v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
