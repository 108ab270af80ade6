package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/scout"
	"github.com/etnz/scout/crunchbase"
	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type orgCmd struct {
	history bool
}

func (*orgCmd) Name() string     { return "org" }
func (*orgCmd) Synopsis() string { return "print an organization and its funding history" }
func (*orgCmd) Usage() string {
	return `scout org [-history=false] <permalink>

  Prints what the startup-data service knows about an organization, by permalink or
  organization url, and its funding history.

`
}

func (c *orgCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.history, "history", true, "Fetch the funding history too")
}

func (c *orgCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a permalink is required.")
		return subcommands.ExitUsageError
	}
	permalink := scout.PermalinkOf(f.Arg(0))

	cfg, err := loadConfig("cb_key")
	if err != nil {
		return fail("%v", err)
	}
	cb := newCrunchbase(cfg)

	entities, err := cb.Search(ctx, []string{permalink}, false)
	if err != nil {
		return fail("cannot search %s: %v", permalink, err)
	}
	if len(entities) == 0 {
		fmt.Fprintf(stdout, "No organization %s.\n", permalink)
		return subcommands.ExitSuccess
	}
	org := crunchbase.ParseOrganization(entities[0].Properties)

	var card *scout.OrganizationCard
	if c.history {
		history, err := cb.OrganizationRounds(ctx, permalink)
		if err != nil {
			return fail("%v", err)
		}
		card = &history
	}
	printMarkdown(renderer.OrganizationMarkdown(org, card))
	return subcommands.ExitSuccess
}
