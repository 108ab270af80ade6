package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/scout/crunchbase"
	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type matchCmd struct{}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "find the organization of a website" }
func (*matchCmd) Usage() string {
	return `scout match <website>

  Searches the startup-data service for the newest organization with the domain of
  the website. See 'scout topic funding'.

`
}

func (*matchCmd) SetFlags(f *flag.FlagSet) {}

func (*matchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a website is required.")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig("cb_key")
	if err != nil {
		return fail("%v", err)
	}

	props, ok, err := newCrunchbase(cfg).Match(ctx, f.Arg(0))
	if err != nil {
		return fail("cannot search %s: %v", f.Arg(0), err)
	}
	if !ok {
		fmt.Fprintf(stdout, "No organization found for %s.\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.OrganizationMarkdown(crunchbase.ParseOrganization(props), nil))
	return subcommands.ExitSuccess
}
