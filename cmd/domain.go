package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/scout"
	"github.com/google/subcommands"
)

type domainCmd struct{}

func (*domainCmd) Name() string     { return "domain" }
func (*domainCmd) Synopsis() string { return "print the registered domain of websites" }
func (*domainCmd) Usage() string {
	return `scout domain <website>...

  Prints the registered domain scout uses to match each website, followed by
  "(excluded)" when the domain cannot identify a company.

`
}

func (*domainCmd) SetFlags(f *flag.FlagSet) {}

func (*domainCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a website is required.")
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, website := range f.Args() {
		domain, ok := scout.FindDomain(website)
		switch {
		case !ok:
			status = fail("no domain in %q", website)
		case scout.IsExcludedDomain(domain):
			fmt.Fprintf(stdout, "%s (excluded)\n", domain)
		default:
			fmt.Fprintln(stdout, domain)
		}
	}
	return status
}
