package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scout"
	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct {
	on string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "print the effective hourly rates of the projects" }
func (*ratesCmd) Usage() string {
	return `scout rates [-on <date>]

  Prints the all-time and active hourly rates, then every fixed-fee project with the
  fee earned to date, its hours and its effective rate. See 'scout topic dashboard'.

`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "Day to compute the rates on, today by default")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseOn(c.on)
	if err != nil {
		return fail("%v", err)
	}
	cfg, err := loadConfig("toggl_key", "toggl_workspace")
	if err != nil {
		return fail("%v", err)
	}

	projects, err := newToggl(cfg).Projects(ctx)
	if err != nil {
		return fail("cannot list projects: %v", err)
	}
	printMarkdown(renderer.BillingMarkdown(scout.NewBillingReport(projects, on)))
	return subcommands.ExitSuccess
}
