package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scout"
	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	on string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "print the dashboard" }
func (*dashboardCmd) Usage() string {
	return `scout dashboard [-on <date>]

  Prints the dashboard summary: the billing rates and last week's funding rounds.

`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "Day to compute the dashboard on (YYYY-MM-DD, or relative like -7d), today by default")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseOn(c.on)
	if err != nil {
		return fail("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return fail("invalid config:\n%v", err)
	}

	d, err := scout.NewDashboard(ctx, newSources(cfg), on)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
