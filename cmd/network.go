package cmd

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type networkCmd struct {
	json bool
}

func (*networkCmd) Name() string     { return "network" }
func (*networkCmd) Synopsis() string { return "summarize the startup network" }
func (*networkCmd) Usage() string {
	return `scout network [-json]

  Counts the startups of the network pipeline by stage, contact level and quality.
  With -json, prints every startup instead.

`
}

func (c *networkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the startups as JSON")
}

func (c *networkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig("streak_key", "startup_network")
	if err != nil {
		return fail("%v", err)
	}
	startups, err := newStreak(cfg).Network(ctx)
	if err != nil {
		return fail("cannot list startup network: %v", err)
	}

	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(startups); err != nil {
			return fail("%v", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.NetworkMarkdown(startups))
	return subcommands.ExitSuccess
}
