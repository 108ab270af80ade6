package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scout"
	"github.com/etnz/scout/renderer"
	"github.com/google/subcommands"
)

type roundsCmd struct {
	on    string
	days  int
	table bool
	all   bool
}

func (*roundsCmd) Name() string     { return "rounds" }
func (*roundsCmd) Synopsis() string { return "print the funding rounds of the startup network" }
func (*roundsCmd) Usage() string {
	return `scout rounds [-days <n>] [-table] [-all]

  Prints the funding rounds announced by startups of the network over the last days,
  sorted by amount raised. Startups out of scope are skipped unless -all is set.

`
}

func (c *roundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "Last day of the window, today by default")
	f.IntVar(&c.days, "days", scout.RoundsWindow, "Number of days up to -on, -on included")
	f.BoolVar(&c.table, "table", false, "Print a table with the round details")
	f.BoolVar(&c.all, "all", false, "Include startups out of scope")
}

func (c *roundsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseOn(c.on)
	if err != nil {
		return fail("%v", err)
	}
	cfg, err := loadConfig("streak_key", "startup_network", "cb_key")
	if err != nil {
		return fail("%v", err)
	}

	network, err := newStreak(cfg).Network(ctx)
	if err != nil {
		return fail("cannot list startup network: %v", err)
	}
	rounds, err := newCrunchbase(cfg).Rounds(ctx, scout.Permalinks(network))
	if err != nil {
		return fail("cannot list funding rounds: %v", err)
	}

	var excluded []string
	if !c.all {
		excluded = append(excluded, scout.StageOutOfScope)
	}
	w := scout.LastDays(on, c.days)
	r := scout.NewRoundsReport(scout.JoinRounds(rounds, network), w.From, w.To, excluded...)
	if c.table {
		printMarkdown(renderer.RoundsTableMarkdown(r.Rounds))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RoundsMarkdown(r))
	return subcommands.ExitSuccess
}
