// Command scout is the business dashboard of a consultancy working with climate
// startups: billing rates from Toggl, the startup network from Streak and their
// funding rounds from Crunchbase.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/scout/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Completion(commander).Complete("scout")

	flag.Parse()
	cmd.SetupLogging(flag.Arg(0))
	os.Exit(int(commander.Execute(context.Background())))
}
