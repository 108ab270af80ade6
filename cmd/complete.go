package cmd

import (
	"flag"

	"github.com/etnz/scout/config"
	"github.com/etnz/scout/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// flagPredictors predicts nothing after boolean flags, something after the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// argPredictors are the predictors of the commands' positional arguments.
func argPredictors() map[string]complete.Predictor {
	topics, _ := docs.GetAllTopics()
	return map[string]complete.Predictor{
		"topic": predict.Set(append([]string{"readme"}, topics...)),
		"login": predict.Set(config.SecretKeys),
	}
}

// Completion returns the shell completion of the commands registered in c.
//
// Install it with `COMP_INSTALL=1 scout`.
func Completion(c *subcommands.Commander) *complete.Command {
	flags := flagPredictors(flag.CommandLine)
	flags["config"] = predict.Files("*")
	flags["cache-dir"] = predict.Dirs("*")

	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flags,
	}
	args := argPredictors()
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  args[cmd.Name()],
		}
	})
	return root
}
