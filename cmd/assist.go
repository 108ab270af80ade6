package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/scout"
	"github.com/etnz/scout/agent"
	"github.com/etnz/scout/cache"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `scout assist [<question>]

  Starts an interactive session with an assistant that reads the dashboard and searches
  the web for news about startups. The question, if any, is asked first.
  Requires the gemini_key config key.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig("gemini_key")
	if err != nil {
		return fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return fail("invalid config:\n%v", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fail("cannot initialize Gemini's client: %v", err)
	}

	// The dashboard is computed once per session.
	snapshot := cache.Memoize(cache.NewMemory(), "dashboard", cache.DefaultTTL, func(ctx context.Context) (*scout.Dashboard, error) {
		return scout.NewDashboard(ctx, newSources(cfg), scout.Today())
	})

	a := agent.New(stdout, os.Stdin, agent.NewAnalyst(snapshot), agent.NewScout())
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		return fail("assistant failed: %v", err)
	}
	return subcommands.ExitSuccess
}
