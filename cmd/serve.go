package cmd

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/scout/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard web page" }
func (*serveCmd) Usage() string {
	return `scout serve [-addr <address>]

  Serves the dashboard page on / and its data on /api/v1/billing and /api/v1/rounds.
  Fetched results are reused for cache_ttl, POST /refresh drops them.
  When warm_schedule is set, the dashboard is recomputed on that cron schedule.

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on, overrides the addr config key")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return fail("invalid config:\n%v", err)
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fail("%v", err)
	}
	s := server.New(newSources(cfg), store, cfg.CacheTTL)

	if cfg.WarmSchedule != "" {
		warmer, err := server.NewWarmer(s, cfg.WarmSchedule)
		if err != nil {
			return fail("%v", err)
		}
		warmer.Start()
		defer warmer.Stop()
	}

	if err := s.Serve(ctx, cfg.Addr); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}
