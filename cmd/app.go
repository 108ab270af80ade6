// Package cmd implements the scout command line.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/scout"
	"github.com/etnz/scout/cache"
	"github.com/etnz/scout/config"
	"github.com/etnz/scout/crunchbase"
	"github.com/etnz/scout/streak"
	"github.com/etnz/scout/toggl"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&serveCmd{}, "dashboard")
	c.Register(&dashboardCmd{}, "dashboard")
	c.Register(&ratesCmd{}, "dashboard")
	c.Register(&roundsCmd{}, "dashboard")

	c.Register(&networkCmd{}, "startups")
	c.Register(&wordsCmd{}, "startups")
	c.Register(&matchCmd{}, "startups")
	c.Register(&orgCmd{}, "startups")
	c.Register(&domainCmd{}, "startups")

	c.Register(&loginCmd{}, "setup")
	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", config.DefaultPath, "Path to the config file (TOML, YAML or JSON)")
	cacheDir   = flag.String("cache-dir", "", "Directory caching HTTP responses for the day, no cache when empty")
	verbose    = flag.Bool("v", false, "Log HTTP round trips and cache activity, always on for serve")
)

// stdout is where commands print their result.
var stdout io.Writer = os.Stdout

// logged are the commands that always log, they run unattended.
var logged = map[string]bool{"serve": true}

// SetupLogging silences the log of command unless -v is set or command runs
// unattended. Call it once flags are parsed.
func SetupLogging(command string) {
	if *verbose || logged[command] {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// loadConfig loads the config and checks that keys are set.
func loadConfig(keys ...string) (*config.Config, error) {
	cfg, err := config.Load(*configFile, config.Keyring{})
	if err != nil {
		return nil, err
	}
	if err := cfg.Require(keys...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newToggl(cfg *config.Config) *toggl.Client {
	return toggl.New(cfg.TogglKey, cfg.TogglWorkspace, *cacheDir)
}

func newStreak(cfg *config.Config) *streak.Client {
	return streak.New(cfg.StreakKey, cfg.StartupNetwork, *cacheDir)
}

func newCrunchbase(cfg *config.Config) *crunchbase.Client {
	return crunchbase.New(cfg.CBKey, *cacheDir)
}

// newSources returns the sources of the dashboard.
func newSources(cfg *config.Config) scout.Sources {
	return scout.Sources{
		Projects: newToggl(cfg),
		Network:  newStreak(cfg),
		Rounds:   newCrunchbase(cfg),
	}
}

// openStore returns the result cache: redis when configured, in memory otherwise.
func openStore(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	if cfg.CacheURL == "" {
		return cache.NewMemory(), nil
	}
	store, err := cache.OpenRedis(ctx, cfg.CacheURL)
	if err != nil {
		return nil, fmt.Errorf("cannot open cache %s: %w", cfg.CacheURL, err)
	}
	return store, nil
}

// parseOn parses the -on flag, today when empty.
func parseOn(on string) (scout.Date, error) {
	if on == "" {
		return scout.Today(), nil
	}
	return scout.ParseDate(on)
}

// fail prints err and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
