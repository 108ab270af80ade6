// Package config loads the API keys and server settings of scout.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "scout.toml"

// EnvPrefix prefixes the environment variables overriding the config file.
const EnvPrefix = "SCOUT"

// Secret keys, also the names under which `scout login` stores them in the keyring.
const (
	TogglKey  = "toggl_key"
	StreakKey = "streak_key"
	CBKey     = "cb_key"
	GeminiKey = "gemini_key"
)

// SecretKeys lists the keys that can be stored in the system keyring.
var SecretKeys = []string{TogglKey, StreakKey, CBKey, GeminiKey}

// Config is the top-level configuration.
type Config struct {
	// TogglKey is the Toggl API token.
	TogglKey string `mapstructure:"toggl_key"`
	// TogglWorkspace is the Toggl workspace id.
	TogglWorkspace string `mapstructure:"toggl_workspace"`
	// StreakKey is the Streak API key.
	StreakKey string `mapstructure:"streak_key"`
	// StartupNetwork is the key of the Streak pipeline listing the startups.
	StartupNetwork string `mapstructure:"startup_network"`
	// CBKey is the Crunchbase user key.
	CBKey string `mapstructure:"cb_key"`
	// GeminiKey is only needed by `scout assist`.
	GeminiKey string `mapstructure:"gemini_key"`

	// CacheTTL bounds how long fetched results are reused.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// CacheURL selects a redis cache (redis://host:port/db), in memory when empty.
	CacheURL string `mapstructure:"cache_url"`
	// Addr is the address the web server listens on.
	Addr string `mapstructure:"addr"`
	// WarmSchedule is a cron spec recomputing the dashboard, disabled when empty.
	WarmSchedule string `mapstructure:"warm_schedule"`
}

// SecretStore looks up secrets absent from the file and the environment.
type SecretStore interface {
	Secret(key string) (string, error)
}

func defaults(v *viper.Viper) {
	v.SetDefault("toggl_key", "")
	v.SetDefault("toggl_workspace", "")
	v.SetDefault("streak_key", "")
	v.SetDefault("startup_network", "")
	v.SetDefault("cb_key", "")
	v.SetDefault("gemini_key", "")
	v.SetDefault("cache_ttl", "24h")
	v.SetDefault("cache_url", "")
	v.SetDefault("addr", ":8080")
	v.SetDefault("warm_schedule", "")
}

// Load reads the configuration from path, overridden by the environment.
//
// A .env file in the working directory is loaded first. A missing config file is
// not an error: every key can come from the environment or, for secrets, from
// the store. store may be nil.
func Load(path string, store SecretStore) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	defaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if store != nil {
		cfg.fillSecrets(store)
	}
	return cfg, nil
}

func (c *Config) fillSecrets(store SecretStore) {
	for _, key := range SecretKeys {
		field := c.secret(key)
		if *field != "" {
			continue
		}
		value, err := store.Secret(key)
		if err != nil {
			continue
		}
		*field = value
	}
}

func (c *Config) secret(key string) *string {
	switch key {
	case TogglKey:
		return &c.TogglKey
	case StreakKey:
		return &c.StreakKey
	case CBKey:
		return &c.CBKey
	case GeminiKey:
		return &c.GeminiKey
	}
	panic(fmt.Sprintf("unknown secret %q", key))
}

// Require reports every key among keys that has no value.
func (c *Config) Require(keys ...string) error {
	values := map[string]string{
		"toggl_key":       c.TogglKey,
		"toggl_workspace": c.TogglWorkspace,
		"streak_key":      c.StreakKey,
		"startup_network": c.StartupNetwork,
		"cb_key":          c.CBKey,
		"gemini_key":      c.GeminiKey,
		"cache_url":       c.CacheURL,
		"addr":            c.Addr,
		"warm_schedule":   c.WarmSchedule,
	}
	var errs []error
	for _, key := range keys {
		value, ok := values[key]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown config key %q", key))
			continue
		}
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required (set it in the config file, as %s_%s or with `scout login`)", key, EnvPrefix, strings.ToUpper(key)))
		}
	}
	return errors.Join(errs...)
}

// Validate reports every key the dashboard needs and that is missing.
func (c *Config) Validate() error {
	err := c.Require("toggl_key", "toggl_workspace", "streak_key", "startup_network", "cb_key")
	if c.CacheTTL < 0 {
		err = errors.Join(err, fmt.Errorf("cache_ttl must not be negative, got %v", c.CacheTTL))
	}
	return err
}

// Redacted returns a copy of c safe to log.
func (c Config) Redacted() Config {
	for _, key := range SecretKeys {
		if p := c.secret(key); *p != "" {
			*p = "****"
		}
	}
	return c
}
