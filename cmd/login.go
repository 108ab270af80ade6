package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/etnz/scout/config"
	"github.com/google/subcommands"
)

// secretStore saves API keys for later runs.
type secretStore interface {
	StoreSecret(key, value string) error
	DeleteSecret(key string) error
}

var (
	secrets secretStore = config.Keyring{}
	stdin   io.Reader   = os.Stdin
)

type loginCmd struct {
	delete bool
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "store an API key in the system keyring" }
func (*loginCmd) Usage() string {
	return `scout login [-delete] <key>

  Reads the value of an API key on the standard input and stores it in the system
  keyring, where scout looks for keys missing from the environment and the config file.
  Keys: ` + strings.Join(config.SecretKeys, ", ") + `

`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.delete, "delete", false, "Remove the key from the keyring instead")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a key is required.")
		return subcommands.ExitUsageError
	}
	key := f.Arg(0)
	if !slices.Contains(config.SecretKeys, key) {
		return fail("unknown key %q, expected one of %s", key, strings.Join(config.SecretKeys, ", "))
	}

	if c.delete {
		if err := secrets.DeleteSecret(key); err != nil {
			return fail("%v", err)
		}
		fmt.Fprintf(stdout, "%s removed from the keyring.\n", key)
		return subcommands.ExitSuccess
	}

	fmt.Fprintf(stdout, "%s: ", key)
	value, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return fail("cannot read %s: %v", key, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fail("empty %s, nothing stored", key)
	}
	if err := secrets.StoreSecret(key, value); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stdout, "%s stored in the keyring.\n", key)
	return subcommands.ExitSuccess
}
