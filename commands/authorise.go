package commands

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		source:      APP,
		debug:       false,
	},
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return fmt.Sprintf("Authorises %s to access Google Sheets and caches the OAuth tokens", APP)
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Printf("  Authorises %s to access Google Sheets and caches the OAuth tokens for subsequent commands\n", APP)
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s authorise --credentials "credentials.json"`+"\n", APP)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	if _, err := authorize(cmd.credentials, tokens, SHEETS, DRIVE); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("Authorised %s - tokens cached in %s", APP, tokens)

	return nil
}
