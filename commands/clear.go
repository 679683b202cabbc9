package commands

import (
	"context"
	"flag"
	"fmt"
)

var ClearCmd = Clear{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		worksheet:   "",
		source:      APP,
		debug:       false,
	},
}

type Clear struct {
	command
}

func (cmd *Clear) Name() string {
	return "clear"
}

func (cmd *Clear) Description() string {
	return "Deletes every row in a worksheet"
}

func (cmd *Clear) Usage() string {
	return "--credentials <file> --url <url> --worksheet <id>"
}

func (cmd *Clear) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] clear [options] --url <URL> --worksheet <id>\n", APP)
	fmt.Println()
	fmt.Println("  Deletes every row in a worksheet, leaving the header row in place")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s clear --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`             --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`             --worksheet "331247936"`)
	fmt.Println()
}

func (cmd *Clear) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("clear")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet ID e.g. '331247936'")

	return flagset
}

func (cmd *Clear) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	ctx := context.Background()

	ws, err := cmd.handle(ctx)
	if err != nil {
		return err
	}

	if err := ws.DeleteAllRows(ctx); err != nil {
		return err
	}

	infof("Cleared worksheet %s", cmd.worksheet)

	return nil
}
