package commands

import (
	"context"
	"flag"
	"fmt"
)

var ListCmd = List{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		source:      APP,
		debug:       false,
	},
}

type List struct {
	command
}

func (cmd *List) Name() string {
	return "list"
}

func (cmd *List) Description() string {
	return "Lists the spreadsheets accessible to the configured credentials"
}

func (cmd *List) Usage() string {
	return "--credentials <file>"
}

func (cmd *List) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] list [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the ID and title of every spreadsheet accessible to the configured credentials")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s list --credentials "credentials.json"`+"\n", APP)
	fmt.Println()
}

func (cmd *List) FlagSet() *flag.FlagSet {
	return cmd.flagset("list")
}

func (cmd *List) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	ctx := context.Background()

	client, err := cmd.client(ctx, SHEETS, DRIVE)
	if err != nil {
		return err
	}

	spreadsheets, err := client.ListSpreadsheets(ctx)
	if err != nil {
		return err
	}

	for _, s := range spreadsheets {
		fmt.Printf("  %-44s  %s\n", s.ID, s.Title)
	}

	return nil
}
