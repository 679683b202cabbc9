package commands

import (
	"context"
	"flag"
	"fmt"
)

var InsertCmd = Insert{
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

type Insert struct {
	command
	flags *flag.FlagSet
}

func (cmd *Insert) Name() string {
	return "insert"
}

func (cmd *Insert) Description() string {
	return "Appends a row to a worksheet"
}

func (cmd *Insert) Usage() string {
	return "--credentials <file> --url <url> --worksheet <id> <column=value>..."
}

func (cmd *Insert) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] insert [options] --url <URL> --worksheet <id> <column=value>...\n", APP)
	fmt.Println()
	fmt.Println("  Appends a row with the given column values to the end of a worksheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s insert --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`              --worksheet "331247936" \`)
	fmt.Println(`              "name=D" "quantity=4"`)
	fmt.Println()
}

func (cmd *Insert) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("insert")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet ID e.g. '331247936'")

	cmd.flags = flagset

	return flagset
}

func (cmd *Insert) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	row, err := fields(cmd.flags.Args())
	if err != nil {
		return err
	}

	ctx := context.Background()

	ws, err := cmd.handle(ctx)
	if err != nil {
		return err
	}

	inserted, err := ws.InsertRow(ctx, row)
	if err != nil {
		return err
	}

	infof("Inserted row %v", inserted)

	return nil
}
