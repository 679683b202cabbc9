package commands

import (
	"context"
	"flag"
	"fmt"
)

var UpdateCmd = Update{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		worksheet:   "",
		source:      APP,
		debug:       false,
	},

	row: -1,
}

type Update struct {
	command
	row   int
	flags *flag.FlagSet
}

func (cmd *Update) Name() string {
	return "update"
}

func (cmd *Update) Description() string {
	return "Updates the row at a position in a worksheet"
}

func (cmd *Update) Usage() string {
	return "--credentials <file> --url <url> --worksheet <id> --row <position> <column=value>..."
}

func (cmd *Update) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] update [options] --url <URL> --worksheet <id> --row <position> <column=value>...\n", APP)
	fmt.Println()
	fmt.Println("  Overwrites the given column values of the row at the (zero-based) position. Columns that are")
	fmt.Println("  not listed keep their current value")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s update --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`              --worksheet "331247936" \`)
	fmt.Println(`              --row 2 "name=X"`)
	fmt.Println()
}

func (cmd *Update) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("update")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet ID e.g. '331247936'")
	flagset.IntVar(&cmd.row, "row", cmd.row, "Zero-based row position")

	cmd.flags = flagset

	return flagset
}

func (cmd *Update) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if cmd.row < 0 {
		return fmt.Errorf("--row is a required option")
	}

	row, err := fields(cmd.flags.Args())
	if err != nil {
		return err
	}

	ctx := context.Background()

	ws, err := cmd.handle(ctx)
	if err != nil {
		return err
	}

	updated, err := ws.UpdateRow(ctx, cmd.row, row)
	if err != nil {
		return err
	}

	infof("Updated row %d to %v", cmd.row, updated)

	return nil
}
