package commands

import (
	"context"
	"flag"
	"fmt"
)

var DeleteCmd = Delete{
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

type Delete struct {
	command
	row int
}

func (cmd *Delete) Name() string {
	return "delete"
}

func (cmd *Delete) Description() string {
	return "Deletes the row at a position in a worksheet"
}

func (cmd *Delete) Usage() string {
	return "--credentials <file> --url <url> --worksheet <id> --row <position>"
}

func (cmd *Delete) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] delete [options] --url <URL> --worksheet <id> --row <position>\n", APP)
	fmt.Println()
	fmt.Println("  Deletes the row at the (zero-based) position. Subsequent rows shift up by one position")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s delete --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`              --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`              --worksheet "331247936" \`)
	fmt.Println(`              --row 2`)
	fmt.Println()
}

func (cmd *Delete) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("delete")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet ID e.g. '331247936'")
	flagset.IntVar(&cmd.row, "row", cmd.row, "Zero-based row position")

	return flagset
}

func (cmd *Delete) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if cmd.row < 0 {
		return fmt.Errorf("--row is a required option")
	}

	ctx := context.Background()

	ws, err := cmd.handle(ctx)
	if err != nil {
		return err
	}

	if err := ws.DeleteRow(ctx, cmd.row); err != nil {
		return err
	}

	infof("Deleted row %d", cmd.row)

	return nil
}
