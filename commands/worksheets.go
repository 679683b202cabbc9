package commands

import (
	"context"
	"flag"
	"fmt"
)

var WorksheetsCmd = Worksheets{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		source:      APP,
		debug:       false,
	},
}

type Worksheets struct {
	command
}

func (cmd *Worksheets) Name() string {
	return "worksheets"
}

func (cmd *Worksheets) Description() string {
	return "Lists the worksheets in a spreadsheet"
}

func (cmd *Worksheets) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Worksheets) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] worksheets [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the ID and title of every worksheet in a spreadsheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s worksheets --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                  --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *Worksheets) FlagSet() *flag.FlagSet {
	return cmd.flagset("worksheets")
}

func (cmd *Worksheets) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	ctx := context.Background()

	client, err := cmd.client(ctx, SHEETS)
	if err != nil {
		return err
	}

	spreadsheet, err := cmd.spreadsheetID()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s", spreadsheet)
	}

	worksheets, err := client.ListWorksheets(ctx, spreadsheet)
	if err != nil {
		return err
	}

	for _, ws := range worksheets {
		fmt.Printf("  %-12s  %s\n", ws.ID, ws.Title)
	}

	return nil
}
