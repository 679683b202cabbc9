package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		worksheet:   "",
		source:      APP,
		debug:       false,
	},

	file: "",
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the rows of a worksheet as TSV"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --worksheet <id> [--file <file>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --worksheet <id> [--file <file>]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the rows of a worksheet as a TSV file (or to stdout if no file is given)")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s --debug get --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                   --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                   --worksheet "331247936" \`)
	fmt.Println(`                   --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet ID e.g. '331247936'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to stdout")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	ctx := context.Background()

	ws, err := cmd.handle(ctx)
	if err != nil {
		return err
	}

	columns, err := ws.Columns(ctx)
	if err != nil {
		return err
	}

	rows, err := ws.GetRows(ctx)
	if err != nil {
		return err
	}

	if cmd.file == "" {
		return rowsToTSV(os.Stdout, columns, rows)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "rows")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := rowsToTSV(tmp, columns, rows); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v rows to file %s", len(rows), cmd.file)

	return nil
}
