package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"google.golang.org/api/option"

	"github.com/rowfeed/rowfeed/listfeed"
)

const APP = "rowfeed"

// OAuth2 scopes - SHEETS for the row operations, DRIVE for the spreadsheet
// listing.
const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

// Command is the interface implemented by every CLI command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

type Options struct {
	Debug bool
}

type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	worksheet   string
	source      string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (cached tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Path for the cached OAuth tokens. Defaults to '<workdir>/.google'")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.source, "source", c.source, "Client identification tag sent with every request")

	return flagset
}

// client authorises against the Google OAuth2 endpoints and wraps the
// authorised HTTP client in a listfeed client.
func (c *command) client(ctx context.Context, scopes ...string) (*listfeed.Client, error) {
	if strings.TrimSpace(c.credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	tokens := c.tokens
	if tokens == "" {
		tokens = filepath.Join(c.workdir, ".google")
	}

	httpclient, err := authorize(c.credentials, tokens, scopes...)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	return listfeed.NewClient(ctx, c.source, option.WithHTTPClient(httpclient))
}

// handle binds a worksheet handle from the --url and --worksheet options.
func (c *command) handle(ctx context.Context) (*listfeed.Worksheet, error) {
	client, err := c.client(ctx, SHEETS)
	if err != nil {
		return nil, err
	}

	spreadsheet, err := c.spreadsheetID()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.worksheet) == "" {
		return nil, fmt.Errorf("--worksheet is a required option")
	}

	if c.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", spreadsheet, c.worksheet)
	}

	return client.Worksheet(spreadsheet, c.worksheet), nil
}

// spreadsheetID reduces a docs.google.com spreadsheet URL (or a bare
// spreadsheet ID) to the spreadsheet ID.
func (c *command) spreadsheetID() (string, error) {
	url := strings.TrimSpace(c.url)
	if url == "" {
		return "", fmt.Errorf("--url is a required option")
	}

	if match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(url); len(match) > 1 {
		return match[1], nil
	}

	if regexp.MustCompile(`^[a-zA-Z0-9-_]+$`).MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
}

// fields parses 'column=value' arguments into a row.
func fields(args []string) (listfeed.Row, error) {
	row := listfeed.Row{}

	for _, arg := range args {
		match := regexp.MustCompile(`^([^=]+)=(.*)$`).FindStringSubmatch(arg)
		if match == nil {
			return nil, fmt.Errorf("invalid field '%s' - expected 'column=value'", arg)
		}

		row[match[1]] = match[2]
	}

	if len(row) == 0 {
		return nil, fmt.Errorf("at least one 'column=value' field is required")
	}

	return row, nil
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
