// Package listfeed presents Google Sheets worksheets as ordered lists of
// column-name/value rows - the 'list feed' view of a worksheet, where the
// first row holds the column headers and every subsequent row is one record.
//
// Rows are addressed by zero-based position among the currently existing data
// rows, matching the service's own feed model: deleting a row shifts every
// subsequent row up by one. The package issues synchronous, blocking requests
// and provides no ordering or atomicity guarantees across concurrent callers;
// callers sharing a worksheet must serialize their own access.
package listfeed

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// Entry is a (title, id) pair for a spreadsheet or worksheet listing.
type Entry struct {
	Title string
	ID    string
}

// Client wraps the Sheets and Drive services behind the catalog and row
// operations. A Client is safe to reuse across spreadsheets.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// NewClient builds a Client from google.golang.org/api client options (e.g.
// option.WithHTTPClient for an OAuth2 client). source is an opaque client
// identification tag forwarded to the service with every request; it is not
// interpreted.
func NewClient(ctx context.Context, source string, opts ...option.ClientOption) (*Client, error) {
	if source != "" {
		opts = append([]option.ClientOption{option.WithUserAgent(source)}, opts...)
	}

	gsheets, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Client{
		sheets: gsheets,
		drive:  gdrive,
	}, nil
}

// ListSpreadsheets returns the (title, id) of every spreadsheet visible to
// the authenticated identity, in the order the service returns them.
func (c *Client) ListSpreadsheets(ctx context.Context) ([]Entry, error) {
	list := []Entry{}
	page := ""

	for {
		call := c.drive.Files.List().
			Q(fmt.Sprintf("mimeType='%s' and trashed=false", spreadsheetMimeType)).
			Fields("nextPageToken, files(id, name)").
			Context(ctx)

		if page != "" {
			call = call.PageToken(page)
		}

		files, err := call.Do()
		if err != nil {
			return nil, classify("list spreadsheets", "", err)
		}

		for _, f := range files.Files {
			list = append(list, Entry{Title: f.Name, ID: f.Id})
		}

		if page = files.NextPageToken; page == "" {
			break
		}
	}

	return list, nil
}

// ListWorksheets returns the (title, id) of every worksheet in the
// spreadsheet, in sheet order.
func (c *Client) ListWorksheets(ctx context.Context, spreadsheetID string) ([]Entry, error) {
	spreadsheet, err := c.sheets.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, classify("list worksheets", spreadsheetID, err)
	}

	list := make([]Entry, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		list = append(list, Entry{
			Title: sheet.Properties.Title,
			ID:    strconv.FormatInt(sheet.Properties.SheetId, 10),
		})
	}

	return list, nil
}

// Worksheet returns a handle bound to a worksheet within a spreadsheet. The
// binding is lazy - no network call is made and an unknown id is only
// reported (as a NotFoundError) by the first operation on the handle.
func (c *Client) Worksheet(spreadsheetID, worksheetID string) *Worksheet {
	return &Worksheet{
		client:        c,
		spreadsheetID: spreadsheetID,
		worksheetID:   worksheetID,
	}
}
