package listfeed

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"google.golang.org/api/sheets/v4"
)

// Worksheet is a handle bound to a single worksheet. The worksheet title,
// numeric sheet id and column headers are resolved on first use and cached
// for the lifetime of the handle - the header set is treated as immutable
// (row 1 of the sheet; data rows are 0-indexed from sheet row 2).
//
// A Worksheet is not safe for concurrent use: positional addressing is
// recomputed against the live sheet on every operation and concurrent
// deletes shift positions underneath in-flight updates.
type Worksheet struct {
	client        *Client
	spreadsheetID string
	worksheetID   string

	title    string
	sheetID  int64
	columns  []string
	resolved bool
}

func (w *Worksheet) resolve(ctx context.Context) error {
	if w.resolved {
		return nil
	}

	spreadsheet, err := w.client.sheets.Spreadsheets.Get(w.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return classify("get spreadsheet", w.spreadsheetID, err)
	}

	id, err := strconv.ParseInt(w.worksheetID, 10, 64)
	if err != nil {
		return &NotFoundError{Resource: fmt.Sprintf("worksheet %s in spreadsheet %s", w.worksheetID, w.spreadsheetID), Err: err}
	}

	found := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.SheetId == id {
			w.title = sheet.Properties.Title
			w.sheetID = id
			found = true
			break
		}
	}

	if !found {
		return &NotFoundError{Resource: fmt.Sprintf("worksheet %s in spreadsheet %s", w.worksheetID, w.spreadsheetID)}
	}

	header, err := w.client.sheets.Spreadsheets.Values.Get(w.spreadsheetID, fmt.Sprintf("'%s'!1:1", w.title)).Context(ctx).Do()
	if err != nil {
		return classify("get header row", w.spreadsheetID, err)
	}

	columns := []string{}
	if len(header.Values) > 0 {
		for _, v := range header.Values[0] {
			columns = append(columns, fmt.Sprintf("%v", v))
		}
	}

	w.columns = columns
	w.resolved = true

	return nil
}

// Columns returns the worksheet's column headers in sheet order, as resolved
// on first use of the handle.
func (w *Worksheet) Columns(ctx context.Context) ([]string, error) {
	if err := w.resolve(ctx); err != nil {
		return nil, err
	}

	columns := make([]string, len(w.columns))
	copy(columns, w.columns)

	return columns, nil
}

// GetRows returns every data row in positional order. The result is a full
// materialization - nothing is cached and a subsequent call re-reads the
// sheet.
func (w *Worksheet) GetRows(ctx context.Context) ([]Row, error) {
	if err := w.resolve(ctx); err != nil {
		return nil, err
	}

	return w.fetch(ctx)
}

// Query returns the data rows filtered and ordered per q. Filtering and
// ordering are applied in memory over the materialized rows.
func (w *Worksheet) Query(ctx context.Context, q Query) ([]Row, error) {
	rows, err := w.GetRows(ctx)
	if err != nil {
		return nil, err
	}

	if q.Filter != nil {
		filtered := []Row{}
		for _, row := range rows {
			if q.Filter(row) {
				filtered = append(filtered, row)
			}
		}

		rows = filtered
	}

	if q.OrderBy != "" {
		if !w.hasColumn(q.OrderBy) {
			return nil, &ValidationError{Column: q.OrderBy}
		}

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i][q.OrderBy] < rows[j][q.OrderBy]
		})
	}

	if q.Reverse {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return rows, nil
}

// UpdateRow overwrites the row at the zero-based position with fields. Fields
// that are not supplied keep their current value; a field set to the empty
// string is cleared. Other rows are unaffected. Returns the resulting row.
func (w *Worksheet) UpdateRow(ctx context.Context, position int, fields Row) (Row, error) {
	if err := w.resolve(ctx); err != nil {
		return nil, err
	}

	if err := w.validate(fields); err != nil {
		return nil, err
	}

	rows, err := w.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if position < 0 || position >= len(rows) {
		return nil, &OutOfRangeError{Position: position, Rows: len(rows)}
	}

	merged := rows[position].clone()
	for k, v := range fields {
		if v == "" {
			delete(merged, k)
		} else {
			merged[k] = v
		}
	}

	rq := sheets.ValueRange{
		Range:  fmt.Sprintf("'%s'!A%d", w.title, position+2),
		Values: [][]interface{}{w.record(merged)},
	}

	if _, err := w.client.sheets.Spreadsheets.Values.Update(w.spreadsheetID, rq.Range, &rq).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return nil, classify("update row", w.spreadsheetID, err)
	}

	return merged, nil
}

// InsertRow appends a new row after the last data row and returns it as
// echoed back by the service (which may normalise values). Existing row
// positions are unaffected.
func (w *Worksheet) InsertRow(ctx context.Context, fields Row) (Row, error) {
	if err := w.resolve(ctx); err != nil {
		return nil, err
	}

	if err := w.validate(fields); err != nil {
		return nil, err
	}

	rq := sheets.ValueRange{
		Values: [][]interface{}{w.record(fields)},
	}

	response, err := w.client.sheets.Spreadsheets.Values.Append(w.spreadsheetID, fmt.Sprintf("'%s'", w.title), &rq).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		IncludeValuesInResponse(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("insert row", w.spreadsheetID, err)
	}

	if response.Updates != nil && response.Updates.UpdatedData != nil && len(response.Updates.UpdatedData.Values) > 0 {
		return w.row(response.Updates.UpdatedData.Values[0]), nil
	}

	return fields.clone(), nil
}

// DeleteRow removes the row at the zero-based position. Every subsequent row
// shifts up by one position.
func (w *Worksheet) DeleteRow(ctx context.Context, position int) error {
	if err := w.resolve(ctx); err != nil {
		return err
	}

	rows, err := w.fetch(ctx)
	if err != nil {
		return err
	}

	if position < 0 || position >= len(rows) {
		return &OutOfRangeError{Position: position, Rows: len(rows)}
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    w.sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(position + 1),
						EndIndex:   int64(position + 2),
					},
				},
			},
		},
	}

	if _, err := w.client.sheets.Spreadsheets.BatchUpdate(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return classify("delete row", w.spreadsheetID, err)
	}

	return nil
}

// DeleteAllRows removes every data row, leaving the header in place. The
// clear is re-checked against the sheet and repeated until the worksheet
// reads back empty. Deleting the rows of an already-empty worksheet is a
// no-op.
func (w *Worksheet) DeleteAllRows(ctx context.Context) error {
	if err := w.resolve(ctx); err != nil {
		return err
	}

	previous := -1

	for {
		rows, err := w.fetch(ctx)
		if err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}

		if previous != -1 && len(rows) >= previous {
			return &TransportError{Op: "delete all rows", Err: fmt.Errorf("row count did not decrease (%d rows)", len(rows))}
		}

		previous = len(rows)

		rq := sheets.BatchClearValuesRequest{
			Ranges: []string{fmt.Sprintf("'%s'!2:%d", w.title, len(rows)+1)},
		}

		if _, err := w.client.sheets.Spreadsheets.Values.BatchClear(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
			return classify("delete all rows", w.spreadsheetID, err)
		}
	}
}

// fetch materializes the data rows. Empty cells are omitted from the row
// maps; an all-empty row in the middle of the sheet materializes as an empty
// map so that positions stay aligned with the grid.
func (w *Worksheet) fetch(ctx context.Context) ([]Row, error) {
	response, err := w.client.sheets.Spreadsheets.Values.Get(w.spreadsheetID, fmt.Sprintf("'%s'", w.title)).Context(ctx).Do()
	if err != nil {
		return nil, classify("get rows", w.spreadsheetID, err)
	}

	rows := []Row{}
	if len(response.Values) < 2 {
		return rows, nil
	}

	for _, record := range response.Values[1:] {
		rows = append(rows, w.row(record))
	}

	return rows, nil
}

func (w *Worksheet) row(record []interface{}) Row {
	row := Row{}

	for i, v := range record {
		if i >= len(w.columns) {
			break
		}

		if value := fmt.Sprintf("%v", v); value != "" {
			row[w.columns[i]] = value
		}
	}

	return row
}

// record lays a row out in column order, with empty strings for missing
// fields.
func (w *Worksheet) record(row Row) []interface{} {
	record := make([]interface{}, len(w.columns))

	for i, column := range w.columns {
		record[i] = row[column]
	}

	return record
}

func (w *Worksheet) validate(fields Row) error {
	for k := range fields {
		if !w.hasColumn(k) {
			return &ValidationError{Column: k}
		}
	}

	return nil
}

func (w *Worksheet) hasColumn(name string) bool {
	for _, column := range w.columns {
		if column == name {
			return true
		}
	}

	return false
}
