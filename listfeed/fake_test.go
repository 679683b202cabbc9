package listfeed

// An in-process Sheets/Drive service for the package tests. It implements
// just the wire surface this package uses - spreadsheet metadata, values
// get/update/append, batchUpdate (DeleteDimension) and values batchClear -
// over an in-memory grid, so the tests exercise the real generated clients
// end to end.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type fakeWorksheet struct {
	id    int64
	title string
	grid  [][]string // row 0 is the header
}

type fakeSpreadsheet struct {
	id     string
	title  string
	sheets []*fakeWorksheet
}

type fakeService struct {
	spreadsheets []*fakeSpreadsheet
	pageSize     int
	unauthorized bool
}

func newTestClient(t *testing.T, f *fakeService) (*Client, context.Context) {
	t.Helper()

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	ctx := context.Background()

	client, err := NewClient(ctx, "listfeed-test", option.WithEndpoint(srv.URL), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("Unexpected error creating client (%v)", err)
	}

	return client, ctx
}

func seed() *fakeService {
	return &fakeService{
		pageSize: 2,
		spreadsheets: []*fakeSpreadsheet{
			{
				id:    "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
				title: "Inventory",
				sheets: []*fakeWorksheet{
					{
						id:    0,
						title: "Stock",
						grid: [][]string{
							{"name", "quantity", "location"},
							{"A", "1", "shelf 1"},
							{"B", "2", "shelf 2"},
							{"C", "3", ""},
						},
					},
					{
						id:    331247936,
						title: "Empty",
						grid: [][]string{
							{"name", "quantity"},
						},
					},
				},
			},
			{
				id:    "1W0wgyCA2MIasx5zsFCKODJk2iSUKx3APpzoDs9mWXE",
				title: "Prices",
				sheets: []*fakeWorksheet{
					{
						id:    0,
						title: "2026",
						grid: [][]string{
							{"item", "price"},
							{"widget", "1.25"},
						},
					},
				},
			},
			{
				id:    "1dQw4w9WgXcQdKvBdBZjgmUUqptlbs74OgvE2upmsAAA",
				title: "Archive",
				sheets: []*fakeWorksheet{
					{
						id:    0,
						title: "Old",
						grid:  [][]string{},
					},
				},
			},
		},
	}
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.unauthorized {
		fail(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	path := r.URL.Path

	switch {
	case path == "/files":
		f.listFiles(w, r)

	case strings.HasPrefix(path, "/v4/spreadsheets/"):
		f.dispatch(w, r, strings.TrimPrefix(path, "/v4/spreadsheets/"))

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeService) dispatch(w http.ResponseWriter, r *http.Request, rest string) {
	switch {
	case strings.HasSuffix(rest, ":batchUpdate"):
		f.batchUpdate(w, r, strings.TrimSuffix(rest, ":batchUpdate"))

	case strings.HasSuffix(rest, "/values:batchClear"):
		f.batchClear(w, r, strings.TrimSuffix(rest, "/values:batchClear"))

	case strings.Contains(rest, "/values/"):
		ix := strings.Index(rest, "/values/")
		id := rest[:ix]
		area := rest[ix+len("/values/"):]

		switch {
		case strings.HasSuffix(area, ":append"):
			f.append(w, r, id, strings.TrimSuffix(area, ":append"))

		case r.Method == http.MethodPut:
			f.update(w, r, id, area)

		default:
			f.values(w, r, id, area)
		}

	default:
		f.metadata(w, r, rest)
	}
}

func (f *fakeService) spreadsheet(id string) *fakeSpreadsheet {
	for _, s := range f.spreadsheets {
		if s.id == id {
			return s
		}
	}

	return nil
}

func (s *fakeSpreadsheet) worksheet(title string) *fakeWorksheet {
	for _, ws := range s.sheets {
		if ws.title == title {
			return ws
		}
	}

	return nil
}

func (f *fakeService) listFiles(w http.ResponseWriter, r *http.Request) {
	from := 0
	if token := r.URL.Query().Get("pageToken"); token != "" {
		from, _ = strconv.Atoi(token)
	}

	size := f.pageSize
	if size <= 0 {
		size = len(f.spreadsheets)
	}

	list := drive.FileList{
		Files: []*drive.File{},
	}

	to := from + size
	if to > len(f.spreadsheets) {
		to = len(f.spreadsheets)
	}

	for _, s := range f.spreadsheets[from:to] {
		list.Files = append(list.Files, &drive.File{Id: s.id, Name: s.title})
	}

	if to < len(f.spreadsheets) {
		list.NextPageToken = strconv.Itoa(to)
	}

	reply(w, &list)
}

func (f *fakeService) metadata(w http.ResponseWriter, r *http.Request, id string) {
	s := f.spreadsheet(id)
	if s == nil {
		fail(w, http.StatusNotFound, "Requested entity was not found.")
		return
	}

	spreadsheet := sheets.Spreadsheet{
		SpreadsheetId: s.id,
		Properties: &sheets.SpreadsheetProperties{
			Title: s.title,
		},
	}

	for i, ws := range s.sheets {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{
				SheetId: ws.id,
				Title:   ws.title,
				Index:   int64(i),
			},
		})
	}

	reply(w, &spreadsheet)
}

func (f *fakeService) values(w http.ResponseWriter, r *http.Request, id, area string) {
	ws, ref, ok := f.lookup(w, id, area)
	if !ok {
		return
	}

	response := sheets.ValueRange{
		Range:          area,
		MajorDimension: "ROWS",
	}

	if rows := regexp.MustCompile(`^(\d+):(\d+)$`).FindStringSubmatch(ref); rows != nil {
		top, _ := strconv.Atoi(rows[1])
		bottom, _ := strconv.Atoi(rows[2])
		response.Values = trim(slice(ws.grid, top, bottom))
	} else {
		response.Values = trim(ws.grid)
	}

	reply(w, &response)
}

func (f *fakeService) update(w http.ResponseWriter, r *http.Request, id, area string) {
	ws, ref, ok := f.lookup(w, id, area)
	if !ok {
		return
	}

	anchor := regexp.MustCompile(`^[A-Z]+(\d+)$`).FindStringSubmatch(ref)
	if anchor == nil {
		fail(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return
	}

	rq := sheets.ValueRange{}
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	row, _ := strconv.Atoi(anchor[1])
	for len(ws.grid) < row {
		ws.grid = append(ws.grid, []string{})
	}

	if len(rq.Values) > 0 {
		ws.grid[row-1] = record(rq.Values[0])
	}

	reply(w, &sheets.UpdateValuesResponse{SpreadsheetId: id, UpdatedRange: area})
}

func (f *fakeService) append(w http.ResponseWriter, r *http.Request, id, area string) {
	ws, _, ok := f.lookup(w, id, area)
	if !ok {
		return
	}

	rq := sheets.ValueRange{}
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	// the service appends after the last row of the detected table, not after
	// trailing blank rows
	for len(ws.grid) > 0 && len(trim(ws.grid[len(ws.grid)-1:])) == 0 {
		ws.grid = ws.grid[:len(ws.grid)-1]
	}

	written := [][]interface{}{}
	for _, v := range rq.Values {
		row := record(v)
		ws.grid = append(ws.grid, row)

		values := make([]interface{}, len(row))
		for i, cell := range row {
			values[i] = cell
		}

		written = append(written, values)
	}

	reply(w, &sheets.AppendValuesResponse{
		SpreadsheetId: id,
		Updates: &sheets.UpdateValuesResponse{
			SpreadsheetId: id,
			UpdatedData: &sheets.ValueRange{
				MajorDimension: "ROWS",
				Values:         written,
			},
		},
	})
}

func (f *fakeService) batchUpdate(w http.ResponseWriter, r *http.Request, id string) {
	s := f.spreadsheet(id)
	if s == nil {
		fail(w, http.StatusNotFound, "Requested entity was not found.")
		return
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{}
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, request := range rq.Requests {
		if request.DeleteDimension == nil || request.DeleteDimension.Range == nil {
			continue
		}

		dim := request.DeleteDimension.Range
		if dim.Dimension != "ROWS" {
			fail(w, http.StatusBadRequest, fmt.Sprintf("Unsupported dimension %s", dim.Dimension))
			return
		}

		for _, ws := range s.sheets {
			if ws.id == dim.SheetId {
				from := int(dim.StartIndex)
				to := int(dim.EndIndex)

				if from < 0 || to > len(ws.grid) || from >= to {
					fail(w, http.StatusBadRequest, fmt.Sprintf("Invalid row range [%d,%d)", from, to))
					return
				}

				ws.grid = append(ws.grid[:from], ws.grid[to:]...)
			}
		}
	}

	reply(w, &sheets.BatchUpdateSpreadsheetResponse{SpreadsheetId: id})
}

func (f *fakeService) batchClear(w http.ResponseWriter, r *http.Request, id string) {
	rq := sheets.BatchClearValuesRequest{}
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, area := range rq.Ranges {
		ws, ref, ok := f.lookup(w, id, area)
		if !ok {
			return
		}

		rows := regexp.MustCompile(`^(\d+):(\d+)$`).FindStringSubmatch(ref)
		if rows == nil {
			fail(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
			return
		}

		top, _ := strconv.Atoi(rows[1])
		bottom, _ := strconv.Atoi(rows[2])

		for i := top - 1; i < bottom && i < len(ws.grid); i++ {
			ws.grid[i] = []string{}
		}
	}

	reply(w, &sheets.BatchClearValuesResponse{SpreadsheetId: id})
}

// lookup resolves a values range of the form '<title>' or '<title>'!<ref> to
// a worksheet, failing the request if the spreadsheet or worksheet does not
// exist.
func (f *fakeService) lookup(w http.ResponseWriter, id, area string) (*fakeWorksheet, string, bool) {
	s := f.spreadsheet(id)
	if s == nil {
		fail(w, http.StatusNotFound, "Requested entity was not found.")
		return nil, "", false
	}

	match := regexp.MustCompile(`^'(.+?)'(?:!(.+))?$`).FindStringSubmatch(area)
	if match == nil {
		fail(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return nil, "", false
	}

	ws := s.worksheet(match[1])
	if ws == nil {
		fail(w, http.StatusBadRequest, fmt.Sprintf("Unable to parse range: %s", area))
		return nil, "", false
	}

	return ws, match[2], true
}

// trim drops trailing empty cells from each row and trailing empty rows from
// the grid, the way the values API does.
func trim(grid [][]string) [][]interface{} {
	rows := [][]interface{}{}
	last := 0

	for _, row := range grid {
		width := len(row)
		for width > 0 && row[width-1] == "" {
			width--
		}

		values := make([]interface{}, width)
		for i := 0; i < width; i++ {
			values[i] = row[i]
		}

		rows = append(rows, values)
		if width > 0 {
			last = len(rows)
		}
	}

	return rows[:last]
}

func slice(grid [][]string, top, bottom int) [][]string {
	if top < 1 {
		top = 1
	}

	if bottom > len(grid) {
		bottom = len(grid)
	}

	if top > bottom {
		return [][]string{}
	}

	return grid[top-1 : bottom]
}

func record(values []interface{}) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprintf("%v", v)
	}

	return row
}

func reply(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error": {"code": %d, "message": %q}}`, code, message)
}
