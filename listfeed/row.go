package listfeed

// Row is one worksheet record, keyed by the worksheet's column headers. Cells
// that are empty in the worksheet are omitted from the map, so a Row's key
// set is always a subset of the header set.
type Row map[string]string

// Query filters and orders the rows returned by Worksheet.Query. The zero
// value returns every row in positional order.
type Query struct {
	// OrderBy names a header column to sort on (ascending, stable). Empty
	// leaves the rows in positional order.
	OrderBy string

	// Reverse reverses the result after any ordering has been applied.
	Reverse bool

	// Filter, when not nil, keeps only the rows for which it returns true.
	// It is applied in memory, after the fetch.
	Filter func(Row) bool
}

func (r Row) clone() Row {
	row := make(Row, len(r))
	for k, v := range r {
		row[k] = v
	}

	return row
}
