package commands

import (
	"encoding/csv"
	"io"

	"github.com/rowfeed/rowfeed/listfeed"
)

func rowsToTSV(f io.Writer, columns []string, rows []listfeed.Row) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(columns)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = row[column]
		}

		w.Write(record)
	}

	w.Flush()

	return w.Error()
}
