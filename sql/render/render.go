// Package render formats a finished query result as a text grid.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MDx3R/csv-processor/sql/engine"
)

// EmptySetMessage is printed in place of a grid when the result has no
// rows.
const EmptySetMessage = "(empty set)"

// Table writes result to w as a header row of column names followed by
// one tab-aligned line per row. An empty result prints EmptySetMessage
// instead.
func Table(w io.Writer, result engine.Result) error {
	if len(result.Rows) == 0 {
		_, err := fmt.Fprintln(w, EmptySetMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)

	cols := result.Schema.Columns()
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := writeLine(tw, header); err != nil {
		return err
	}

	for _, r := range result.Rows {
		values := r.Values()
		line := make([]interface{}, len(values))
		for i, v := range values {
			line[i] = v.String()
		}
		if err := writeLine(tw, line); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeLine(tw *tabwriter.Writer, fields []interface{}) error {
	format := ""
	for range fields {
		format += "%v\t"
	}
	format += "\n"
	_, err := fmt.Fprintf(tw, format, fields...)
	return err
}
