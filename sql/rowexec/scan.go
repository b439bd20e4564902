package rowexec

import (
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
)

// scanExec is the leaf executor: it drives a table.RowSource opened fresh
// on every Init, so each Scan sees the source as a finite, restartable
// byte stream.
type scanExec struct {
	reader table.Reader
	schema schema.Schema
	source table.RowSource
	done   bool
}

func newScanExec(reader table.Reader, sc schema.Schema) *scanExec {
	return &scanExec{reader: reader, schema: sc}
}

// Init opens a fresh RowSource, closing any previously-open one first so
// repeated Init calls cannot leak file handles.
func (e *scanExec) Init() error {
	if e.source != nil {
		_ = e.source.Close()
		e.source = nil
	}
	src, err := e.reader.Open()
	if err != nil {
		return err
	}
	e.source = src
	e.done = false
	return nil
}

// Next returns end-of-stream without touching the source again once
// exhaustion or an error has been observed once, so a caller that polls
// past the end never re-reads or re-closes an already-closed source.
func (e *scanExec) Next() (row.Row, bool, error) {
	if e.done {
		return row.Row{}, false, nil
	}
	r, ok, err := e.source.Next()
	if err != nil || !ok {
		e.done = true
		closeErr := e.source.Close()
		if err == nil {
			err = closeErr
		}
		return row.Row{}, false, err
	}
	return r, true, nil
}

func (e *scanExec) Schema() schema.Schema { return e.schema }
