package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// ErrUnsupportedTable is returned by the reader factory for a Table
// variant it does not know how to read.
var ErrUnsupportedTable = errors.NewKind("unsupported table type %T")

// RowSource is a finite, restartable byte stream already decoded into
// typed Rows. Reader.Open is called fresh for every Scan.Init, so a
// RowSource never needs to support rewinding itself.
type RowSource interface {
	// Next returns the next Row, or ok=false at end of stream.
	Next() (row.Row, bool, error)
	// Close releases any resources (file handles) the source holds. The
	// Scan executor calls it when it observes end of stream or an error,
	// and before reopening on a repeated Init; a source whose consumer
	// stops pulling before either (for example under a Limit) is not
	// closed.
	Close() error
}

// Reader opens a fresh RowSource over a table.
type Reader interface {
	Open() (RowSource, error)
}

// NewReader dispatches on the concrete Table variant, the table-reader
// factory.
func NewReader(t Table) (Reader, error) {
	switch tt := t.(type) {
	case *CSVTable:
		return &csvReader{table: tt}, nil
	case *StringTable:
		return &stringReader{table: tt}, nil
	default:
		return nil, ErrUnsupportedTable.New(t)
	}
}

func decodeFields(fields []string, sc schema.Schema) (row.Row, error) {
	if len(fields) != sc.Len() {
		return row.Row{}, row.ErrRowWidthMismatch.New(len(fields), sc.Len(), sc)
	}
	values := make([]types.Value, len(fields))
	for i, raw := range fields {
		col := sc.ColumnAt(i)
		if raw == "" {
			values[i] = types.NewNull(col.TypeID)
			continue
		}
		v, err := types.Deserialize([]byte(raw), col.TypeID)
		if err != nil {
			return row.Row{}, err
		}
		values[i] = v
	}
	return row.New(sc, values)
}

type csvReader struct {
	table *CSVTable
}

func (r *csvReader) Open() (RowSource, error) {
	f, err := os.Open(r.table.Path)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	if r.table.SkipHeader {
		if _, err := cr.Read(); err != nil && err != io.EOF {
			f.Close()
			return nil, err
		}
	}

	return &csvRowSource{file: f, csv: cr, schema: r.table.Schema()}, nil
}

type csvRowSource struct {
	file   *os.File
	csv    *csv.Reader
	schema schema.Schema
}

func (s *csvRowSource) Next() (row.Row, bool, error) {
	fields, err := s.csv.Read()
	if err == io.EOF {
		return row.Row{}, false, nil
	}
	if err != nil {
		return row.Row{}, false, err
	}
	r, err := decodeFields(fields, s.schema)
	if err != nil {
		return row.Row{}, false, err
	}
	return r, true, nil
}

func (s *csvRowSource) Close() error { return s.file.Close() }

type stringReader struct {
	table *StringTable
}

func (r *stringReader) Open() (RowSource, error) {
	lines := strings.Split(strings.TrimRight(r.table.Data, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}
	return &stringRowSource{lines: lines, schema: r.table.Schema()}, nil
}

type stringRowSource struct {
	lines  []string
	idx    int
	schema schema.Schema
}

func (s *stringRowSource) Next() (row.Row, bool, error) {
	if s.idx >= len(s.lines) {
		return row.Row{}, false, nil
	}
	line := strings.TrimSpace(s.lines[s.idx])
	s.idx++
	fields := strings.Split(line, ",")
	r, err := decodeFields(fields, s.schema)
	if err != nil {
		return row.Row{}, false, err
	}
	return r, true, nil
}

func (s *stringRowSource) Close() error { return nil }
