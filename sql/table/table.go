// Package table defines the abstract row-producing table sources the
// executor's Scan operator pulls from, and the catalog that resolves a
// table name to one.
package table

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/schema"
)

// ErrUnknownTable is returned by a Catalog when a table name is not
// registered.
var ErrUnknownTable = errors.NewKind("table %q not found")

// Table is an abstract descriptor exposing a schema. Concrete variants
// (CSVTable, StringTable) add the information their Reader needs to
// actually produce rows.
type Table interface {
	Schema() schema.Schema
}

// CSVTable describes a delimited text file: its schema and path, and
// whether the first line is a header to be skipped.
type CSVTable struct {
	Path       string
	SkipHeader bool
	schema     schema.Schema
}

// NewCSVTable builds a CSVTable.
func NewCSVTable(path string, skipHeader bool, sc schema.Schema) *CSVTable {
	return &CSVTable{Path: path, SkipHeader: skipHeader, schema: sc}
}

// Schema implements Table.
func (t *CSVTable) Schema() schema.Schema { return t.schema }

// StringTable holds its rows as in-process delimited text, useful for
// tests and for embedding small literal tables without touching the
// filesystem.
type StringTable struct {
	Data   string
	schema schema.Schema
}

// NewStringTable builds a StringTable.
func NewStringTable(data string, sc schema.Schema) *StringTable {
	return &StringTable{Data: data, schema: sc}
}

// Schema implements Table.
func (t *StringTable) Schema() schema.Schema { return t.schema }

// Catalog maps table names to Tables.
type Catalog map[string]Table

// Resolve looks up a table by name, failing with ErrUnknownTable.
func (c Catalog) Resolve(name string) (Table, error) {
	t, ok := c[name]
	if !ok {
		return nil, ErrUnknownTable.New(name)
	}
	return t, nil
}
