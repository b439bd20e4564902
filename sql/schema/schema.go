// Package schema defines the immutable column and schema types shared by
// rows, expressions, and plan nodes.
package schema

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/types"
)

// ErrColumnNotFound is returned by Schema.ColumnByName/IndexOf when no
// column matches the requested name.
var ErrColumnNotFound = errors.NewKind("column %q not found")

// Column is an immutable (name, TypeId) pair.
type Column struct {
	Name   string
	TypeID types.TypeId
}

// NewColumn builds a Column.
func NewColumn(name string, typeID types.TypeId) Column {
	return Column{Name: name, TypeID: typeID}
}

func (c Column) String() string {
	return "name='" + c.Name + "';type_id=" + c.TypeID.String()
}

// Equal reports whether c and other name the same column identically.
func (c Column) Equal(other Column) bool {
	return c.Name == other.Name && c.TypeID == other.TypeID
}

// Schema is an ordered, immutable sequence of Columns. Column count is
// fixed after construction; positional index i maps to columns[i].
type Schema struct {
	columns []Column
}

// New builds a Schema from an ordered column list. The slice is copied so
// the Schema cannot be mutated through the caller's backing array.
func New(columns []Column) Schema {
	cp := make([]Column, len(columns))
	copy(cp, columns)
	return Schema{columns: cp}
}

// Columns returns a copy of the column list.
func (s Schema) Columns() []Column {
	cp := make([]Column, len(s.columns))
	copy(cp, s.columns)
	return cp
}

// Len returns the column count.
func (s Schema) Len() int { return len(s.columns) }

// ColumnAt returns the column at the given positional index.
func (s Schema) ColumnAt(i int) Column { return s.columns[i] }

// IndexOf returns the positional index of the first column named name, or
// ErrColumnNotFound.
func (s Schema) IndexOf(name string) (int, error) {
	for i, c := range s.columns {
		if c.Name == name {
			return i, nil
		}
	}
	return -1, ErrColumnNotFound.New(name)
}

// ColumnByName returns the first column named name, or ErrColumnNotFound.
func (s Schema) ColumnByName(name string) (Column, error) {
	idx, err := s.IndexOf(name)
	if err != nil {
		return Column{}, err
	}
	return s.columns[idx], nil
}

func (s Schema) String() string {
	out := ""
	for i, c := range s.columns {
		if i > 0 {
			out += ","
		}
		out += c.String()
	}
	return out
}
