// Package row implements the Row (Tuple): a fixed vector of typed Values
// paired with the Schema that describes them.
package row

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// ErrRowWidthMismatch is returned when a Row is constructed with a value
// count that does not match its schema's column count.
var ErrRowWidthMismatch = errors.NewKind("row has %d values, expected %d for schema %s")

// Row pairs an ordered value vector with the Schema describing it. Rows
// are immutable and ephemeral: once an executor yields one, it makes no
// promise about reusing it later.
type Row struct {
	schema schema.Schema
	values []types.Value
}

// New builds a Row, failing with ErrRowWidthMismatch if len(values) does
// not match the schema's column count.
func New(sc schema.Schema, values []types.Value) (Row, error) {
	if len(values) != sc.Len() {
		return Row{}, ErrRowWidthMismatch.New(len(values), sc.Len(), sc)
	}
	cp := make([]types.Value, len(values))
	copy(cp, values)
	return Row{schema: sc, values: cp}, nil
}

// Schema returns the Row's schema.
func (r Row) Schema() schema.Schema { return r.schema }

// Values returns a copy of the Row's value vector.
func (r Row) Values() []types.Value {
	cp := make([]types.Value, len(r.values))
	copy(cp, r.values)
	return cp
}

// Get returns the value at the given positional index.
func (r Row) Get(i int) types.Value { return r.values[i] }

// GetByName returns the value of the first column named name.
func (r Row) GetByName(name string) (types.Value, error) {
	idx, err := r.schema.IndexOf(name)
	if err != nil {
		return types.Value{}, err
	}
	return r.values[idx], nil
}

func (r Row) String() string {
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}
