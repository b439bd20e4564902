package expression

import (
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// ColumnExpr resolves to the value of a named column in the evaluated row.
type ColumnExpr struct {
	column schema.Column
}

// NewColumn builds a ColumnExpr over the given column.
func NewColumn(col schema.Column) *ColumnExpr {
	return &ColumnExpr{column: col}
}

// Column returns the underlying column.
func (e *ColumnExpr) Column() schema.Column { return e.column }

// Eval implements Expression.
func (e *ColumnExpr) Eval(r row.Row) (types.Value, error) {
	return r.GetByName(e.column.Name)
}

// ReturnType implements Expression.
func (e *ColumnExpr) ReturnType() types.TypeId { return e.column.TypeID }

// String implements Expression; it renders as the bare column name, which
// doubles as the name used when a column reference appears in an output
// schema (group-by columns, SELECT *).
func (e *ColumnExpr) String() string { return e.column.Name }

// Equal implements Expression.
func (e *ColumnExpr) Equal(other Expression) bool {
	o, ok := other.(*ColumnExpr)
	return ok && e.column.Equal(o.column)
}

// Hash implements Expression.
func (e *ColumnExpr) Hash() uint64 {
	return mustHash(struct {
		Kind string
		Name string
		Type types.TypeId
	}{"column", e.column.Name, e.column.TypeID})
}
