package expression

import (
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/types"
)

// ConstantExpr always evaluates to the same Value regardless of row.
type ConstantExpr struct {
	value types.Value
}

// NewConstant builds a ConstantExpr wrapping value.
func NewConstant(value types.Value) *ConstantExpr {
	return &ConstantExpr{value: value}
}

// StarCountExpr is the implicit constant-1 expression that COUNT(*)
// substitutes for `*`, unifying the evaluation path for star aggregates
// with every other aggregate.
func StarCountExpr() Expression {
	return NewConstant(types.NewInt(1))
}

// Value returns the wrapped Value.
func (e *ConstantExpr) Value() types.Value { return e.value }

// Eval implements Expression.
func (e *ConstantExpr) Eval(row.Row) (types.Value, error) { return e.value, nil }

// ReturnType implements Expression.
func (e *ConstantExpr) ReturnType() types.TypeId { return e.value.TypeID() }

// String implements Expression.
func (e *ConstantExpr) String() string { return e.value.String() }

// Equal implements Expression. Two constant-1 INT expressions compare
// equal regardless of how each was constructed, which is what lets the
// implicit COUNT(*) expression be recognized anywhere a literal 1 appears.
func (e *ConstantExpr) Equal(other Expression) bool {
	o, ok := other.(*ConstantExpr)
	return ok && e.value.Equal(o.value)
}

// Hash implements Expression.
func (e *ConstantExpr) Hash() uint64 {
	return mustHash(struct {
		Kind string
		Type types.TypeId
		Null bool
		Raw  interface{}
	}{"constant", e.value.TypeID(), e.value.IsNull(), e.value.Raw()})
}
