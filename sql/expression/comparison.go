package expression

import (
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/types"
)

// ComparisonExpr evaluates its two children and compares them, producing a
// BOOLEAN Value whose payload is the tri-state comparison result collapsed
// to Go's bool/NULL representation (NULL stays NULL).
type ComparisonExpr struct {
	left  Expression
	right Expression
	op    types.CompareOp
}

// NewComparison builds a ComparisonExpr.
func NewComparison(left, right Expression, op types.CompareOp) *ComparisonExpr {
	return &ComparisonExpr{left: left, right: right, op: op}
}

// Left returns the left operand.
func (e *ComparisonExpr) Left() Expression { return e.left }

// Right returns the right operand.
func (e *ComparisonExpr) Right() Expression { return e.right }

// Op returns the comparison operator.
func (e *ComparisonExpr) Op() types.CompareOp { return e.op }

// Eval implements Expression.
func (e *ComparisonExpr) Eval(r row.Row) (types.Value, error) {
	lhs, err := e.left.Eval(r)
	if err != nil {
		return types.Value{}, err
	}
	rhs, err := e.right.Eval(r)
	if err != nil {
		return types.Value{}, err
	}

	tri, err := lhs.Compare(rhs, e.op)
	if err != nil {
		return types.Value{}, err
	}
	return triStateToBoolean(tri), nil
}

func triStateToBoolean(tri types.TriState) types.Value {
	switch tri {
	case types.TriTrue:
		return types.NewBoolean(true)
	case types.TriFalse:
		return types.NewBoolean(false)
	default:
		return types.NewNull(types.Boolean)
	}
}

// ReturnType implements Expression; a comparison always returns BOOLEAN.
func (e *ComparisonExpr) ReturnType() types.TypeId { return types.Boolean }

// String implements Expression.
func (e *ComparisonExpr) String() string {
	return "(" + e.left.String() + " " + e.op.String() + " " + e.right.String() + ")"
}

// Equal implements Expression.
func (e *ComparisonExpr) Equal(other Expression) bool {
	o, ok := other.(*ComparisonExpr)
	if !ok {
		return false
	}
	return e.op == o.op && e.left.Equal(o.left) && e.right.Equal(o.right)
}

// Hash implements Expression.
func (e *ComparisonExpr) Hash() uint64 {
	return mustHash(struct {
		Kind  string
		Op    types.CompareOp
		Left  uint64
		Right uint64
	}{"comparison", e.op, e.left.Hash(), e.right.Hash()})
}
