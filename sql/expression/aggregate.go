package expression

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/types"
)

// ErrUnknownAggregateFunc is returned when an aggregate function token does
// not match one of COUNT/SUM/AVG/MIN/MAX.
var ErrUnknownAggregateFunc = errors.NewKind("unknown aggregate function %q")

// AggFunc is the closed enumeration of aggregation kinds.
type AggFunc uint8

const (
	AggCount AggFunc = iota
	AggSum
	AggAvg
	AggMin
	AggMax
)

func (f AggFunc) String() string {
	switch f {
	case AggCount:
		return "count"
	case AggSum:
		return "sum"
	case AggAvg:
		return "avg"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return "unknown"
	}
}

// ParseAggFunc parses an aggregate function token case-insensitively.
func ParseAggFunc(s string) (AggFunc, error) {
	switch strings.ToLower(s) {
	case "count":
		return AggCount, nil
	case "sum":
		return AggSum, nil
	case "avg":
		return AggAvg, nil
	case "min":
		return AggMin, nil
	case "max":
		return AggMax, nil
	default:
		return 0, ErrUnknownAggregateFunc.New(s)
	}
}

// AggregateDef describes an aggregate before the inner `*` has been
// resolved to the implicit constant-1 expression: Expr is nil for
// COUNT(*).
type AggregateDef struct {
	Func       AggFunc
	Expr       Expression // nil means `*`
	OutputName string
}

// Aggregate is a fully resolved aggregate: Expr is never nil, `*` having
// been substituted with StarCountExpr().
type Aggregate struct {
	Func       AggFunc
	Expr       Expression
	OutputName string
}

// ResolveAggregate substitutes `*` with the implicit constant-1 expression.
func ResolveAggregate(def AggregateDef) Aggregate {
	expr := def.Expr
	if expr == nil {
		expr = StarCountExpr()
	}
	return Aggregate{Func: def.Func, Expr: expr, OutputName: def.OutputName}
}

// ReturnType computes the static output schema type of the aggregate: the
// inner expression's return type (INT for the implicit COUNT(*)
// constant-1 expression). This is a schema-construction label, not a
// runtime guarantee — AVG over an INT column, and SUM over two or more INT
// inputs, finalize to a DECIMAL Value at runtime even though the declared
// column type stays INT, per the output-schema construction rule.
func (a Aggregate) ReturnType() types.TypeId {
	return a.Expr.ReturnType()
}

// State is a per-group mutable accumulator. Update is called once per row
// in the group (already routed through Expr.Eval by the caller); Finalize
// produces the Value emitted for that group and is idempotent.
type State interface {
	Update(v types.Value) error
	Finalize() types.Value
}

// NewState builds a fresh accumulator for the given aggregate function.
func NewState(f AggFunc) State {
	switch f {
	case AggCount:
		return &countState{}
	case AggSum:
		return &sumState{}
	case AggAvg:
		return &avgState{}
	case AggMin:
		return &extremumState{combine: types.Value.Min}
	case AggMax:
		return &extremumState{combine: types.Value.Max}
	default:
		return nil
	}
}

// nullDecimal is the documented empty-group finalization for
// SUM/MIN/MAX/AVG: a NULL of TypeId DECIMAL regardless of input type
// (preserved rather than surfaced as an error).
func nullDecimal() types.Value { return types.NewNull(types.Decimal) }

type countState struct {
	count int64
}

func (s *countState) Update(v types.Value) error {
	if v.IsNull() {
		return nil
	}
	s.count++
	return nil
}

func (s *countState) Finalize() types.Value { return types.NewInt(s.count) }

// sumState implements SUM: ignores NULL inputs, takes the first non-NULL
// input as the accumulator unchanged, and folds each later input in
// through Value.Add, so a single input finalizes as itself and two or more
// inputs finalize as DECIMAL.
type sumState struct {
	acc    types.Value
	hasAcc bool
	err    error
}

func (s *sumState) Update(v types.Value) error {
	if s.err != nil || v.IsNull() {
		return s.err
	}
	if !s.hasAcc {
		s.acc = v
		s.hasAcc = true
		return nil
	}
	acc, err := s.acc.Add(v)
	if err != nil {
		s.err = err
		return err
	}
	s.acc = acc
	return nil
}

func (s *sumState) Finalize() types.Value {
	if !s.hasAcc {
		return nullDecimal()
	}
	return s.acc
}

// extremumState implements MIN and MAX: ignores NULL inputs and keeps
// the running value (in its original TypeId, not coerced to DECIMAL) via
// combine (Value.Min or Value.Max).
type extremumState struct {
	combine func(types.Value, types.Value) (types.Value, error)
	acc     types.Value
	hasAcc  bool
	err     error
}

func (s *extremumState) Update(v types.Value) error {
	if s.err != nil || v.IsNull() {
		return s.err
	}
	if !s.hasAcc {
		s.acc = v
		s.hasAcc = true
		return nil
	}
	acc, err := s.combine(s.acc, v)
	if err != nil {
		s.err = err
		return err
	}
	s.acc = acc
	return nil
}

func (s *extremumState) Finalize() types.Value {
	if !s.hasAcc {
		return nullDecimal()
	}
	return s.acc
}

type avgState struct {
	count  int64
	sum    types.Value
	hasSum bool
	err    error
}

func (s *avgState) Update(v types.Value) error {
	if s.err != nil || v.IsNull() {
		return s.err
	}
	s.count++
	if !s.hasSum {
		s.sum = v
		s.hasSum = true
		return nil
	}
	sum, err := s.sum.Add(v)
	if err != nil {
		s.err = err
		return err
	}
	s.sum = sum
	return nil
}

func (s *avgState) Finalize() types.Value {
	if s.count == 0 || !s.hasSum {
		return nullDecimal()
	}
	result, err := s.sum.Divide(types.NewInt(s.count))
	if err != nil {
		return nullDecimal()
	}
	return result
}
