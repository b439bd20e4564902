package plan

import "github.com/MDx3R/csv-processor/sql/expression"

// SelectStatement is the validated, resolved shape of a constrained SELECT:
// all column references have already been resolved to concrete schema.Column
// values by this point (the parser's job, not the planner's).
type SelectStatement struct {
	SelectExprs []expression.Expression
	FromTable   string
	Where       expression.Expression // nil if absent
	GroupBys    []expression.Expression
	Aggregates  []expression.AggregateDef
	OrderBy     []expression.Expression
	Offset      *int
	Limit       *int
}
