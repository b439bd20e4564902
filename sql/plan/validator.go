package plan

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/expression"
)

var (
	// ErrEmptyFromClause is returned when a SelectStatement names no table.
	ErrEmptyFromClause = errors.NewKind("FROM clause is required")

	// ErrSelectNotGroupOrAggregate is returned when GROUP BY is present
	// and a SELECT expression is neither a group key nor an aggregate
	// inner expression.
	ErrSelectNotGroupOrAggregate = errors.NewKind("expression %s in SELECT is not a group key or aggregate")

	// ErrSelectMixesAggregates is returned when aggregates are present
	// without GROUP BY and a SELECT expression is not an aggregate inner
	// expression.
	ErrSelectMixesAggregates = errors.NewKind("with aggregates and no GROUP BY, SELECT must only contain aggregate expressions")
)

// Validator enforces the SELECT shape rules.
type Validator struct{}

// NewValidator builds a Validator.
func NewValidator() *Validator { return &Validator{} }

// Validate checks stmt against the four rules.
func (Validator) Validate(stmt SelectStatement) error {
	if stmt.FromTable == "" {
		return ErrEmptyFromClause.New()
	}

	switch {
	case len(stmt.GroupBys) > 0:
		return validateGroupedSelect(stmt.SelectExprs, stmt.GroupBys, stmt.Aggregates)
	case len(stmt.Aggregates) > 0:
		if !isFullTableAggregate(stmt.SelectExprs, stmt.Aggregates) {
			return ErrSelectMixesAggregates.New()
		}
	}
	return nil
}

func allowedExprSet(groupBys []expression.Expression, aggregates []expression.AggregateDef) *expression.Set {
	set := expression.NewSet()
	for _, e := range groupBys {
		set.Add(e)
	}
	for _, agg := range aggregates {
		if agg.Expr != nil {
			set.Add(agg.Expr)
		} else {
			set.Add(expression.StarCountExpr())
		}
	}
	return set
}

func validateGroupedSelect(selectExprs, groupBys []expression.Expression, aggregates []expression.AggregateDef) error {
	allowed := allowedExprSet(groupBys, aggregates)
	for _, e := range selectExprs {
		if !allowed.Contains(e) {
			return ErrSelectNotGroupOrAggregate.New(e.String())
		}
	}
	return nil
}

func isFullTableAggregate(selectExprs []expression.Expression, aggregates []expression.AggregateDef) bool {
	allowed := allowedExprSet(nil, aggregates)
	for _, e := range selectExprs {
		if !allowed.Contains(e) {
			return false
		}
	}
	return true
}
