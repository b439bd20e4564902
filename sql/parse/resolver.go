// Package parse turns the command-line query surface into a validated
// plan.SelectStatement: resolving column references against a catalog and
// parsing the small where/aggregate/literal grammars.
package parse

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
)

// ErrInvalidCondition is returned when a where-condition string contains
// none of the recognized comparison operators.
var ErrInvalidCondition = errors.NewKind("invalid condition: %q")

// ExpressionResolver resolves bare column names against a table's schema,
// the one piece of semantic analysis the console surface needs.
type ExpressionResolver struct {
	catalog table.Catalog
}

// NewExpressionResolver builds a resolver over catalog.
func NewExpressionResolver(catalog table.Catalog) *ExpressionResolver {
	return &ExpressionResolver{catalog: catalog}
}

// ResolveColumn looks up a column by name on the named table.
func (r *ExpressionResolver) ResolveColumn(name, tableName string) (schema.Column, error) {
	t, err := r.catalog.Resolve(tableName)
	if err != nil {
		return schema.Column{}, err
	}
	return t.Schema().ColumnByName(name)
}

// ResolveColumnExpression resolves name on tableName and wraps it as a
// ColumnExpr.
func (r *ExpressionResolver) ResolveColumnExpression(name, tableName string) (*expression.ColumnExpr, error) {
	col, err := r.ResolveColumn(name, tableName)
	if err != nil {
		return nil, err
	}
	return expression.NewColumn(col), nil
}

// comparisonOperators are tried longest-first so ">=" is never mis-split
// as ">" followed by "=value".
var comparisonOperators = []string{"!=", ">=", "<=", "=", "<", ">"}

// ResolveComparison parses a single "COL OP LITERAL" condition and
// resolves it into a ComparisonExpr.
func (r *ExpressionResolver) ResolveComparison(condition, tableName string) (*expression.ComparisonExpr, error) {
	for _, token := range comparisonOperators {
		idx := strings.Index(condition, token)
		if idx < 0 {
			continue
		}
		leftStr := strings.TrimSpace(condition[:idx])
		rightStr := strings.TrimSpace(condition[idx+len(token):])

		leftExpr, err := r.ResolveColumnExpression(leftStr, tableName)
		if err != nil {
			return nil, err
		}
		rightVal, err := ParseLiteral(rightStr)
		if err != nil {
			return nil, err
		}
		op := compareOpOf(token)
		return expression.NewComparison(leftExpr, expression.NewConstant(rightVal), op), nil
	}
	return nil, ErrInvalidCondition.New(condition)
}
