package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

func col(name string) *expression.ColumnExpr {
	return expression.NewColumn(schema.NewColumn(name, types.Int))
}

func TestValidateEmptyFromClauseFails(t *testing.T) {
	v := NewValidator()
	err := v.Validate(SelectStatement{})
	require.Error(t, err)
}

func TestValidateGroupBySelectMustBeGroupOrAggregate(t *testing.T) {
	v := NewValidator()
	stmt := SelectStatement{
		FromTable:   "products",
		GroupBys:    []expression.Expression{col("brand")},
		SelectExprs: []expression.Expression{col("price")},
	}
	require.Error(t, v.Validate(stmt))
}

func TestValidateGroupBySelectOfGroupKeyPasses(t *testing.T) {
	v := NewValidator()
	stmt := SelectStatement{
		FromTable:   "products",
		GroupBys:    []expression.Expression{col("brand")},
		SelectExprs: []expression.Expression{col("brand")},
	}
	assert.NoError(t, v.Validate(stmt))
}

func TestValidateGroupBySelectOfAggregateInnerExprPasses(t *testing.T) {
	v := NewValidator()
	priceExpr := col("price")
	stmt := SelectStatement{
		FromTable:   "products",
		GroupBys:    []expression.Expression{col("brand")},
		Aggregates:  []expression.AggregateDef{{Func: expression.AggSum, Expr: priceExpr, OutputName: "sum(price)"}},
		SelectExprs: []expression.Expression{col("brand"), priceExpr},
	}
	assert.NoError(t, v.Validate(stmt))
}

func TestValidateAggregateWithoutGroupByMixedFails(t *testing.T) {
	v := NewValidator()
	priceExpr := col("price")
	stmt := SelectStatement{
		FromTable:   "products",
		Aggregates:  []expression.AggregateDef{{Func: expression.AggSum, Expr: priceExpr, OutputName: "sum(price)"}},
		SelectExprs: []expression.Expression{priceExpr, col("brand")},
	}
	require.Error(t, v.Validate(stmt))
}

func TestValidateAggregateWithoutGroupByOnlyAggregatesPasses(t *testing.T) {
	v := NewValidator()
	priceExpr := col("price")
	stmt := SelectStatement{
		FromTable:   "products",
		Aggregates:  []expression.AggregateDef{{Func: expression.AggSum, Expr: priceExpr, OutputName: "sum(price)"}},
		SelectExprs: []expression.Expression{priceExpr},
	}
	assert.NoError(t, v.Validate(stmt))
}

func TestValidateCountStarMatchesImplicitConstant(t *testing.T) {
	v := NewValidator()
	stmt := SelectStatement{
		FromTable:   "products",
		Aggregates:  []expression.AggregateDef{{Func: expression.AggCount, Expr: nil, OutputName: "count(*)"}},
		SelectExprs: []expression.Expression{expression.StarCountExpr()},
	}
	assert.NoError(t, v.Validate(stmt))
}

func TestValidateUnconstrainedSelectPasses(t *testing.T) {
	v := NewValidator()
	stmt := SelectStatement{FromTable: "products", SelectExprs: []expression.Expression{col("name"), col("price")}}
	assert.NoError(t, v.Validate(stmt))
}
