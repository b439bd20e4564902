package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
	"github.com/MDx3R/csv-processor/sql/types"
)

func productsCatalog() table.Catalog {
	sc := schema.New([]schema.Column{
		schema.NewColumn("name", types.String),
		schema.NewColumn("brand", types.String),
		schema.NewColumn("price", types.Int),
		schema.NewColumn("rating", types.Decimal),
	})
	return table.Catalog{"products": table.NewStringTable("", sc)}
}

func TestParseLiteralBooleanCaseInsensitive(t *testing.T) {
	v, err := ParseLiteral("TRUE")
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewBoolean(true)))
}

func TestParseLiteralQuotedString(t *testing.T) {
	v, err := ParseLiteral("'Acme'")
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewString("Acme")))
}

func TestParseLiteralBareAlphabeticString(t *testing.T) {
	v, err := ParseLiteral("Acme")
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewString("Acme")))
}

func TestParseLiteralDecimal(t *testing.T) {
	v, err := ParseLiteral("4.5")
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewDecimal(4.5)))
}

func TestParseLiteralInt(t *testing.T) {
	v, err := ParseLiteral("20")
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewInt(20)))
}

func TestResolveComparisonLongestOperatorFirst(t *testing.T) {
	r := NewExpressionResolver(productsCatalog())
	cmp, err := r.ResolveComparison("price>=20", "products")
	require.NoError(t, err)
	assert.Equal(t, types.OpGTE, cmp.Op())
}

func TestResolveComparisonUnknownOperatorFails(t *testing.T) {
	r := NewExpressionResolver(productsCatalog())
	_, err := r.ResolveComparison("price??20", "products")
	require.Error(t, err)
}

func TestResolveComparisonUnknownColumnFails(t *testing.T) {
	r := NewExpressionResolver(productsCatalog())
	_, err := r.ResolveComparison("nope=1", "products")
	require.Error(t, err)
}

func TestConsoleSelectParserInfersSelectFromGroupAndAggregates(t *testing.T) {
	resolver := NewExpressionResolver(productsCatalog())
	p := NewConsoleSelectParser(resolver)

	stmt, err := p.Parse(QueryConfig{
		Table:      "products",
		GroupBys:   []string{"brand"},
		Aggregates: []string{"price=SUM"},
	})
	require.NoError(t, err)

	require.Len(t, stmt.SelectExprs, 2)
	assert.Equal(t, "brand", stmt.SelectExprs[0].String())
	assert.Equal(t, "price", stmt.SelectExprs[1].String())
	require.Len(t, stmt.Aggregates, 1)
	assert.Equal(t, "sum(price)", stmt.Aggregates[0].OutputName)
}

func TestConsoleSelectParserCountStarAggregate(t *testing.T) {
	resolver := NewExpressionResolver(productsCatalog())
	p := NewConsoleSelectParser(resolver)

	stmt, err := p.Parse(QueryConfig{
		Table:      "products",
		GroupBys:   []string{"name"},
		Aggregates: []string{"*=COUNT"},
	})
	require.NoError(t, err)

	require.Len(t, stmt.Aggregates, 1)
	assert.Nil(t, stmt.Aggregates[0].Expr)
	assert.Equal(t, "count(*)", stmt.Aggregates[0].OutputName)
	assert.True(t, stmt.SelectExprs[1].Equal(expression.StarCountExpr()))
}

func TestConsoleSelectParserNoAggregationYieldsEmptySelect(t *testing.T) {
	resolver := NewExpressionResolver(productsCatalog())
	p := NewConsoleSelectParser(resolver)

	stmt, err := p.Parse(QueryConfig{Table: "products"})
	require.NoError(t, err)
	assert.Empty(t, stmt.SelectExprs)
}

func TestConsoleSelectParserInvalidAggregateFormatFails(t *testing.T) {
	resolver := NewExpressionResolver(productsCatalog())
	p := NewConsoleSelectParser(resolver)

	_, err := p.Parse(QueryConfig{Table: "products", Aggregates: []string{"priceSUM"}})
	require.Error(t, err)
}
