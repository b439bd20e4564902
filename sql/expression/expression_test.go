package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

func priceRow(t *testing.T, price int64) row.Row {
	t.Helper()
	sc := schema.New([]schema.Column{schema.NewColumn("price", types.Int)})
	r, err := row.New(sc, []types.Value{types.NewInt(price)})
	require.NoError(t, err)
	return r
}

func TestColumnExprEval(t *testing.T) {
	col := schema.NewColumn("price", types.Int)
	e := NewColumn(col)
	v, err := e.Eval(priceRow(t, 42))
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewInt(42)))
}

func TestConstantExprEval(t *testing.T) {
	e := NewConstant(types.NewString("hi"))
	v, err := e.Eval(row.Row{})
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewString("hi")))
}

func TestStarCountExprIsConstantOne(t *testing.T) {
	e := StarCountExpr()
	assert.True(t, e.Equal(NewConstant(types.NewInt(1))))
}

func TestComparisonExprEval(t *testing.T) {
	col := schema.NewColumn("price", types.Int)
	e := NewComparison(NewColumn(col), NewConstant(types.NewInt(20)), types.OpGTE)
	v, err := e.Eval(priceRow(t, 20))
	require.NoError(t, err)
	assert.True(t, v.Equal(types.NewBoolean(true)))
}

func TestComparisonExprNullPropagates(t *testing.T) {
	col := schema.NewColumn("price", types.Int)
	sc := schema.New([]schema.Column{col})
	r, err := row.New(sc, []types.Value{types.NewNull(types.Int)})
	require.NoError(t, err)

	e := NewComparison(NewColumn(col), NewConstant(types.NewInt(20)), types.OpGTE)
	v, err := e.Eval(r)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Equal(t, types.Boolean, v.TypeID())
}

func TestExpressionEqualityStructural(t *testing.T) {
	col := schema.NewColumn("price", types.Int)
	a := NewColumn(col)
	b := NewColumn(col)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestExpressionEqualityDistinguishesKinds(t *testing.T) {
	col := schema.NewColumn("price", types.Int)
	a := NewColumn(col)
	b := NewConstant(types.NewInt(1))
	assert.False(t, a.Equal(b))
}

func TestSetDeduplicatesStructurallyEqualMembers(t *testing.T) {
	s := NewSet()
	col := schema.NewColumn("price", types.Int)
	s.Add(NewColumn(col))
	s.Add(NewColumn(col))
	assert.True(t, s.Contains(NewColumn(col)))

	count := 0
	for _, bucket := range s.buckets {
		count += len(bucket)
	}
	assert.Equal(t, 1, count)
}

func TestSetRecognizesImplicitCountStarAnywhere(t *testing.T) {
	s := NewSet()
	s.Add(StarCountExpr())
	assert.True(t, s.Contains(NewConstant(types.NewInt(1))))
}
