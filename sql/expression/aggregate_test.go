package expression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MDx3R/csv-processor/sql/types"
)

func TestParseAggFuncCaseInsensitive(t *testing.T) {
	f, err := ParseAggFunc("SuM")
	require.NoError(t, err)
	assert.Equal(t, AggSum, f)
}

func TestParseAggFuncUnknown(t *testing.T) {
	_, err := ParseAggFunc("median")
	require.Error(t, err)
}

func TestCountIgnoresNull(t *testing.T) {
	s := NewState(AggCount)
	require.NoError(t, s.Update(types.NewInt(1)))
	require.NoError(t, s.Update(types.NewNull(types.Int)))
	require.NoError(t, s.Update(types.NewInt(1)))
	assert.True(t, s.Finalize().Equal(types.NewInt(2)))
}

func TestSumSingleElementEqualsElement(t *testing.T) {
	s := NewState(AggSum)
	require.NoError(t, s.Update(types.NewInt(7)))
	got := s.Finalize()
	assert.True(t, got.Equal(types.NewInt(7)))
}

func TestSumEmptyFinalizesNullDecimal(t *testing.T) {
	s := NewState(AggSum)
	got := s.Finalize()
	assert.True(t, got.IsNull())
	assert.Equal(t, types.Decimal, got.TypeID())
}

func TestMinMaxEmptyFinalizesNullDecimal(t *testing.T) {
	min := NewState(AggMin).Finalize()
	assert.True(t, min.IsNull())
	assert.Equal(t, types.Decimal, min.TypeID())

	max := NewState(AggMax).Finalize()
	assert.True(t, max.IsNull())
	assert.Equal(t, types.Decimal, max.TypeID())
}

func TestMinMaxOverValues(t *testing.T) {
	min := NewState(AggMin)
	require.NoError(t, min.Update(types.NewInt(5)))
	require.NoError(t, min.Update(types.NewInt(2)))
	require.NoError(t, min.Update(types.NewInt(8)))
	assert.True(t, min.Finalize().Equal(types.NewInt(2)))

	max := NewState(AggMax)
	require.NoError(t, max.Update(types.NewInt(5)))
	require.NoError(t, max.Update(types.NewInt(2)))
	require.NoError(t, max.Update(types.NewInt(8)))
	assert.True(t, max.Finalize().Equal(types.NewInt(8)))
}

func TestAvgOfRepeatedValueEqualsValue(t *testing.T) {
	s := NewState(AggAvg)
	for i := 0; i < 4; i++ {
		require.NoError(t, s.Update(types.NewInt(5)))
	}
	got := s.Finalize()
	assert.Equal(t, types.Decimal, got.TypeID())
	assert.InDelta(t, 5.0, got.Raw().(float64), 1e-9)
}

func TestAvgEmptyFinalizesNullDecimal(t *testing.T) {
	got := NewState(AggAvg).Finalize()
	assert.True(t, got.IsNull())
	assert.Equal(t, types.Decimal, got.TypeID())
}

func TestAvgIgnoresNull(t *testing.T) {
	s := NewState(AggAvg)
	require.NoError(t, s.Update(types.NewInt(10)))
	require.NoError(t, s.Update(types.NewNull(types.Int)))
	require.NoError(t, s.Update(types.NewInt(20)))
	got := s.Finalize()
	assert.InDelta(t, 15.0, got.Raw().(float64), 1e-9)
}

func TestResolveAggregateSubstitutesStarWithConstantOne(t *testing.T) {
	agg := ResolveAggregate(AggregateDef{Func: AggCount, Expr: nil, OutputName: "count(*)"})
	assert.True(t, agg.Expr.Equal(StarCountExpr()))
}

func TestAggregateReturnTypeIsInnerExpressionType(t *testing.T) {
	col := NewConstant(types.NewInt(1))
	agg := Aggregate{Func: AggSum, Expr: col, OutputName: "sum(x)"}
	assert.Equal(t, types.Int, agg.ReturnType())
}

func TestDivideByZeroCountProducesNaNNotError(t *testing.T) {
	_, err := types.NewInt(5).Divide(types.NewInt(0))
	require.NoError(t, err)
	v, _ := types.NewInt(5).Divide(types.NewInt(0))
	assert.True(t, math.IsNaN(v.Raw().(float64)))
}
