package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Value is a typed scalar: a TypeId paired with a payload that is absent
// when the Value is NULL. The TypeId is always defined, even for a NULL
// Value; NULL is represented as an absent payload, never a separate
// sentinel type.
type Value struct {
	typeID TypeId
	raw    interface{} // int64, float64, bool, string, or nil for NULL
}

// NewInt builds a non-NULL INT value.
func NewInt(v int64) Value { return Value{typeID: Int, raw: v} }

// NewDecimal builds a non-NULL DECIMAL value.
func NewDecimal(v float64) Value { return Value{typeID: Decimal, raw: v} }

// NewBoolean builds a non-NULL BOOLEAN value.
func NewBoolean(v bool) Value { return Value{typeID: Boolean, raw: v} }

// NewString builds a non-NULL STRING value.
func NewString(v string) Value { return Value{typeID: String, raw: v} }

// NewNull builds a NULL value carrying the given TypeId.
func NewNull(t TypeId) Value { return Value{typeID: t} }

// TypeID returns the Value's TypeId; this is defined even when the Value
// is NULL.
func (v Value) TypeID() TypeId { return v.typeID }

// IsNull reports whether the Value's payload is absent.
func (v Value) IsNull() bool { return v.raw == nil }

// Raw returns the underlying payload, or nil for a NULL value.
func (v Value) Raw() interface{} { return v.raw }

func (v Value) assertType(t TypeId) error {
	if v.typeID != t {
		return ErrTypeMismatch.New(v.typeID, t)
	}
	return nil
}

// checkComparable reports whether values of TypeIds left and right are
// comparable: either the TypeIds are the same, or both are NUMERIC.
func checkComparable(left, right TypeId) bool {
	if left == right {
		return true
	}
	return left.IsNumeric() && right.IsNumeric()
}

// Cast converts v to the target TypeId per a fixed source/target matrix.
// Casting a NULL value always yields a NULL value of the target TypeId.
func (v Value) Cast(target TypeId) (Value, error) {
	if v.IsNull() {
		return NewNull(target), nil
	}

	switch v.typeID {
	case Int:
		return v.castFromInt(target)
	case Decimal:
		return v.castFromDecimal(target)
	case Boolean:
		return v.castFromBoolean(target)
	case String:
		return v.castFromString(target)
	default:
		return Value{}, ErrTypeMismatch.New(v.typeID, target)
	}
}

func (v Value) castFromInt(target TypeId) (Value, error) {
	i := v.raw.(int64)
	switch target {
	case Int:
		return v, nil
	case Decimal:
		return NewDecimal(float64(i)), nil
	case Boolean:
		return NewBoolean(i != 0), nil
	case String:
		return NewString(strconv.FormatInt(i, 10)), nil
	default:
		return Value{}, ErrUnsupportedCast.New(Int, target)
	}
}

func (v Value) castFromDecimal(target TypeId) (Value, error) {
	f := v.raw.(float64)
	switch target {
	case Decimal:
		return v, nil
	case Int:
		return NewInt(int64(f)), nil // truncates toward zero
	case Boolean:
		return NewBoolean(f != 0.0), nil
	case String:
		return NewString(formatDecimal(f)), nil
	default:
		return Value{}, ErrUnsupportedCast.New(Decimal, target)
	}
}

func (v Value) castFromBoolean(target TypeId) (Value, error) {
	b := v.raw.(bool)
	switch target {
	case Boolean:
		return v, nil
	case Int:
		if b {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	case Decimal:
		if b {
			return NewDecimal(1.0), nil
		}
		return NewDecimal(0.0), nil
	case String:
		if b {
			return NewString("True"), nil
		}
		return NewString("False"), nil
	default:
		return Value{}, ErrUnsupportedCast.New(Boolean, target)
	}
}

func (v Value) castFromString(target TypeId) (Value, error) {
	s := v.raw.(string)
	switch target {
	case String:
		return v, nil
	case Int:
		i, err := cast.ToInt64E(s)
		if err != nil {
			return Value{}, ErrMalformedLiteral.New(s, Int)
		}
		return NewInt(i), nil
	case Decimal:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return Value{}, ErrMalformedLiteral.New(s, Decimal)
		}
		return NewDecimal(f), nil
	case Boolean:
		switch strings.ToLower(s) {
		case "true", "1":
			return NewBoolean(true), nil
		case "false", "0":
			return NewBoolean(false), nil
		default:
			return Value{}, ErrMalformedLiteral.New(s, Boolean)
		}
	default:
		return Value{}, ErrUnsupportedCast.New(String, target)
	}
}

// Compare evaluates `v op other` and returns TRUE, FALSE, or NULL. Either
// operand being NULL yields NULL. Numeric cross-type comparisons promote
// both operands to DECIMAL; STRING comparison is lexicographic on the raw
// code-point sequence; BOOLEAN follows false < true for all six operators.
func (v Value) Compare(other Value, op CompareOp) (TriState, error) {
	if !checkComparable(v.typeID, other.typeID) {
		return TriNull, ErrIncomparableTypes.New(v.typeID, other.typeID)
	}
	if v.IsNull() || other.IsNull() {
		return TriNull, nil
	}

	switch {
	case v.typeID.IsNumeric() && other.typeID.IsNumeric():
		lv, err := v.Cast(Decimal)
		if err != nil {
			return TriNull, err
		}
		rv, err := other.Cast(Decimal)
		if err != nil {
			return TriNull, err
		}
		return compareOrdered(lv.raw.(float64), rv.raw.(float64), op), nil
	case v.typeID == String:
		return compareOrdered(v.raw.(string), other.raw.(string), op), nil
	case v.typeID == Boolean:
		return compareOrdered(boolRank(v.raw.(bool)), boolRank(other.raw.(bool)), op), nil
	default:
		return TriNull, ErrIncomparableTypes.New(v.typeID, other.typeID)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

type ordered interface {
	~int | ~float64 | ~string
}

func compareOrdered[T ordered](l, r T, op CompareOp) TriState {
	var result bool
	switch op {
	case OpEQ:
		result = l == r
	case OpNEQ:
		result = l != r
	case OpLT:
		result = l < r
	case OpLTE:
		result = l <= r
	case OpGT:
		result = l > r
	case OpGTE:
		result = l >= r
	}
	if result {
		return TriTrue
	}
	return TriFalse
}

// Arithmetic applies op to v and other. Both operands must be NUMERIC; the
// result type is always DECIMAL. Division by zero yields DECIMAL NaN, not
// an error. If either operand is NULL, the result is NULL carrying v's
// TypeId.
func (v Value) Arithmetic(other Value, op ArithOp) (Value, error) {
	if !v.typeID.IsNumeric() || !other.typeID.IsNumeric() {
		return Value{}, ErrNonNumericArithmetic.New(v.typeID, other.typeID)
	}
	if v.IsNull() || other.IsNull() {
		return NewNull(v.typeID), nil
	}

	lv, err := v.Cast(Decimal)
	if err != nil {
		return Value{}, err
	}
	rv, err := other.Cast(Decimal)
	if err != nil {
		return Value{}, err
	}
	l, r := lv.raw.(float64), rv.raw.(float64)

	var result float64
	switch op {
	case ArithAdd:
		result = l + r
	case ArithSub:
		result = l - r
	case ArithMul:
		result = l * r
	case ArithDiv:
		if r == 0 {
			result = math.NaN()
		} else {
			result = l / r
		}
	}
	return NewDecimal(result), nil
}

// Add is a convenience wrapper used by aggregate accumulators.
func (v Value) Add(other Value) (Value, error) { return v.Arithmetic(other, ArithAdd) }

// Divide is a convenience wrapper used by AVG finalization.
func (v Value) Divide(other Value) (Value, error) { return v.Arithmetic(other, ArithDiv) }

// Min returns v if v <= other, else other. Both must be comparable.
func (v Value) Min(other Value) (Value, error) {
	cmp, err := v.Compare(other, OpLTE)
	if err != nil {
		return Value{}, err
	}
	if cmp == TriTrue {
		return v, nil
	}
	return other, nil
}

// Max returns v if v >= other, else other. Both must be comparable.
func (v Value) Max(other Value) (Value, error) {
	cmp, err := v.Compare(other, OpGTE)
	if err != nil {
		return Value{}, err
	}
	if cmp == TriTrue {
		return v, nil
	}
	return other, nil
}

// String renders v's canonical textual representation. A NULL value
// renders as "None".
func (v Value) String() string {
	if v.IsNull() {
		return "None"
	}
	switch v.typeID {
	case Int:
		return strconv.FormatInt(v.raw.(int64), 10)
	case Decimal:
		return formatDecimal(v.raw.(float64))
	case Boolean:
		if v.raw.(bool) {
			return "True"
		}
		return "False"
	case String:
		return v.raw.(string)
	default:
		return fmt.Sprintf("%v", v.raw)
	}
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Serialize returns the UTF-8 byte form of v's canonical textual
// representation.
func Serialize(v Value) []byte { return []byte(v.String()) }

// Deserialize parses raw as a STRING value and casts it to target, failing
// with a value error if the bytes are unparseable for target.
func Deserialize(raw []byte, target TypeId) (Value, error) {
	return NewString(string(raw)).Cast(target)
}

// Equal reports structural value equality: same TypeId and same payload
// (including both being NULL). NaN DECIMAL values are never equal to
// themselves, matching IEEE-754 semantics.
func (v Value) Equal(other Value) bool {
	if v.typeID != other.typeID {
		return false
	}
	if v.IsNull() != other.IsNull() {
		return false
	}
	if v.IsNull() {
		return true
	}
	return v.raw == other.raw
}
