package types

import errors "gopkg.in/src-d/go-errors.v1"

// Error kinds for the type system. Each is instantiated with .New(args...)
// at the failure site.
var (
	// ErrUnsupportedCast is returned when a cast target is not reachable
	// from the source TypeId per the cast matrix.
	ErrUnsupportedCast = errors.NewKind("%s is not coercible to %s")

	// ErrMalformedLiteral is returned when a STRING payload cannot be
	// parsed into the requested target type.
	ErrMalformedLiteral = errors.NewKind("cannot convert %q to %s")

	// ErrIncomparableTypes is returned when two values share no comparable
	// relation (neither equal TypeIds nor both NUMERIC).
	ErrIncomparableTypes = errors.NewKind("values of type %s and %s are not comparable")

	// ErrNonNumericArithmetic is returned when arithmetic is attempted on
	// an operand outside NUMERIC.
	ErrNonNumericArithmetic = errors.NewKind("arithmetic requires numeric operands, got %s and %s")

	// ErrTypeMismatch is returned when a Value's TypeId does not match the
	// TypeId a caller asserted on entry.
	ErrTypeMismatch = errors.NewKind("value has type %s, expected %s")
)
