package parse

import (
	"strconv"
	"strings"

	"github.com/MDx3R/csv-processor/sql/types"
)

// ParseLiteral parses a bare where-condition operand token into a Value:
// true/false (case-insensitive) to BOOLEAN; single-quoted or
// bare-alphabetic to STRING (quotes stripped); a token containing "." to
// DECIMAL; otherwise INT.
func ParseLiteral(raw string) (types.Value, error) {
	lower := strings.ToLower(raw)
	if lower == "true" || lower == "false" {
		return types.NewBoolean(lower == "true"), nil
	}

	if isQuoted(raw) {
		return types.NewString(raw[1 : len(raw)-1]), nil
	}
	if isAlpha(raw) {
		return types.NewString(raw), nil
	}

	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Value{}, types.ErrMalformedLiteral.New(raw, types.Decimal)
		}
		return types.NewDecimal(f), nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return types.Value{}, types.ErrMalformedLiteral.New(raw, types.Int)
	}
	return types.NewInt(n), nil
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\''
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// compareOpOf maps a recognized comparison token to its CompareOp.
func compareOpOf(token string) types.CompareOp {
	switch token {
	case "!=":
		return types.OpNEQ
	case ">=":
		return types.OpGTE
	case "<=":
		return types.OpLTE
	case "<":
		return types.OpLT
	case ">":
		return types.OpGT
	default:
		return types.OpEQ
	}
}
