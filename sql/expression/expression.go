// Package expression implements the expression tree: column references,
// constants, and comparisons, plus the structural equality and stable
// hashing needed to use expressions as hash-map keys.
package expression

import (
	"fmt"

	"github.com/mitchellh/hashstructure"

	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/types"
)

// Expression is a node in the expression tree. Every node can be evaluated
// against a Row without further context, has a return type derivable
// without a row, and supports structural equality and a stable hash so it
// can key maps and sets (notably the validator's allowed-expression set).
type Expression interface {
	Eval(r row.Row) (types.Value, error)
	ReturnType() types.TypeId
	String() string
	Equal(other Expression) bool
	Hash() uint64
}

// mustHash hashes a hashable struct with hashstructure, panicking only on
// programmer error (an un-hashable field), never on user input.
func mustHash(v interface{}) uint64 {
	h, err := hashstructure.Hash(v, nil)
	if err != nil {
		panic(fmt.Sprintf("expression: unhashable value %#v: %v", v, err))
	}
	return h
}
