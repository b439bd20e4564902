package rowexec

import (
	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// filterExec pulls from its child until Predicate evaluates TRUE (FALSE
// and NULL both drop the row), per the tri-state semantics in spec
// section 3.
type filterExec struct {
	predicate expression.Expression
	child     Executor
}

func newFilterExec(predicate expression.Expression, child Executor) *filterExec {
	return &filterExec{predicate: predicate, child: child}
}

func (e *filterExec) Init() error { return e.child.Init() }

func (e *filterExec) Next() (row.Row, bool, error) {
	for {
		r, ok, err := e.child.Next()
		if err != nil || !ok {
			return row.Row{}, false, err
		}
		v, err := e.predicate.Eval(r)
		if err != nil {
			return row.Row{}, false, err
		}
		if isTrue(v) {
			return r, true, nil
		}
	}
}

func (e *filterExec) Schema() schema.Schema { return e.child.Schema() }

// isTrue reports whether v is the tri-state TRUE value: a non-null
// BOOLEAN holding true. NULL and FALSE both fail the predicate.
func isTrue(v types.Value) bool {
	if v.IsNull() || v.TypeID() != types.Boolean {
		return false
	}
	b, _ := v.Raw().(bool)
	return b
}
