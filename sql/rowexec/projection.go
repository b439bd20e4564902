package rowexec

import (
	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// projectionExec evaluates Expressions against each child row, in column
// order, to build the output row. Row count and child order are preserved.
type projectionExec struct {
	expressions []expression.Expression
	child       Executor
	schema      schema.Schema
}

func newProjectionExec(exprs []expression.Expression, child Executor, sc schema.Schema) *projectionExec {
	return &projectionExec{expressions: exprs, child: child, schema: sc}
}

func (e *projectionExec) Init() error { return e.child.Init() }

func (e *projectionExec) Next() (row.Row, bool, error) {
	r, ok, err := e.child.Next()
	if err != nil || !ok {
		return row.Row{}, false, err
	}
	values := make([]types.Value, len(e.expressions))
	for i, ex := range e.expressions {
		v, err := ex.Eval(r)
		if err != nil {
			return row.Row{}, false, err
		}
		values[i] = v
	}
	out, err := row.New(e.schema, values)
	if err != nil {
		return row.Row{}, false, err
	}
	return out, true, nil
}

func (e *projectionExec) Schema() schema.Schema { return e.schema }
