package rowexec

import (
	"sort"

	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// sortExec materializes its child's entire output during Init, stably
// sorts it ascending by the OrderBy key tuple (NULLs first within a key),
// and replays the sorted buffer on Next.
type sortExec struct {
	orderBy []expression.Expression
	child   Executor
	buffer  []row.Row
	pos     int
}

func newSortExec(orderBy []expression.Expression, child Executor) *sortExec {
	return &sortExec{orderBy: orderBy, child: child}
}

func (e *sortExec) Init() error {
	if err := e.child.Init(); err != nil {
		return err
	}
	e.buffer = nil
	e.pos = 0

	keys := make([][]types.Value, 0)
	for {
		r, ok, err := e.child.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		key, err := e.evalKey(r)
		if err != nil {
			return err
		}
		e.buffer = append(e.buffer, r)
		keys = append(keys, key)
	}

	sort.SliceStable(e.buffer, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	return nil
}

func (e *sortExec) evalKey(r row.Row) ([]types.Value, error) {
	key := make([]types.Value, len(e.orderBy))
	for i, expr := range e.orderBy {
		v, err := expr.Eval(r)
		if err != nil {
			return nil, err
		}
		key[i] = v
	}
	return key, nil
}

// lessKey compares two key tuples component-wise, ascending, NULLs first:
// a NULL component sorts before any non-NULL component regardless of type.
func lessKey(a, b []types.Value) bool {
	for i := range a {
		av, bv := a[i], b[i]
		switch {
		case av.IsNull() && bv.IsNull():
			continue
		case av.IsNull():
			return true
		case bv.IsNull():
			return false
		}
		tri, err := av.Compare(bv, types.OpLT)
		if err != nil {
			continue
		}
		if tri == types.TriTrue {
			return true
		}
		tri, err = av.Compare(bv, types.OpGT)
		if err == nil && tri == types.TriTrue {
			return false
		}
	}
	return false
}

func (e *sortExec) Next() (row.Row, bool, error) {
	if e.pos >= len(e.buffer) {
		return row.Row{}, false, nil
	}
	r := e.buffer[e.pos]
	e.pos++
	return r, true, nil
}

func (e *sortExec) Schema() schema.Schema { return e.child.Schema() }
