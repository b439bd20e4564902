package rowexec

import (
	"github.com/mitchellh/hashstructure"

	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/types"
)

// aggregationExec groups its child's rows by GroupBys and accumulates
// Aggregates per group, materializing the full grouping during Init and
// replaying finalized group rows, in first-occurrence order, on Next. The
// hash table it builds is private to this executor.
type aggregationExec struct {
	groupBys   []expression.Expression
	aggregates []expression.Aggregate
	child      Executor
	schema     schema.Schema

	results []row.Row
	pos     int
}

func newAggregationExec(groupBys []expression.Expression, aggregates []expression.Aggregate, child Executor, sc schema.Schema) *aggregationExec {
	return &aggregationExec{groupBys: groupBys, aggregates: aggregates, child: child, schema: sc}
}

// group holds one group's key values and per-aggregate accumulator states,
// in GroupBys/Aggregates definition order.
type group struct {
	key    []types.Value
	states []expression.State
}

func (e *aggregationExec) Init() error {
	if err := e.child.Init(); err != nil {
		return err
	}
	e.pos = 0
	e.results = nil

	order := make([]uint64, 0)
	groups := make(map[uint64]*group)

	for {
		r, ok, err := e.child.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		key, err := e.evalGroupKey(r)
		if err != nil {
			return err
		}
		h, err := hashGroupKey(key)
		if err != nil {
			return err
		}

		g, exists := groups[h]
		if !exists {
			g = &group{key: key, states: e.newStates()}
			groups[h] = g
			order = append(order, h)
		}

		for i, agg := range e.aggregates {
			v, err := agg.Expr.Eval(r)
			if err != nil {
				return err
			}
			if err := g.states[i].Update(v); err != nil {
				return err
			}
		}
	}

	for _, h := range order {
		g := groups[h]
		values := make([]types.Value, 0, len(e.aggregates)+len(g.key))
		for _, s := range g.states {
			values = append(values, s.Finalize())
		}
		values = append(values, g.key...)
		out, err := row.New(e.schema, values)
		if err != nil {
			return err
		}
		e.results = append(e.results, out)
	}
	return nil
}

func (e *aggregationExec) newStates() []expression.State {
	states := make([]expression.State, len(e.aggregates))
	for i, agg := range e.aggregates {
		states[i] = expression.NewState(agg.Func)
	}
	return states
}

func (e *aggregationExec) evalGroupKey(r row.Row) ([]types.Value, error) {
	key := make([]types.Value, len(e.groupBys))
	for i, expr := range e.groupBys {
		v, err := expr.Eval(r)
		if err != nil {
			return nil, err
		}
		key[i] = v
	}
	return key, nil
}

// hashGroupKey hashes a group-key tuple structurally so that equal key
// values (same TypeId, same nullness, same raw payload) collide, using the
// same hashstructure mechanism the expression tree uses for its own
// structural hashing.
func hashGroupKey(key []types.Value) (uint64, error) {
	type keyShape struct {
		Type types.TypeId
		Null bool
		Raw  interface{}
	}
	shapes := make([]keyShape, len(key))
	for i, v := range key {
		shapes[i] = keyShape{Type: v.TypeID(), Null: v.IsNull(), Raw: v.Raw()}
	}
	return hashstructure.Hash(shapes, nil)
}

func (e *aggregationExec) Next() (row.Row, bool, error) {
	if e.pos >= len(e.results) {
		return row.Row{}, false, nil
	}
	r := e.results[e.pos]
	e.pos++
	return r, true, nil
}

func (e *aggregationExec) Schema() schema.Schema { return e.schema }
