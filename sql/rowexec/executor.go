// Package rowexec implements the pull-based (Volcano) executor tree: one
// Executor per plan.Node kind, each driven by Init then repeated Next
// calls until exhaustion.
package rowexec

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/plan"
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
)

// ErrNotImplemented is returned by the executor factory for a plan.Node
// kind it does not know how to build.
var ErrNotImplemented = errors.NewKind("executor for plan node %T not implemented")

// Executor is one operator in the pull-based executor tree. Init prepares
// the operator (and, transitively, its children) to be pulled from fresh;
// Next yields the next row, or ok=false once the operator is exhausted.
type Executor interface {
	Init() error
	Next() (r row.Row, ok bool, err error)
	Schema() schema.Schema
}

// NewExecutor walks node top-down, recursing on children first, building
// the isomorphic executor tree. For a Scan node it also resolves a
// source-specific row reader via the table-reader factory.
func NewExecutor(node plan.Node) (Executor, error) {
	switch n := node.(type) {
	case *plan.Scan:
		reader, err := table.NewReader(n.Table)
		if err != nil {
			return nil, err
		}
		return traced("scan", newScanExec(reader, n.OutputSchema())), nil

	case *plan.Filter:
		child, err := NewExecutor(n.Child)
		if err != nil {
			return nil, err
		}
		return traced("filter", newFilterExec(n.Predicate, child)), nil

	case *plan.Aggregation:
		child, err := NewExecutor(n.Child)
		if err != nil {
			return nil, err
		}
		return traced("aggregation", newAggregationExec(n.GroupBys, n.Aggregates, child, n.OutputSchema())), nil

	case *plan.Projection:
		child, err := NewExecutor(n.Child)
		if err != nil {
			return nil, err
		}
		return traced("projection", newProjectionExec(n.Expressions, child, n.OutputSchema())), nil

	case *plan.Sort:
		child, err := NewExecutor(n.Child)
		if err != nil {
			return nil, err
		}
		return traced("sort", newSortExec(n.OrderBy, child)), nil

	case *plan.Offset:
		child, err := NewExecutor(n.Child)
		if err != nil {
			return nil, err
		}
		return traced("offset", newOffsetExec(n.N, child)), nil

	case *plan.Limit:
		child, err := NewExecutor(n.Child)
		if err != nil {
			return nil, err
		}
		return traced("limit", newLimitExec(n.N, child)), nil

	default:
		return nil, ErrNotImplemented.New(node)
	}
}
