// Package plan implements the logical plan tree: Scan, Filter,
// Aggregation, Projection, Sort, Offset, and Limit nodes, each exposing an
// output schema and a fixed child list.
package plan

import (
	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
)

// Node is a logical plan node. Nodes form a DAG-free tree; Scan is the
// only leaf kind.
type Node interface {
	OutputSchema() schema.Schema
	Children() []Node
	String() string
}

// Scan is the leaf node: its output schema is the table's own schema.
type Scan struct {
	Table  table.Table
	schema schema.Schema
}

// NewScan builds a Scan over table.
func NewScan(t table.Table) *Scan {
	return &Scan{Table: t, schema: t.Schema()}
}

func (n *Scan) OutputSchema() schema.Schema { return n.schema }
func (n *Scan) Children() []Node            { return nil }
func (n *Scan) String() string              { return "Scan(" + n.schema.String() + ")" }

// Filter keeps rows for which Predicate evaluates true; its output schema
// is its child's.
type Filter struct {
	Predicate expression.Expression
	Child     Node
}

// NewFilter builds a Filter node.
func NewFilter(predicate expression.Expression, child Node) *Filter {
	return &Filter{Predicate: predicate, Child: child}
}

func (n *Filter) OutputSchema() schema.Schema { return n.Child.OutputSchema() }
func (n *Filter) Children() []Node            { return []Node{n.Child} }
func (n *Filter) String() string              { return "Filter(" + n.Predicate.String() + ")" }

// Aggregation groups its child's rows by GroupBys and accumulates
// Aggregates per group. Its output schema places aggregate columns first
// (definition order), then group-by columns (definition order), names
// de-duplicated by first occurrence.
type Aggregation struct {
	GroupBys   []expression.Expression
	Aggregates []expression.Aggregate
	Child      Node
	schema     schema.Schema
}

// NewAggregation builds an Aggregation node with a precomputed output
// schema (built by the planner).
func NewAggregation(groupBys []expression.Expression, aggregates []expression.Aggregate, child Node, outputSchema schema.Schema) *Aggregation {
	return &Aggregation{GroupBys: groupBys, Aggregates: aggregates, Child: child, schema: outputSchema}
}

func (n *Aggregation) OutputSchema() schema.Schema { return n.schema }
func (n *Aggregation) Children() []Node            { return []Node{n.Child} }
func (n *Aggregation) String() string              { return "Aggregation(" + n.schema.String() + ")" }

// Projection evaluates Expressions against each child row, in column
// order, to build the output row.
type Projection struct {
	Expressions []expression.Expression
	Child       Node
	schema      schema.Schema
}

// NewProjection builds a Projection node.
func NewProjection(exprs []expression.Expression, child Node, outputSchema schema.Schema) *Projection {
	return &Projection{Expressions: exprs, Child: child, schema: outputSchema}
}

func (n *Projection) OutputSchema() schema.Schema { return n.schema }
func (n *Projection) Children() []Node            { return []Node{n.Child} }
func (n *Projection) String() string              { return "Projection(" + n.schema.String() + ")" }

// Sort stably orders its child's rows by OrderBy, ascending, NULLs first.
// Its output schema is its child's.
type Sort struct {
	OrderBy []expression.Expression
	Child   Node
}

// NewSort builds a Sort node.
func NewSort(orderBy []expression.Expression, child Node) *Sort {
	return &Sort{OrderBy: orderBy, Child: child}
}

func (n *Sort) OutputSchema() schema.Schema { return n.Child.OutputSchema() }
func (n *Sort) Children() []Node            { return []Node{n.Child} }
func (n *Sort) String() string              { return "Sort" }

// Offset drops the first N rows of its child. Its output schema is its
// child's.
type Offset struct {
	N     int
	Child Node
}

// NewOffset builds an Offset node.
func NewOffset(n int, child Node) *Offset { return &Offset{N: n, Child: child} }

func (n *Offset) OutputSchema() schema.Schema { return n.Child.OutputSchema() }
func (n *Offset) Children() []Node            { return []Node{n.Child} }
func (n *Offset) String() string              { return "Offset" }

// Limit yields at most N rows of its child. Its output schema is its
// child's.
type Limit struct {
	N     int
	Child Node
}

// NewLimit builds a Limit node.
func NewLimit(n int, child Node) *Limit { return &Limit{N: n, Child: child} }

func (n *Limit) OutputSchema() schema.Schema { return n.Child.OutputSchema() }
func (n *Limit) Children() []Node            { return []Node{n.Child} }
func (n *Limit) String() string              { return "Limit" }
