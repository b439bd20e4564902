package plan

import (
	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/schema"
	"github.com/MDx3R/csv-processor/sql/table"
	"github.com/MDx3R/csv-processor/sql/types"
)

// Planner builds an executable plan tree from a validated SelectStatement,
// resolving the table against a catalog.
type Planner struct {
	catalog   table.Catalog
	validator *Validator
}

// NewPlanner builds a Planner over catalog, validating with the default
// Validator.
func NewPlanner(catalog table.Catalog) *Planner {
	return &Planner{catalog: catalog, validator: NewValidator()}
}

// CreatePlan validates stmt and builds its plan tree: validate, resolve
// the source table, then wrap Scan in Filter, Aggregation, Projection,
// Sort, Offset, and Limit as each clause is present.
func (p *Planner) CreatePlan(stmt SelectStatement) (Node, error) {
	if err := p.validator.Validate(stmt); err != nil {
		return nil, err
	}

	tbl, err := p.catalog.Resolve(stmt.FromTable)
	if err != nil {
		return nil, err
	}
	tableSchema := tbl.Schema()

	var node Node = NewScan(tbl)

	if stmt.Where != nil {
		node = NewFilter(stmt.Where, node)
	}

	hasAggregation := len(stmt.GroupBys) > 0 || len(stmt.Aggregates) > 0
	if hasAggregation {
		node = p.buildAggregation(stmt, node, tableSchema)
	}

	outputSchema := constructOutputSchema(stmt, tableSchema)
	node = buildProjection(outputSchema, node)

	if len(stmt.OrderBy) > 0 {
		node = NewSort(stmt.OrderBy, node)
	}
	if stmt.Offset != nil {
		node = NewOffset(*stmt.Offset, node)
	}
	if stmt.Limit != nil {
		node = NewLimit(*stmt.Limit, node)
	}

	return node, nil
}

func (p *Planner) buildAggregation(stmt SelectStatement, child Node, tableSchema schema.Schema) Node {
	outputSchema := constructOutputSchema(stmt, tableSchema)
	aggregates := resolveAggregates(stmt.Aggregates)
	return NewAggregation(stmt.GroupBys, aggregates, child, outputSchema)
}

func resolveAggregates(defs []expression.AggregateDef) []expression.Aggregate {
	out := make([]expression.Aggregate, len(defs))
	for i, d := range defs {
		out[i] = expression.ResolveAggregate(d)
	}
	return out
}

func buildProjection(outputSchema schema.Schema, child Node) Node {
	cols := outputSchema.Columns()
	exprs := make([]expression.Expression, len(cols))
	for i, c := range cols {
		exprs[i] = expression.NewColumn(c)
	}
	return NewProjection(exprs, child, outputSchema)
}

// constructOutputSchema builds the output schema: aggregates
// first (definition order), then group-by columns (definition order), then
// any remaining select expressions not already covered, de-duplicated by
// name. An empty result falls back to the base table's schema (SELECT *).
func constructOutputSchema(stmt SelectStatement, tableSchema schema.Schema) schema.Schema {
	var cols []schema.Column
	seen := make(map[string]bool)

	addExpr := func(name string, t expression.Expression) {
		if seen[name] {
			return
		}
		seen[name] = true
		cols = append(cols, schema.NewColumn(name, t.ReturnType()))
	}
	addType := func(name string, t types.TypeId) {
		if seen[name] {
			return
		}
		seen[name] = true
		cols = append(cols, schema.NewColumn(name, t))
	}

	for _, def := range stmt.Aggregates {
		agg := expression.ResolveAggregate(def)
		addType(agg.OutputName, agg.ReturnType())
	}

	for _, gb := range stmt.GroupBys {
		addExpr(gb.String(), gb)
	}

	for _, sel := range stmt.SelectExprs {
		if _, matched := matchedAggregateName(sel, stmt.Aggregates); matched {
			continue // already added above, under its aggregate output name
		}
		addExpr(sel.String(), sel)
	}

	if len(cols) == 0 {
		return tableSchema
	}
	return schema.New(cols)
}

// matchedAggregateName returns the output name of the aggregate whose
// inner expression equals expr (the COUNT(*) aggregate, whose Expr is
// nil, matches any expression), and whether a match was found.
func matchedAggregateName(expr expression.Expression, aggregates []expression.AggregateDef) (string, bool) {
	for _, agg := range aggregates {
		if agg.Expr == nil || agg.Expr.Equal(expr) {
			return agg.OutputName, true
		}
	}
	return "", false
}
