package parse

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/MDx3R/csv-processor/sql/expression"
	"github.com/MDx3R/csv-processor/sql/plan"
)

// ErrInvalidAggregate is returned when an --aggregate token is not in
// "LHS=FUNC" form.
var ErrInvalidAggregate = errors.NewKind("invalid aggregate format: %q (expected column=FUNC)")

// ConsoleSelectParser turns a QueryConfig into a validated plan.SelectStatement,
// resolving every column reference against resolver's catalog.
type ConsoleSelectParser struct {
	resolver *ExpressionResolver
}

// NewConsoleSelectParser builds a ConsoleSelectParser over resolver.
func NewConsoleSelectParser(resolver *ExpressionResolver) *ConsoleSelectParser {
	return &ConsoleSelectParser{resolver: resolver}
}

// Parse resolves cfg into a plan.SelectStatement.
func (p *ConsoleSelectParser) Parse(cfg QueryConfig) (plan.SelectStatement, error) {
	var where expression.Expression
	if cfg.Where != "" {
		w, err := p.resolver.ResolveComparison(cfg.Where, cfg.Table)
		if err != nil {
			return plan.SelectStatement{}, err
		}
		where = w
	}

	groupBys := make([]expression.Expression, len(cfg.GroupBys))
	for i, col := range cfg.GroupBys {
		e, err := p.resolver.ResolveColumnExpression(col, cfg.Table)
		if err != nil {
			return plan.SelectStatement{}, err
		}
		groupBys[i] = e
	}

	orderBy := make([]expression.Expression, len(cfg.Sort))
	for i, col := range cfg.Sort {
		e, err := p.resolver.ResolveColumnExpression(col, cfg.Table)
		if err != nil {
			return plan.SelectStatement{}, err
		}
		orderBy[i] = e
	}

	aggregates := make([]expression.AggregateDef, len(cfg.Aggregates))
	for i, s := range cfg.Aggregates {
		def, err := p.parseAggregate(s, cfg.Table)
		if err != nil {
			return plan.SelectStatement{}, err
		}
		aggregates[i] = def
	}

	selectExprs := inferSelectExpressions(groupBys, aggregates)

	return plan.SelectStatement{
		SelectExprs: selectExprs,
		FromTable:   cfg.Table,
		Where:       where,
		GroupBys:    groupBys,
		Aggregates:  aggregates,
		OrderBy:     orderBy,
		Offset:      cfg.Offset,
		Limit:       cfg.Limit,
	}, nil
}

func (p *ConsoleSelectParser) parseAggregate(s, tableName string) (expression.AggregateDef, error) {
	lhs, funcStr, ok := strings.Cut(s, "=")
	if !ok {
		return expression.AggregateDef{}, ErrInvalidAggregate.New(s)
	}
	lhs = strings.TrimSpace(lhs)
	funcStr = strings.TrimSpace(funcStr)

	fn, err := expression.ParseAggFunc(funcStr)
	if err != nil {
		return expression.AggregateDef{}, err
	}

	var expr expression.Expression
	if lhs != "*" {
		e, err := p.resolver.ResolveColumnExpression(lhs, tableName)
		if err != nil {
			return expression.AggregateDef{}, err
		}
		expr = e
	}

	outputName := strings.ToLower(funcStr) + "(" + lhs + ")"
	return expression.AggregateDef{Func: fn, Expr: expr, OutputName: outputName}, nil
}

// inferSelectExpressions mirrors a console tool's implicit
// SELECT inference: with any grouping or aggregation present, SELECT is
// the group-by columns followed by each aggregate's inner expression (the
// implicit constant-1 expression for COUNT(*)); otherwise an empty list,
// which the planner's output-schema construction treats as SELECT *.
func inferSelectExpressions(groupBys []expression.Expression, aggregates []expression.AggregateDef) []expression.Expression {
	if len(groupBys) == 0 && len(aggregates) == 0 {
		return nil
	}
	exprs := make([]expression.Expression, 0, len(groupBys)+len(aggregates))
	exprs = append(exprs, groupBys...)
	for _, agg := range aggregates {
		if agg.Expr != nil {
			exprs = append(exprs, agg.Expr)
		} else {
			exprs = append(exprs, expression.StarCountExpr())
		}
	}
	return exprs
}
