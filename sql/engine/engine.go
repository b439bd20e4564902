// Package engine implements the query driver: it wires a validated
// plan.Node into an executor tree and drains it to completion.
package engine

import (
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/MDx3R/csv-processor/sql/plan"
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/rowexec"
	"github.com/MDx3R/csv-processor/sql/schema"
)

// Result is the finite row sequence produced by a query, paired with its
// output schema for rendering.
type Result struct {
	Schema schema.Schema
	Rows   []row.Row
}

// Engine builds and drains the executor tree for a single logical plan.
// It holds no state across queries; every Run call gets a fresh executor.
type Engine struct {
	log *logrus.Entry
}

// New builds an Engine.
func New() *Engine {
	return &Engine{log: logrus.WithField("component", "engine")}
}

// Run builds the executor tree for node, initializes it, and pulls rows
// until exhaustion.
func (eng *Engine) Run(node plan.Node) (Result, error) {
	span := opentracing.StartSpan("query.execute")
	defer span.Finish()

	exec, err := rowexec.NewExecutor(node)
	if err != nil {
		span.SetTag("error", true)
		return Result{}, err
	}

	if err := exec.Init(); err != nil {
		span.SetTag("error", true)
		eng.log.WithError(err).Error("executor init failed")
		return Result{}, err
	}

	var rows []row.Row
	for {
		r, ok, err := exec.Next()
		if err != nil {
			span.SetTag("error", true)
			eng.log.WithError(err).Error("executor next failed")
			return Result{}, err
		}
		if !ok {
			break
		}
		rows = append(rows, r)
	}

	span.SetTag("rows", len(rows))
	eng.log.WithField("rows", len(rows)).Debug("query complete")
	return Result{Schema: exec.Schema(), Rows: rows}, nil
}
