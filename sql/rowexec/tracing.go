package rowexec

import (
	"github.com/opentracing/opentracing-go"

	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
)

// tracingExecutor wraps an Executor with one span per Init/drain pass:
// the span opens on Init and closes on the Next call that first observes
// exhaustion or an error. With no tracer registered this is a no-op.
type tracingExecutor struct {
	inner Executor
	label string
	span  opentracing.Span
}

func traced(label string, e Executor) Executor {
	return &tracingExecutor{inner: e, label: label}
}

func (e *tracingExecutor) Init() error {
	e.span = opentracing.StartSpan(e.label)
	if err := e.inner.Init(); err != nil {
		e.span.SetTag("error", true)
		e.span.Finish()
		return err
	}
	return nil
}

func (e *tracingExecutor) Next() (row.Row, bool, error) {
	r, ok, err := e.inner.Next()
	if e.span == nil {
		return r, ok, err
	}
	if err != nil {
		e.span.SetTag("error", true)
		e.span.Finish()
		e.span = nil
		return r, ok, err
	}
	if !ok {
		e.span.Finish()
		e.span = nil
	}
	return r, ok, err
}

func (e *tracingExecutor) Schema() schema.Schema { return e.inner.Schema() }
