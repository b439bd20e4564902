package rowexec

import (
	"github.com/MDx3R/csv-processor/sql/row"
	"github.com/MDx3R/csv-processor/sql/schema"
)

// offsetExec drops the first N rows of its child, then forwards the rest
// unchanged. A child with fewer than N rows yields nothing.
type offsetExec struct {
	n       int
	child   Executor
	skipped int
}

func newOffsetExec(n int, child Executor) *offsetExec {
	return &offsetExec{n: n, child: child}
}

func (e *offsetExec) Init() error {
	e.skipped = 0
	return e.child.Init()
}

func (e *offsetExec) Next() (row.Row, bool, error) {
	for e.skipped < e.n {
		_, ok, err := e.child.Next()
		if err != nil || !ok {
			return row.Row{}, false, err
		}
		e.skipped++
	}
	return e.child.Next()
}

func (e *offsetExec) Schema() schema.Schema { return e.child.Schema() }

// limitExec yields at most N rows of its child. n=0 returns end-of-stream
// without touching the child.
type limitExec struct {
	n       int
	child   Executor
	emitted int
}

func newLimitExec(n int, child Executor) *limitExec {
	return &limitExec{n: n, child: child}
}

func (e *limitExec) Init() error {
	e.emitted = 0
	if e.n == 0 {
		return nil
	}
	return e.child.Init()
}

func (e *limitExec) Next() (row.Row, bool, error) {
	if e.emitted >= e.n {
		return row.Row{}, false, nil
	}
	r, ok, err := e.child.Next()
	if err != nil || !ok {
		return row.Row{}, false, err
	}
	e.emitted++
	return r, true, nil
}

func (e *limitExec) Schema() schema.Schema { return e.child.Schema() }
