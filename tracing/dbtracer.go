// Package tracing provides hooks that observe the passes of an rta.Solver.
package tracing

import (
	"github.com/rs/xid"

	"github.com/sarchlab/rta/datarecording"
	"github.com/sarchlab/rta/rta"
)

// IterationTableName is the table the DBTracer writes into.
const IterationTableName = "rta_iterations"

// IterationEntry is a row of the iteration table.
type IterationEntry struct {
	RunID     string
	Task      int
	Step      int
	Previous  int64
	Current   int64
	Converged bool
}

// DBTracer records every pass of a solver into a DataRecorder.
type DBTracer struct {
	runID    string
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer and the table it writes into. All the rows
// written by the tracer share the same RunID.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{
		runID:    xid.New().String(),
		recorder: recorder,
	}

	recorder.CreateTable(IterationTableName, IterationEntry{})

	return t
}

// RunID returns the identifier stored with every row.
func (t *DBTracer) RunID() string {
	return t.runID
}

// Func records iteration hooks.
func (t *DBTracer) Func(ctx rta.HookCtx) {
	if ctx.Pos != rta.HookPosIteration {
		return
	}

	it := ctx.Item.(rta.Iteration)

	t.recorder.InsertData(IterationTableName, IterationEntry{
		RunID:     t.runID,
		Task:      it.Task,
		Step:      it.Step,
		Previous:  it.Previous,
		Current:   it.Current,
		Converged: it.Converged(),
	})
}
