package tracing

import (
	"log"

	"github.com/sarchlab/rta/rta"
)

// LogTracer prints every pass of a solver.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer creates a LogTracer that writes to logger.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// Func logs the hook.
func (t *LogTracer) Func(ctx rta.HookCtx) {
	it := ctx.Item.(rta.Iteration)

	switch ctx.Pos {
	case rta.HookPosIteration:
		t.logger.Printf("task %d step %d: %d -> %d",
			it.Task, it.Step, it.Previous, it.Current)
	case rta.HookPosConverged:
		t.logger.Printf("task %d converged to %d after %d steps",
			it.Task, it.Current, it.Step)
	}
}
