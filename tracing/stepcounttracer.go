package tracing

import (
	"sync"

	"github.com/sarchlab/rta/rta"
)

// StepCountTracer counts the passes each task takes to converge.
type StepCountTracer struct {
	lock      sync.Mutex
	steps     map[int]int
	converged map[int]bool
}

// NewStepCountTracer creates a new StepCountTracer.
func NewStepCountTracer() *StepCountTracer {
	return &StepCountTracer{
		steps:     make(map[int]int),
		converged: make(map[int]bool),
	}
}

// Func counts iteration hooks and remembers converged tasks.
func (t *StepCountTracer) Func(ctx rta.HookCtx) {
	it := ctx.Item.(rta.Iteration)

	t.lock.Lock()
	defer t.lock.Unlock()

	switch ctx.Pos {
	case rta.HookPosIteration:
		t.steps[it.Task]++
	case rta.HookPosConverged:
		t.converged[it.Task] = true
	}
}

// Steps returns the number of passes recorded for a task.
func (t *StepCountTracer) Steps(task int) int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.steps[task]
}

// Converged tells if the task has reached its fixed point.
func (t *StepCountTracer) Converged(task int) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.converged[task]
}
