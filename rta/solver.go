package rta

import (
	"fmt"
	"math/big"
)

// A Solver computes fixed points and reports every pass to its hooks.
type Solver struct {
	HookableBase

	maxIterations int
}

// Solve computes the fixed point of task i with a hook-free Solver.
func Solve(i int, ts TaskSet) (int64, error) {
	return MakeBuilder().Build().Solve(i, ts)
}

// Analyze computes the fixed point of every task with a hook-free Solver.
func Analyze(ts TaskSet) (Result, error) {
	return MakeBuilder().Build().Analyze(ts)
}

// Analyze solves the tasks in index order. It stops at the first task that
// fails.
func (s *Solver) Analyze(ts TaskSet) (Result, error) {
	var r Result

	for i := 0; i < NumTasks; i++ {
		v, err := s.Solve(i, ts)
		if err != nil {
			return Result{}, err
		}

		r[i] = v
	}

	return r, nil
}

// Solve returns the smallest v that satisfies
// v = Cost[i] + sum_{j>i} ceil(v/Period[j]) * Cost[j].
func (s *Solver) Solve(i int, ts TaskSet) (int64, error) {
	if i < 0 || i >= NumTasks {
		return 0, fmt.Errorf("%w: %d", ErrTaskIndex, i)
	}

	if err := ts.Validate(); err != nil {
		return 0, err
	}

	if ts.InterferenceUtilization(i).Cmp(big.NewRat(1, 1)) >= 0 {
		return 0, &TaskError{Task: i, Value: ts.Cost[i], Err: ErrUnbounded}
	}

	var previous, current int64 = 0, 1

	for step := 1; previous != current; step++ {
		if s.maxIterations > 0 && step > s.maxIterations {
			return 0, fmt.Errorf("task %d: %w after %d iterations",
				i, ErrNotConverged, s.maxIterations)
		}

		previous = current
		current = demand(i, previous, ts)

		s.report(HookPosIteration, Iteration{
			Task:     i,
			Step:     step,
			Previous: previous,
			Current:  current,
		})

		if previous == current {
			s.report(HookPosConverged, Iteration{
				Task:     i,
				Step:     step,
				Previous: previous,
				Current:  current,
			})
		}
	}

	return current, nil
}

func (s *Solver) report(pos *HookPos, it Iteration) {
	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(HookCtx{Domain: s, Pos: pos, Item: it})
}

// demand is the right-hand side of the recurrence evaluated at window w.
func demand(i int, w int64, ts TaskSet) int64 {
	d := ts.Cost[i]

	for j := i + 1; j < NumTasks; j++ {
		d += CeilDiv(w, ts.Period[j]) * ts.Cost[j]
	}

	return d
}

// CeilDiv returns ceil(a/b) for a >= 0 and b > 0.
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		panic("divisor must be positive")
	}

	if a <= 0 {
		return 0
	}

	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}
