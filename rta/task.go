package rta

import "math/big"

// NumTasks is the number of tasks in a TaskSet.
const NumTasks = 3

// A TaskSet holds the period and cost of each task. Index order is priority
// order.
type TaskSet struct {
	Period [NumTasks]int64
	Cost   [NumTasks]int64
}

// DefaultTaskSet returns the task set the rta command analyzes.
func DefaultTaskSet() TaskSet {
	return TaskSet{
		Period: [NumTasks]int64{50, 30, 20},
		Cost:   [NumTasks]int64{15, 10, 5},
	}
}

// Validate checks that every period and cost is positive.
func (ts TaskSet) Validate() error {
	for i := 0; i < NumTasks; i++ {
		if ts.Period[i] <= 0 {
			return &TaskError{Task: i, Value: ts.Period[i], Err: ErrInvalidPeriod}
		}

		if ts.Cost[i] <= 0 {
			return &TaskError{Task: i, Value: ts.Cost[i], Err: ErrInvalidCost}
		}
	}

	return nil
}

// InterferenceUtilization returns the exact sum of Cost[j]/Period[j] over the
// tasks with a lower priority than task i. A negative i counts every task and
// an i past the last task counts none.
func (ts TaskSet) InterferenceUtilization(i int) *big.Rat {
	u := new(big.Rat)

	for j := max(i+1, 0); j < NumTasks; j++ {
		u.Add(u, big.NewRat(ts.Cost[j], ts.Period[j]))
	}

	return u
}

// Result holds the converged value of each task, in index order.
type Result [NumTasks]int64

// Iteration describes one pass of the recurrence for a task.
type Iteration struct {
	Task     int
	Step     int
	Previous int64
	Current  int64
}

// Converged tells if the pass left the value unchanged.
func (it Iteration) Converged() bool {
	return it.Previous == it.Current
}
