package rta

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPeriod is returned when a task period is not positive.
	ErrInvalidPeriod = errors.New("period must be positive")

	// ErrInvalidCost is returned when a task cost is not positive.
	ErrInvalidCost = errors.New("cost must be positive")

	// ErrTaskIndex is returned when a task index is outside the task set.
	ErrTaskIndex = errors.New("task index out of range")

	// ErrUnbounded is returned when the lower-priority tasks demand the whole
	// processor, so that the recurrence grows forever.
	ErrUnbounded = errors.New("interference utilization is not below 1")

	// ErrNotConverged is returned when the iteration cap is reached.
	ErrNotConverged = errors.New("fixed point not reached")
)

// TaskError reports a problem with a specific task.
type TaskError struct {
	Task  int
	Value int64
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d: %v (got %d)", e.Task, e.Err, e.Value)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
