// Package schedule batches computation requests into ordered, potentially
// parallel groups before handing them to an execution engine.
//
// A Schedule is an ordered sequence of steps. Each step is a set of tasks
// the builder asserts are free of data hazards among each other; the
// executor may run them concurrently. Steps execute strictly in insertion
// order with an implicit barrier between them. The schedule defines ordering
// intent only; it never spawns work itself.
//
// A schedule has a single logical builder and is consumed by a successful
// Submit. It is not safe for concurrent mutation.
package schedule

import (
	"github.com/spindle-la/spindle/internal/status"
)

// Schedule accumulates steps of tasks for one submission.
type Schedule struct {
	exec      Executor
	steps     [][]*Task
	submitted bool
}

// New creates an empty schedule that will submit to exec.
func New(exec Executor) (*Schedule, error) {
	if exec == nil {
		return nil, status.InvalidArgumentf("schedule requires an executor")
	}
	return &Schedule{exec: exec}, nil
}

// NewDefault creates an empty schedule bound to the default executor, as
// resolved through the executor registration table.
func NewDefault() (*Schedule, error) {
	exec, err := NewExecutor(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return New(exec)
}

// StepTask appends task as a new step of size one.
func (s *Schedule) StepTask(task *Task) error {
	if s.submitted {
		return status.Statef("schedule already submitted")
	}
	if task == nil {
		return status.InvalidArgumentf("nil task")
	}
	s.steps = append(s.steps, []*Task{task})
	return nil
}

// StepTasks appends the given tasks as a single new step. The caller
// guarantees the tasks are mutually independent: no reference written by one
// task of the step is read or written by another. The schedule performs no
// hazard detection.
//
// On error the schedule is left unchanged.
func (s *Schedule) StepTasks(tasks []*Task) error {
	if s.submitted {
		return status.Statef("schedule already submitted")
	}
	if len(tasks) == 0 {
		return status.InvalidArgumentf("step requires at least one task")
	}
	for i, t := range tasks {
		if t == nil {
			return status.InvalidArgumentf("task %d is nil", i)
		}
	}
	step := make([]*Task, len(tasks))
	copy(step, tasks)
	s.steps = append(s.steps, step)
	return nil
}

// NumSteps returns the number of accumulated steps.
func (s *Schedule) NumSteps() int { return len(s.steps) }

// Submit finalizes the step sequence and hands it to the executor. The
// executor outcome is relayed verbatim. After a successful Submit the
// schedule accepts no further steps; a failed Submit leaves it open so the
// caller may decide to resubmit.
//
// Submitting an empty schedule succeeds without invoking the executor.
func (s *Schedule) Submit() error {
	if s.submitted {
		return status.Statef("schedule already submitted")
	}
	if len(s.steps) == 0 {
		s.submitted = true
		return nil
	}
	if err := s.exec.Execute(s.steps); err != nil {
		return err
	}
	s.submitted = true
	return nil
}
