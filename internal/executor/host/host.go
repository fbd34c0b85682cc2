// Package host implements the reference executor. It evaluates scheduled
// tasks with their operations' host functions against scalar argument cells,
// running the tasks of a step concurrently and observing the barrier between
// steps.
package host

import (
	"sync"

	"k8s.io/klog/v2"

	"github.com/spindle-la/spindle/internal/object"
	"github.com/spindle-la/spindle/internal/op"
	"github.com/spindle-la/spindle/internal/schedule"
	"github.com/spindle-la/spindle/internal/status"
	"github.com/spindle-la/spindle/internal/types"
)

func init() {
	schedule.RegisterExecutor("host", func(string) (schedule.Executor, error) {
		return New(), nil
	})
}

// Executor evaluates tasks on the host CPU.
type Executor struct {
	mu   sync.Mutex
	done map[string]struct{}
}

// New creates a host executor with an empty memoization table.
func New() *Executor {
	return &Executor{done: make(map[string]struct{})}
}

// Name implements schedule.Executor.
func (e *Executor) Name() string { return "host" }

// Execute runs the steps in order. Within a step tasks run on their own
// goroutines; the next step starts only after every task of the previous one
// has completed. Tasks already executed by this executor (same key_full) are
// skipped.
func (e *Executor) Execute(steps [][]*schedule.Task) error {
	for i, step := range steps {
		klog.V(1).Infof("host executor: step %d with %d task(s)", i, len(step))

		var wg sync.WaitGroup
		var mu sync.Mutex
		var firstErr error

		for _, task := range step {
			if e.memoized(task.KeyFull()) {
				klog.V(2).Infof("host executor: skipping memoized task %s", task.KeyFull())
				continue
			}
			wg.Add(1)
			go func(task *schedule.Task) {
				defer wg.Done()
				if err := run(task); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				e.markDone(task.KeyFull())
			}(task)
		}
		wg.Wait()

		if firstErr != nil {
			return firstErr
		}
	}
	return nil
}

func (e *Executor) memoized(keyFull string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.done[keyFull]
	return ok
}

func (e *Executor) markDone(keyFull string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done[keyFull] = struct{}{}
}

// run evaluates one task, converting a panicking host function (division by
// zero and the like) into an execution error instead of crashing the
// process from a goroutine no caller can recover.
func run(task *schedule.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = status.Executionf("task %s: host function panicked: %v", task.KeyFull(), r)
		}
	}()
	return evaluate(task)
}

// evaluate dispatches on the operation variant and domain.
func evaluate(task *schedule.Task) error {
	args := task.Args()
	switch o := task.Op().(type) {
	case *op.Unary[int32]:
		return evalUnary(task, o, args)
	case *op.Unary[uint32]:
		return evalUnary(task, o, args)
	case *op.Unary[float32]:
		return evalUnary(task, o, args)
	case *op.Binary[int32]:
		return evalBinary(task, o, args)
	case *op.Binary[uint32]:
		return evalBinary(task, o, args)
	case *op.Binary[float32]:
		return evalBinary(task, o, args)
	case *op.Select[int32]:
		return evalSelect(task, o, args)
	case *op.Select[uint32]:
		return evalSelect(task, o, args)
	case *op.Select[float32]:
		return evalSelect(task, o, args)
	default:
		return status.Executionf("task %s: op variant %T not executable on host", task.KeyFull(), task.Op())
	}
}

func evalUnary[T types.Scalar](task *schedule.Task, o *op.Unary[T], args []object.Object) error {
	dst, ok := args[0].(*object.Scalar[T])
	if !ok {
		return status.Executionf("task %s: destination is not a %s cell", task.KeyFull(), o.Result())
	}
	src, ok := args[1].(*object.Scalar[T])
	if !ok {
		return status.Executionf("task %s: argument is not a %s cell", task.KeyFull(), o.Arg0())
	}
	dst.SetValue(o.Fn()(src.Value()))
	return nil
}

func evalBinary[T types.Scalar](task *schedule.Task, o *op.Binary[T], args []object.Object) error {
	dst, ok := args[0].(*object.Scalar[T])
	if !ok {
		return status.Executionf("task %s: destination is not a %s cell", task.KeyFull(), o.Result())
	}
	a, ok := args[1].(*object.Scalar[T])
	if !ok {
		return status.Executionf("task %s: argument 0 is not a %s cell", task.KeyFull(), o.Arg0())
	}
	b, ok := args[2].(*object.Scalar[T])
	if !ok {
		return status.Executionf("task %s: argument 1 is not a %s cell", task.KeyFull(), o.Arg1())
	}
	dst.SetValue(o.Fn()(a.Value(), b.Value()))
	return nil
}

func evalSelect[T types.Scalar](task *schedule.Task, o *op.Select[T], args []object.Object) error {
	dst, ok := args[0].(*object.Flag)
	if !ok {
		return status.Executionf("task %s: destination is not a boolean cell", task.KeyFull())
	}
	src, ok := args[1].(*object.Scalar[T])
	if !ok {
		return status.Executionf("task %s: argument is not a %s cell", task.KeyFull(), o.Arg0())
	}
	dst.SetValue(o.Fn()(src.Value()))
	return nil
}
