package schedule

import (
	"strings"

	"github.com/spindle-la/spindle/internal/descriptor"
	"github.com/spindle-la/spindle/internal/object"
	"github.com/spindle-la/spindle/internal/op"
	"github.com/spindle-la/spindle/internal/status"
)

// Task is a request to evaluate one operation against concrete arguments.
//
// Arguments are destination-first: args[0] receives the result, followed by
// one reference per operation argument. A unary or select task therefore
// binds two references and a binary task three.
//
// Tasks are immutable after construction and may appear in any number of
// schedules.
type Task struct {
	operation op.Op
	args      []object.Object
	desc      *descriptor.Descriptor
	keyFull   string
}

// NewTask binds an operation to its argument references plus an optional
// descriptor (nil means the process default applies at execution time).
func NewTask(operation op.Op, args []object.Object, desc *descriptor.Descriptor) (*Task, error) {
	if operation == nil {
		return nil, status.InvalidArgumentf("task requires an operation")
	}
	want := operation.Arity() + 1
	if len(args) != want {
		return nil, status.InvalidArgumentf("op %q binds %d references (destination plus %d arguments), got %d",
			operation.Name(), want, operation.Arity(), len(args))
	}
	for i, a := range args {
		if a == nil {
			return nil, status.InvalidArgumentf("op %q: argument %d is nil", operation.Name(), i)
		}
	}

	// key_full distinguishes two invocations of the same operation on
	// different data; executors use it for task-level memoization.
	ids := make([]string, len(args))
	for i, a := range args {
		ids[i] = a.ID()
	}
	bound := make([]object.Object, len(args))
	copy(bound, args)

	return &Task{
		operation: operation,
		args:      bound,
		desc:      desc,
		keyFull:   operation.Key() + ":" + strings.Join(ids, ","),
	}, nil
}

// Name returns the operation name.
func (t *Task) Name() string { return t.operation.Name() }

// Key returns the operation's canonical key.
func (t *Task) Key() string { return t.operation.Key() }

// KeyFull returns the task identity: the operation key plus the identities
// of the bound arguments.
func (t *Task) KeyFull() string { return t.keyFull }

// Op returns the bound operation.
func (t *Task) Op() op.Op { return t.operation }

// Args returns the bound argument references, destination first. The slice
// must not be mutated.
func (t *Task) Args() []object.Object { return t.args }

// Desc returns the attached descriptor, or nil when none was given.
func (t *Task) Desc() *descriptor.Descriptor { return t.desc }

// DescOrDefault returns the attached descriptor, falling back to the
// process default.
func (t *Task) DescOrDefault() *descriptor.Descriptor {
	if t.desc != nil {
		return t.desc
	}
	return descriptor.Default()
}
