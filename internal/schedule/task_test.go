package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spindle-la/spindle/internal/descriptor"
	"github.com/spindle-la/spindle/internal/object"
	"github.com/spindle-la/spindle/internal/op"
	"github.com/spindle-la/spindle/internal/schedule"
	"github.com/spindle-la/spindle/internal/status"
)

func TestNewTaskBindsDestinationFirst(t *testing.T) {
	r := op.NewRegistry()
	dst := object.NewScalar[int32]("dst", 0)
	a := object.NewScalar[int32]("a", 1)
	b := object.NewScalar[int32]("b", 2)

	task, err := schedule.NewTask(r.PlusInt, []object.Object{dst, a, b}, nil)
	require.NoError(t, err)

	assert.Equal(t, "plus", task.Name())
	assert.Equal(t, "plus_iii", task.Key())
	assert.Equal(t, []object.Object{dst, a, b}, task.Args())
}

func TestKeyFullDistinguishesArguments(t *testing.T) {
	r := op.NewRegistry()
	mk := func() *schedule.Task {
		dst := object.NewScalar[int32]("dst", 0)
		src := object.NewScalar[int32]("src", 1)
		task, err := schedule.NewTask(r.IdentityInt, []object.Object{dst, src}, nil)
		require.NoError(t, err)
		return task
	}
	t1, t2 := mk(), mk()
	assert.Equal(t, t1.Key(), t2.Key())
	assert.NotEqual(t, t1.KeyFull(), t2.KeyFull(),
		"same op on different data must have distinct key_full")

	// Same op on the same data produces the same key_full.
	dst := object.NewScalar[int32]("dst", 0)
	src := object.NewScalar[int32]("src", 1)
	a, err := schedule.NewTask(r.IdentityInt, []object.Object{dst, src}, nil)
	require.NoError(t, err)
	b, err := schedule.NewTask(r.IdentityInt, []object.Object{dst, src}, nil)
	require.NoError(t, err)
	assert.Equal(t, a.KeyFull(), b.KeyFull())
}

func TestNewTaskArityValidation(t *testing.T) {
	r := op.NewRegistry()
	dst := object.NewScalar[int32]("dst", 0)
	a := object.NewScalar[int32]("a", 1)

	// Binary op needs destination plus two arguments.
	_, err := schedule.NewTask(r.PlusInt, []object.Object{dst, a}, nil)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)

	// Unary op needs destination plus one argument.
	_, err = schedule.NewTask(r.IdentityInt, []object.Object{dst, a, a}, nil)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)

	_, err = schedule.NewTask(nil, []object.Object{dst, a}, nil)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)

	_, err = schedule.NewTask(r.IdentityInt, []object.Object{dst, nil}, nil)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)
}

func TestDescOrDefault(t *testing.T) {
	r := op.NewRegistry()
	dst := object.NewScalar[int32]("dst", 0)
	src := object.NewScalar[int32]("src", 1)

	task, err := schedule.NewTask(r.IdentityInt, []object.Object{dst, src}, nil)
	require.NoError(t, err)
	assert.Nil(t, task.Desc())
	require.NotNil(t, task.DescOrDefault())
	assert.Equal(t, descriptor.Default(), task.DescOrDefault())

	d := &descriptor.Descriptor{EarlyExit: true}
	task, err = schedule.NewTask(r.IdentityInt, []object.Object{dst, src}, d)
	require.NoError(t, err)
	assert.Same(t, d, task.Desc())
	assert.Same(t, d, task.DescOrDefault())
}
