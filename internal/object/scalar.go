package object

import "github.com/spindle-la/spindle/internal/types"

// Scalar is a single-element cell of one numeric domain. Executors read it
// as an operation input and write it as an operation result. A cell must not
// be written by two tasks of the same schedule step; that hazard freedom is
// the schedule builder's responsibility.
type Scalar[T types.Scalar] struct {
	base
	value T
}

// NewScalar creates a labeled scalar cell holding value.
func NewScalar[T types.Scalar](label string, value T) *Scalar[T] {
	return &Scalar[T]{base: newBase(label), value: value}
}

// Value returns the current cell value.
func (s *Scalar[T]) Value() T { return s.value }

// SetValue overwrites the cell value.
func (s *Scalar[T]) SetValue(v T) { s.value = v }

// DType returns the cell's numeric domain.
func (s *Scalar[T]) DType() types.DataType {
	var dummy T
	return types.Of(dummy)
}

// Flag is a boolean cell used as the destination of select-predicate tasks.
type Flag struct {
	base
	value bool
}

// NewFlag creates a labeled boolean cell.
func NewFlag(label string) *Flag {
	return &Flag{base: newBase(label)}
}

// Value returns the current flag value.
func (f *Flag) Value() bool { return f.value }

// SetValue overwrites the flag value.
func (f *Flag) SetValue(v bool) { f.value = v }
