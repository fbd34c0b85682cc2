// Package object defines the argument references bound into schedule tasks.
//
// The surrounding system owns the real storage objects (sparse vectors and
// matrices); this core only needs a stable identity per reference, so that a
// task invocation can be distinguished from another invocation of the same
// operation on different data. Scalar cells are provided for host-side
// evaluation and tests.
package object

import "github.com/google/uuid"

// Object is a reference that can be bound as a task argument.
// IDs are unique per instance and feed task key_full construction.
type Object interface {
	// ID returns the unique identity of this reference.
	ID() string

	// Label returns an optional human-readable name, possibly empty.
	Label() string
}

// base carries identity shared by all concrete objects.
type base struct {
	id    string
	label string
}

func newBase(label string) base {
	return base{id: uuid.NewString(), label: label}
}

func (b *base) ID() string    { return b.id }
func (b *base) Label() string { return b.label }
