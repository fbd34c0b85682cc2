// Package op defines the operation model of the Spindle compute core.
//
// An operation is an immutable value object pairing a host-executable Go
// function with an equivalent device source fragment (WGSL), identified by a
// canonical key built from its name and the type codes of its signature.
// Operations are safe to share across any number of tasks, schedules and
// goroutines without synchronization: nothing mutates after construction.
//
// Three capability variants exist: Unary (1-ary), Binary (2-ary) and Select
// (1-ary predicate with a boolean result). Each comes in three numeric
// domains: int32, uint32 and float32.
package op

import (
	"github.com/spindle-la/spindle/internal/status"
	"github.com/spindle-la/spindle/internal/types"
)

// Op is the capability common to all operation variants.
type Op interface {
	// Name returns the human-readable identifier. Not required unique.
	Name() string

	// Key returns the canonical identity string: the name concatenated with
	// the type codes of the argument(s) and result. Two operations with
	// equal keys are interchangeable for caching and deduplication; the key,
	// not object identity, is the sole identity used for that purpose.
	Key() string

	// Source returns the device source fragment. It is an opaque payload
	// interpreted only by the device compiler; this layer never parses it.
	Source() string

	// Result returns the numeric domain of the operation result. For Select
	// operations it reports the argument domain; the actual result is a
	// boolean.
	Result() types.DataType

	// Arity returns the number of operation arguments (1 or 2).
	Arity() int
}

// Unary is a 1-ary operation mapping a value to a value of the same domain.
type Unary[T types.Scalar] struct {
	name   string
	key    string
	source string
	fn     func(T) T
}

// Binary is a 2-ary operation mapping two values to one of the same domain.
type Binary[T types.Scalar] struct {
	name   string
	key    string
	source string
	fn     func(T, T) T
}

// Select is a 1-ary predicate used for masking and filtering.
type Select[T types.Scalar] struct {
	name   string
	key    string
	source string
	fn     func(T) bool
}

func (o *Unary[T]) Name() string   { return o.name }
func (o *Unary[T]) Key() string    { return o.key }
func (o *Unary[T]) Source() string { return o.source }
func (o *Unary[T]) Arity() int     { return 1 }

// Result returns the operation's domain; unary results stay in the argument
// domain.
func (o *Unary[T]) Result() types.DataType {
	var dummy T
	return types.Of(dummy)
}

// Arg0 returns the argument domain.
func (o *Unary[T]) Arg0() types.DataType { return o.Result() }

// Fn returns the host function.
func (o *Unary[T]) Fn() func(T) T { return o.fn }

func (o *Binary[T]) Name() string   { return o.name }
func (o *Binary[T]) Key() string    { return o.key }
func (o *Binary[T]) Source() string { return o.source }
func (o *Binary[T]) Arity() int     { return 2 }

// Result returns the operation's domain.
func (o *Binary[T]) Result() types.DataType {
	var dummy T
	return types.Of(dummy)
}

// Arg0 returns the first argument domain.
func (o *Binary[T]) Arg0() types.DataType { return o.Result() }

// Arg1 returns the second argument domain.
func (o *Binary[T]) Arg1() types.DataType { return o.Result() }

// Fn returns the host function.
func (o *Binary[T]) Fn() func(T, T) T { return o.fn }

func (o *Select[T]) Name() string   { return o.name }
func (o *Select[T]) Key() string    { return o.key }
func (o *Select[T]) Source() string { return o.source }
func (o *Select[T]) Arity() int     { return 1 }

// Result returns the argument domain. The predicate itself yields a boolean.
func (o *Select[T]) Result() types.DataType {
	var dummy T
	return types.Of(dummy)
}

// Arg0 returns the argument domain.
func (o *Select[T]) Arg0() types.DataType { return o.Result() }

// Fn returns the host predicate.
func (o *Select[T]) Fn() func(T) bool { return o.fn }

// newUnary builds a unary operation; key = name_<arg><res>.
func newUnary[T types.Scalar](name, source string, fn func(T) T) (*Unary[T], error) {
	if name == "" {
		return nil, status.InvalidArgumentf("unary op requires a name")
	}
	if fn == nil {
		return nil, status.InvalidArgumentf("unary op %q requires a function", name)
	}
	var dummy T
	code := types.Of(dummy).Code()
	return &Unary[T]{
		name:   name,
		key:    name + "_" + code + code,
		source: source,
		fn:     fn,
	}, nil
}

// newBinary builds a binary operation; key = name_<arg0><arg1><res>.
func newBinary[T types.Scalar](name, source string, fn func(T, T) T) (*Binary[T], error) {
	if name == "" {
		return nil, status.InvalidArgumentf("binary op requires a name")
	}
	if fn == nil {
		return nil, status.InvalidArgumentf("binary op %q requires a function", name)
	}
	var dummy T
	code := types.Of(dummy).Code()
	return &Binary[T]{
		name:   name,
		key:    name + "_" + code + code + code,
		source: source,
		fn:     fn,
	}, nil
}

// newSelect builds a select predicate; key = name_<arg0>.
func newSelect[T types.Scalar](name, source string, fn func(T) bool) (*Select[T], error) {
	if name == "" {
		return nil, status.InvalidArgumentf("select op requires a name")
	}
	if fn == nil {
		return nil, status.InvalidArgumentf("select op %q requires a function", name)
	}
	var dummy T
	return &Select[T]{
		name:   name,
		key:    name + "_" + types.Of(dummy).Code(),
		source: source,
		fn:     fn,
	}, nil
}

// MakeUnaryInt creates a unary int32 operation from a device source fragment
// and an equivalent host function. The two representations are not cross
// checked here; keeping them in agreement is the caller's contract.
func MakeUnaryInt(name, source string, fn func(int32) int32) (*Unary[int32], error) {
	return newUnary(name, source, fn)
}

// MakeUnaryUint creates a unary uint32 operation.
func MakeUnaryUint(name, source string, fn func(uint32) uint32) (*Unary[uint32], error) {
	return newUnary(name, source, fn)
}

// MakeUnaryFloat creates a unary float32 operation.
func MakeUnaryFloat(name, source string, fn func(float32) float32) (*Unary[float32], error) {
	return newUnary(name, source, fn)
}

// MakeBinaryInt creates a binary int32 operation.
func MakeBinaryInt(name, source string, fn func(int32, int32) int32) (*Binary[int32], error) {
	return newBinary(name, source, fn)
}

// MakeBinaryUint creates a binary uint32 operation.
func MakeBinaryUint(name, source string, fn func(uint32, uint32) uint32) (*Binary[uint32], error) {
	return newBinary(name, source, fn)
}

// MakeBinaryFloat creates a binary float32 operation.
func MakeBinaryFloat(name, source string, fn func(float32, float32) float32) (*Binary[float32], error) {
	return newBinary(name, source, fn)
}

// MakeSelectInt creates a select predicate over int32.
func MakeSelectInt(name, source string, fn func(int32) bool) (*Select[int32], error) {
	return newSelect(name, source, fn)
}

// MakeSelectUint creates a select predicate over uint32.
func MakeSelectUint(name, source string, fn func(uint32) bool) (*Select[uint32], error) {
	return newSelect(name, source, fn)
}

// MakeSelectFloat creates a select predicate over float32.
func MakeSelectFloat(name, source string, fn func(float32) bool) (*Select[float32], error) {
	return newSelect(name, source, fn)
}
