// Package types defines the primitive numeric domains of the Spindle compute
// core and their canonical codes used to build operation keys.
package types

import "math"

// Scalar is a constraint for the element types an operation can work on.
// Spindle kernels operate on 32-bit elements only.
type Scalar interface {
	~int32 | ~uint32 | ~float32
}

// DataType identifies one of the supported numeric domains.
type DataType int

// Supported domains.
const (
	Int DataType = iota
	Uint
	Float
)

// Sentinel values per domain. Integer kernels treat the maximum representable
// value as "no value" / infinity; float kernels use negative infinity.
const (
	SentinelInt  int32  = math.MaxInt32
	SentinelUint uint32 = math.MaxUint32
)

// SentinelFloat returns the float domain sentinel (-Inf).
func SentinelFloat() float32 {
	return float32(math.Inf(-1))
}

// Code returns the canonical one-letter code used in operation keys.
func (dt DataType) Code() string {
	switch dt {
	case Int:
		return "i"
	case Uint:
		return "u"
	case Float:
		return "f"
	default:
		return "?"
	}
}

// Size returns the byte size of one element of the domain.
func (dt DataType) Size() int {
	return 4
}

// String returns a human-readable name for the domain.
func (dt DataType) String() string {
	switch dt {
	case Int:
		return "int32"
	case Uint:
		return "uint32"
	case Float:
		return "float32"
	default:
		return "unknown"
	}
}

// WGSL returns the WGSL scalar type used for this domain in device source.
func (dt DataType) WGSL() string {
	switch dt {
	case Int:
		return "i32"
	case Uint:
		return "u32"
	case Float:
		return "f32"
	default:
		return "?"
	}
}

// Of infers the DataType of a generic scalar type.
func Of[T Scalar](dummy T) DataType {
	switch any(dummy).(type) {
	case int32:
		return Int
	case uint32:
		return Uint
	case float32:
		return Float
	default:
		panic("types: unsupported scalar type")
	}
}
