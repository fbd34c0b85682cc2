// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package op provides the public API for Spindle operations: immutable named
// functions with a host-executable form and a device-source form, identified
// by a canonical key.
//
// Example:
//
//	registry := op.NewRegistry()
//	plus := registry.PlusInt
//	fmt.Println(plus.Key()) // "plus_iii"
package op

import (
	"github.com/spindle-la/spindle/internal/op"
	"github.com/spindle-la/spindle/internal/types"
)

// Op is the capability common to all operation variants.
type Op = op.Op

// Unary is a 1-ary operation.
type Unary[T types.Scalar] = op.Unary[T]

// Binary is a 2-ary operation.
type Binary[T types.Scalar] = op.Binary[T]

// Select is a 1-ary predicate used for masking and filtering.
type Select[T types.Scalar] = op.Select[T]

// Registry is the built-in operation catalog. Construct it once at process
// start and pass it to all consumers.
type Registry = op.Registry

// NewRegistry builds the complete built-in catalog.
func NewRegistry() *Registry { return op.NewRegistry() }

// Factories for custom operations, one per domain and variant. The source
// fragment and the host function must compute the same result; this layer
// does not cross-check the two representations.
var (
	MakeUnaryInt    = op.MakeUnaryInt
	MakeUnaryUint   = op.MakeUnaryUint
	MakeUnaryFloat  = op.MakeUnaryFloat
	MakeBinaryInt   = op.MakeBinaryInt
	MakeBinaryUint  = op.MakeBinaryUint
	MakeBinaryFloat = op.MakeBinaryFloat
	MakeSelectInt   = op.MakeSelectInt
	MakeSelectUint  = op.MakeSelectUint
	MakeSelectFloat = op.MakeSelectFloat
)

// Weighted-value word helpers: an 11-bit weight packed above a 21-bit value.
var (
	PackWeighted   = op.PackWeighted
	UnpackWeighted = op.UnpackWeighted
)

// WeightedWeightMax is the largest representable weight.
const WeightedWeightMax = op.WeightedWeightMax
