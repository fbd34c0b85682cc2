// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package object exposes the argument references bound into schedule tasks.
package object

import (
	"github.com/spindle-la/spindle/internal/object"
	"github.com/spindle-la/spindle/internal/types"
)

// Object is a reference that can be bound as a task argument.
type Object = object.Object

// Scalar is a single-element cell of one numeric domain.
type Scalar[T types.Scalar] = object.Scalar[T]

// Flag is a boolean cell used as the destination of select-predicate tasks.
type Flag = object.Flag

// NewScalar creates a labeled scalar cell holding value.
func NewScalar[T types.Scalar](label string, value T) *Scalar[T] {
	return object.NewScalar(label, value)
}

// NewFlag creates a labeled boolean cell.
func NewFlag(label string) *Flag { return object.NewFlag(label) }
