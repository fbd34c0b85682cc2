// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package types exposes the numeric domains of the Spindle compute core.
package types

import (
	"github.com/spindle-la/spindle/internal/types"
)

// Scalar is a constraint for supported element types.
type Scalar = types.Scalar

// DataType identifies one of the supported numeric domains.
type DataType = types.DataType

// Supported domains.
const (
	Int   DataType = types.Int
	Uint  DataType = types.Uint
	Float DataType = types.Float
)

// Sentinel values: integer kernels treat the domain maximum as
// "no value" / infinity.
const (
	SentinelInt  = types.SentinelInt
	SentinelUint = types.SentinelUint
)

// SentinelFloat returns the float domain sentinel (-Inf).
func SentinelFloat() float32 { return types.SentinelFloat() }
