//go:build windows

// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu

import (
	internalwebgpu "github.com/spindle-la/spindle/internal/executor/webgpu"
	"github.com/spindle-la/spindle/schedule"
)

// Executor runs schedule steps on a WebGPU device, compiling each
// operation's source fragment into an elementwise compute shader.
//
// It is registered under the name "webgpu".
type Executor = internalwebgpu.Executor

// Compile-time check that Executor implements schedule.Executor.
var _ schedule.Executor = (*Executor)(nil)

// New creates a device executor. Returns an error if WebGPU is not
// available.
func New() (*Executor, error) {
	return internalwebgpu.New()
}
