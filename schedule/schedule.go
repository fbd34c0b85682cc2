// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package schedule provides the public API for deferred scheduling: ordered
// steps of concurrently-safe tasks handed atomically to an executor.
//
// Example:
//
//	registry := op.NewRegistry()
//	s, _ := schedule.New(host.New())
//	task, _ := schedule.NewTask(registry.PlusInt, []object.Object{dst, a, b}, nil)
//	_ = s.StepTask(task)
//	_ = s.Submit()
package schedule

import (
	"github.com/spindle-la/spindle/internal/schedule"
)

// Schedule accumulates steps of tasks for one submission.
type Schedule = schedule.Schedule

// Task is a request to evaluate one operation against concrete arguments,
// destination first.
type Task = schedule.Task

// Executor consumes a finalized step sequence.
type Executor = schedule.Executor

// Constructor builds an executor from a config string.
type Constructor = schedule.Constructor

// MockExecutor is an instrumented executor for tests.
type MockExecutor = schedule.MockExecutor

// New creates an empty schedule that will submit to exec.
func New(exec Executor) (*Schedule, error) { return schedule.New(exec) }

// NewDefault creates an empty schedule bound to the default executor.
func NewDefault() (*Schedule, error) { return schedule.NewDefault() }

// NewTask binds an operation to its argument references plus an optional
// descriptor.
var NewTask = schedule.NewTask

// RegisterExecutor makes a named executor constructor available.
var RegisterExecutor = schedule.RegisterExecutor

// NewExecutor builds an executor from a "<name>" or "<name>:<config>" string.
var NewExecutor = schedule.NewExecutor
