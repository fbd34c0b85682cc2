// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package host

import (
	internalhost "github.com/spindle-la/spindle/internal/executor/host"
	"github.com/spindle-la/spindle/schedule"
)

// Executor evaluates scheduled tasks with their operations' host functions.
//
// It is registered under the name "host" and is the reference executor:
// tasks of a step run concurrently, steps are separated by a barrier, and
// completed tasks are memoized by their full key.
type Executor = internalhost.Executor

// Compile-time check that Executor implements schedule.Executor.
var _ schedule.Executor = (*Executor)(nil)

// New creates a host executor.
//
// Example:
//
//	s, _ := schedule.New(host.New())
func New() *Executor {
	return internalhost.New()
}
