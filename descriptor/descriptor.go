// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package descriptor exposes per-task execution flags.
package descriptor

import (
	"github.com/spindle-la/spindle/internal/descriptor"
)

// Descriptor holds execution hints attached to a scheduled task.
type Descriptor = descriptor.Descriptor

// Default returns the process-wide default descriptor.
func Default() *Descriptor { return descriptor.Default() }
