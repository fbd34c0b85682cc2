// Package descriptor carries per-task execution flags. The flags are opaque
// to the scheduling core: it stores them on a task and hands them to the
// executor unchanged.
package descriptor

// Descriptor holds execution hints attached to a scheduled task.
type Descriptor struct {
	// PushOnly forces frontier propagation in push mode.
	PushOnly bool

	// PullOnly forces frontier propagation in pull mode.
	PullOnly bool

	// EarlyExit allows the executor to stop a reduction at the first hit.
	EarlyExit bool

	// StructOnly tells the executor the values are irrelevant, only the
	// sparsity structure matters.
	StructOnly bool

	// FrontFactor tunes the push/pull switch threshold. Zero means the
	// executor default.
	FrontFactor float32
}

// Default returns the process-wide default descriptor used when a task
// specifies none: all hints off, executor-chosen front factor.
func Default() *Descriptor {
	return &Descriptor{}
}
