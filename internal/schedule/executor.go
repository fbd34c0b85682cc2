package schedule

import (
	"os"
	"strings"

	"github.com/spindle-la/spindle/internal/status"
)

// Executor consumes a finalized step sequence. Steps arrive in insertion
// order; the executor must complete every task of a step before starting the
// next one, and may run the tasks within a step concurrently.
type Executor interface {
	// Name returns the short name of the executor, e.g. "host".
	Name() string

	// Execute runs the step sequence to completion.
	Execute(steps [][]*Task) error
}

// Constructor builds an executor from an executor-specific config string,
// possibly empty.
type Constructor func(config string) (Executor, error)

var (
	registeredConstructors = make(map[string]Constructor)
	firstRegistered        string
)

// RegisterExecutor makes a named executor constructor available to
// NewExecutor. To be safe, call it during package initialization.
func RegisterExecutor(name string, constructor Constructor) {
	if len(registeredConstructors) == 0 {
		firstRegistered = name
	}
	registeredConstructors[name] = constructor
}

// SPINDLE_EXECUTOR is the environment variable naming the default executor
// configuration, in the form "<name>" or "<name>:<config>".
const SPINDLE_EXECUTOR = "SPINDLE_EXECUTOR"

// DefaultConfig returns the executor configuration to use when the caller
// does not name one: the SPINDLE_EXECUTOR environment variable when set,
// otherwise the first registered executor.
func DefaultConfig() string {
	if cfg, ok := os.LookupEnv(SPINDLE_EXECUTOR); ok {
		return cfg
	}
	return firstRegistered
}

// NewExecutor builds an executor from a "<name>" or "<name>:<config>"
// string. An empty string resolves through DefaultConfig.
func NewExecutor(config string) (Executor, error) {
	if config == "" {
		config = DefaultConfig()
	}
	name, rest, _ := strings.Cut(config, ":")
	if name == "" {
		return nil, status.NotSupportedf("no executor registered")
	}
	constructor, ok := registeredConstructors[name]
	if !ok {
		return nil, status.NotSupportedf("executor %q", name)
	}
	return constructor(rest)
}
