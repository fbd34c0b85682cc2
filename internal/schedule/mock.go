package schedule

import "sync"

// MockExecutor is an instrumented executor for tests. It records the order
// in which it observes tasks, runs the tasks of a step concurrently the way
// a real executor may, and honors the inter-step barrier.
type MockExecutor struct {
	mu sync.Mutex

	// Events records one entry per task in observation order; entries are
	// (step index, task key_full) pairs.
	Events []MockEvent

	// OnTask, when set, runs for every task while the step is in flight.
	OnTask func(step int, task *Task)

	// FailAt, when non-nil, is returned as the Execute error as soon as the
	// step with the given index would start.
	FailAt    *int
	FailErr   error
	ExecCalls int
}

// MockEvent is one observed task execution.
type MockEvent struct {
	Step    int
	KeyFull string
}

func (m *MockExecutor) Name() string { return "mock" }

// Execute walks the steps in order with a barrier between them.
func (m *MockExecutor) Execute(steps [][]*Task) error {
	m.mu.Lock()
	m.ExecCalls++
	m.mu.Unlock()

	for i, step := range steps {
		if m.FailAt != nil && *m.FailAt == i {
			return m.FailErr
		}
		var wg sync.WaitGroup
		for _, task := range step {
			wg.Add(1)
			go func(task *Task) {
				defer wg.Done()
				if m.OnTask != nil {
					m.OnTask(i, task)
				}
				m.mu.Lock()
				m.Events = append(m.Events, MockEvent{Step: i, KeyFull: task.KeyFull()})
				m.mu.Unlock()
			}(task)
		}
		wg.Wait()
	}
	return nil
}
