package indicator

import "sync"

// Memory is an in-process indicator that records every Set call.
// It exists as a test double for the console output and for any embedding
// that wants to observe transitions programmatically.
type Memory struct {
	mu          sync.Mutex
	active      bool
	transitions int
	history     []bool
}

// NewMemory creates a memory indicator in the INACTIVE state.
func NewMemory() *Memory {
	return &Memory{}
}

// Set records the new state.
func (m *Memory) Set(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != active {
		m.transitions++
	}

	m.active = active
	m.history = append(m.history, active)
}

// Active reports the state of the last Set call.
func (m *Memory) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.active
}

// Transitions returns how many Set calls changed the state.
func (m *Memory) Transitions() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.transitions
}

// History returns a copy of every recorded Set value in call order.
func (m *Memory) History() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]bool, len(m.history))
	copy(copied, m.history)

	return copied
}
