package injection

import "sync"

// MockInjector records every frame handed to it instead of sending
// anything. Safe for concurrent use so it can be shared between a test's
// goroutine and the engine under test.
type MockInjector struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

// Inject stores a copy of frame.
func (m *MockInjector) Inject(frame []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := append([]byte(nil), frame...)
	m.frames = append(m.frames, cp)
	return nil
}

// Close marks the injector closed. It never fails.
func (m *MockInjector) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Frames returns a snapshot of everything injected so far.
func (m *MockInjector) Frames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.frames))
	copy(out, m.frames)
	return out
}

// Closed reports whether Close has been called.
func (m *MockInjector) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
