// internal/domain/selection/manager.go
package selection

import "sync"

// Manager hands out one Tracker per UI session, addressed by the session
// id cookie. Trackers live for the process lifetime only.
type Manager struct {
	mu       sync.Mutex
	trackers map[string]*Tracker
}

// NewManager creates an empty tracker manager
func NewManager() *Manager {
	return &Manager{trackers: make(map[string]*Tracker)}
}

// ForSession returns the tracker for the given session, creating it on
// first use
func (m *Manager) ForSession(sessionID string) *Tracker {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trackers[sessionID]
	if !ok {
		t = NewTracker()
		m.trackers[sessionID] = t
	}
	return t
}

// Drop removes a session's tracker
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.trackers, sessionID)
}
