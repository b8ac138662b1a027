package journal

import (
	"sync"

	"inkwell/store"
)

// Manager maps logged-in users to their live journal sessions. A session is
// built from the store on first use and dropped at logout, which forces the
// vault locked and clears any pending lock request for the next login.
type Manager struct {
	mu       sync.Mutex
	store    *store.Store
	sessions map[int]*Session
}

func NewManager(s *store.Store) *Manager {
	return &Manager{
		store:    s,
		sessions: make(map[int]*Session),
	}
}

func (m *Manager) Get(userID int) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess
	}
	sess := NewSession(m.store, userID)
	m.sessions[userID] = sess
	return sess
}

func (m *Manager) Drop(userID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Purge discards the session and deletes the persisted snapshot. Used by
// account deletion; the PIN goes with the snapshot.
func (m *Manager) Purge(userID int) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
	m.store.Delete(userID)
}
