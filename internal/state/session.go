package state

import "sync"

// SessionStore holds session-only data in memory. Back-navigation
// history survives within one open session but never a restart; the
// process exiting is what "clears" it.
type SessionStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{values: make(map[string]string)}
}

// SaveSession upserts the given keys.
func (s *SessionStore) SaveSession(values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
}

// LoadSession returns a copy of all session data.
func (s *SessionStore) LoadSession() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
