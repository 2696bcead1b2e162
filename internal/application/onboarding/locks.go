package onboarding

import "sync"

// sessionLocks serializes updates per session id so concurrent SubmitResponse
// calls on the same session cannot lose updates. Cross-session calls never
// contend. Entries are not reaped; sessions are short-lived and bounded.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the session id and returns its unlock func.
func (l *sessionLocks) acquire(sessionID string) func() {
	l.mu.Lock()
	m, ok := l.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
