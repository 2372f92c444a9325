package session

import "sync"

// Session holds the process-wide bearer token for the authenticated admin
// session. The token lives in memory only; an empty token means
// unauthenticated. The most recent Set wins and Get is always consistent
// with the last completed Set or Clear.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New creates an empty session
func New() *Session {
	return &Session{}
}

// Set overwrites the current token
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Get returns the current token, or empty if unauthenticated
func (s *Session) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear empties the session. Called on logout and whenever the gateway
// reports an unauthorized response.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Authenticated reports whether a token is currently held
func (s *Session) Authenticated() bool {
	return s.Get() != ""
}
