package riskgate

import (
	"sync"
	"sync/atomic"
)

// sessionState is the in-memory session state container. It is the
// synchronous read surface for "is the user authenticated" decisions and
// implements transport.TokenSource, so token attachment never touches the
// persisted store on the request hot path (the store is mirrored on every
// mutation instead).
type sessionState struct {
	mu    sync.RWMutex
	token string
	user  []byte

	// navigated latches once per session epoch so N concurrent 401s
	// trigger at most one login redirect. Reset on every set.
	navigated atomic.Bool
}

// Token implements transport.TokenSource.
func (s *sessionState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *sessionState) snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := SessionSnapshot{
		Token:           s.token,
		IsAuthenticated: s.token != "",
	}
	if len(s.user) > 0 {
		snap.User = append([]byte(nil), s.user...)
	}
	return snap
}

func (s *sessionState) set(fragment SessionFragment) {
	s.mu.Lock()
	s.token = fragment.Token
	s.user = append([]byte(nil), fragment.User...)
	s.mu.Unlock()

	s.navigated.Store(false)
}

// clear wipes the session and reports whether a token was present.
func (s *sessionState) clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	had := s.token != ""
	s.token = ""
	s.user = nil
	return had
}

// shouldNavigate reports true exactly once between set calls.
func (s *sessionState) shouldNavigate() bool {
	return s.navigated.CompareAndSwap(false, true)
}
