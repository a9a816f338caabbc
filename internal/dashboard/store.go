package dashboard

import "sync"

// Store holds the dashboard state. Every change goes through Dispatch, which
// runs the reducer under a lock so handlers and loads see whole states.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
