package sessionstate

import "sync"

// Store is the single source of truth for the client's session state.
// It holds exactly one State at a time and notifies subscribers
// synchronously on every transition, so observers see every intermediate
// state with no batching or debouncing.
//
// Transition performs no validity checks. Any component driving
// reconciliation may need to force-correct the state, for example a poller
// discovering that the server disagrees with an optimistic guess, so
// enforcing a transition table here would get in the way.
type Store struct {
	mu          sync.RWMutex
	current     State
	subscribers map[int]func(State)
	nextID      int
}

// New creates a store starting in the Unauthenticated state.
func New() *Store {
	return NewWithInitial(Unauthenticated())
}

// NewWithInitial creates a store starting in the given state. Used at
// application start when a persisted hint justifies an optimistic
// Pending initial state.
func NewWithInitial(initial State) *Store {
	return &Store{
		current:     initial,
		subscribers: make(map[int]func(State)),
	}
}

// Current returns the state held right now.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Transition unconditionally replaces the current state and notifies all
// subscribers in the calling goroutine. Subscribers run outside the store
// lock so they may safely call Current or Subscribe reentrantly.
func (s *Store) Transition(next State) {
	s.mu.Lock()
	s.current = next
	fns := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// Subscribe registers fn to be called on every transition and returns an
// unsubscribe function. Unsubscribing is idempotent.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}
