// Package sessionstate holds the client's single source of truth for "who
// is logged in": a tagged session state (unauthenticated, pending,
// authenticated, logging out) plus a store that replaces it atomically and
// notifies subscribers synchronously on every transition.
//
// The store performs no I/O and never persists itself; persistence of the
// optimistic login hint is a separate concern (see pkg/hintstore). It is
// owned by the application root and handed to the reconciliation
// components by reference - only those components call Transition.
//
// # Usage
//
//	store := sessionstate.New()
//	unsubscribe := store.Subscribe(func(s sessionstate.State) {
//	    if s.IsAuthenticated() {
//	        // reload tenant context, re-render, etc.
//	    }
//	})
//	defer unsubscribe()
//
//	store.Transition(sessionstate.Pending("a@b.com"))
package sessionstate
