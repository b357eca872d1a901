package hintstore

import "context"

// Store persists a single boolean recording "a session probably exists"
// across client restarts. The hint is not a credential and grants no access
// by itself; it only biases which initial state the session loader assumes
// before its first real check completes. It carries no TTL and is cleared
// explicitly on logout or when reconciliation gives up.
//
// Implementations return honest errors. The reconciliation engine treats
// every error as hint=false (fail closed): a wrongly pessimistic initial
// state only costs a flash of the login page, while a wrongly optimistic
// one would leak protected UI to an unauthenticated user.
type Store interface {
	// Get reports whether the hint is set.
	Get(ctx context.Context) (bool, error)
	// Set records or removes the hint.
	Set(ctx context.Context, value bool) error
	// Clear removes the hint. Equivalent to Set(ctx, false).
	Clear(ctx context.Context) error
}
