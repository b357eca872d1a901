package sessionstate

import (
	"time"

	"github.com/google/uuid"
)

// Status identifies which variant of State is currently held.
type Status string

const (
	// StatusUnauthenticated means no known user.
	StatusUnauthenticated Status = "unauthenticated"
	// StatusPending is the optimistic state: the client believes login
	// succeeded but the server-confirmed identity is not yet available.
	StatusPending Status = "pending"
	// StatusAuthenticated means the identity provider confirmed the session.
	StatusAuthenticated Status = "authenticated"
	// StatusLoggingOut is a transient state that suppresses reconciliation
	// while logout completes.
	StatusLoggingOut Status = "logging_out"
)

func (s Status) String() string {
	return string(s)
}

// Identity is the server-confirmed account identity returned by the
// identity provider's session check.
type Identity struct {
	ID              uuid.UUID
	Email           string
	EmailVerifiedAt *time.Time
}

// State is a tagged variant holding exactly one session status and the
// payload belonging to it. Build values through the constructors below so
// invalid payload combinations cannot exist.
type State struct {
	Status    Status
	EmailHint string    // populated only while pending
	Identity  *Identity // populated only when authenticated
}

// Unauthenticated returns the default state with no known user.
func Unauthenticated() State {
	return State{Status: StatusUnauthenticated}
}

// Pending returns the optimistic state carrying the email the caller used
// to sign in. The hint may be empty when restoring from a persisted flag.
func Pending(emailHint string) State {
	return State{Status: StatusPending, EmailHint: emailHint}
}

// Authenticated returns the confirmed state for the given identity.
func Authenticated(id Identity) State {
	return State{Status: StatusAuthenticated, Identity: &id}
}

// LoggingOut returns the transient state held while logout completes.
func LoggingOut() State {
	return State{Status: StatusLoggingOut}
}

// IsAuthenticated reports whether the state carries a confirmed identity.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// IsPending reports whether the state is an unconfirmed optimistic guess.
func (s State) IsPending() bool {
	return s.Status == StatusPending
}
