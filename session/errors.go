package session

import "errors"

// Credential errors, surfaced immediately by Login and Signup. Identity
// provider implementations wrap these so callers can classify failures
// with errors.Is without depending on provider internals.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// ErrSessionAbsent marks a session check that came back empty. It drives
// the poller's retry loop and is never returned from public methods.
var ErrSessionAbsent = errors.New("no session confirmed yet")

// IsCredentialError reports whether err is an authentication-specific
// rejection (bad password, duplicate email) rather than a transient
// failure. Credential errors are not retried.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrEmailAlreadyExists)
}
