package session

import (
	"context"

	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// SignInParams carries credentials for the identity provider's sign-in
// primitive. Redirect is always false when issued by the engine: the
// engine owns navigation, the provider must not trigger its own.
type SignInParams struct {
	Email    string
	Password string
	Redirect bool
}

// SignUpParams carries the registration payload. Signup is not polled;
// a separate email-verification flow owns post-signup confirmation.
type SignUpParams struct {
	Email    string
	Password string
	Name     string
}

// IdentityProvider is the external identity service the engine reconciles
// against. The provider manages the actual session cookie; this engine
// never sees credentials beyond passing them through.
type IdentityProvider interface {
	// CheckSession asks the provider who is currently logged in. It is
	// idempotent and safe to call repeatedly. (nil, nil) means no session.
	// Errors are treated as "absent" by the initial loader and as
	// retryable by the background poller; they never surface to callers.
	CheckSession(ctx context.Context) (*sessionstate.Identity, error)

	// SignIn performs a credential login. It must honor
	// params.Redirect=false and leave all navigation to the engine.
	// Credential failures should wrap ErrInvalidCredentials.
	SignIn(ctx context.Context, params SignInParams) error

	// SignUp registers a new account. Duplicate-email failures should
	// wrap ErrEmailAlreadyExists.
	SignUp(ctx context.Context, params SignUpParams) error

	// SignOut terminates the server-side session. Best-effort: the engine
	// proceeds with local logout regardless of the result.
	SignOut(ctx context.Context) error
}

// Navigator abstracts the client's router. Navigate returns once the
// route transition has committed, which is what lets Login guarantee that
// navigation happened before it returns.
type Navigator interface {
	// CurrentPath returns the current location, path plus query string.
	CurrentPath() string
	// Navigate transitions to the given in-app path.
	Navigate(ctx context.Context, path string) error
}
