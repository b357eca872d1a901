package session

import (
	"context"
	"fmt"

	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// Login drives a credential login. On provider success it persists the
// hint, flips the store to pending, navigates to the target route, and
// starts the background poller; it returns only after the navigation
// attempt finished, so callers may assume the route change already
// happened. Confirmation of the session is not awaited: the poller
// resolves the pending state in the background.
//
// On provider failure nothing is mutated and the classified error is
// returned; use IsCredentialError to distinguish bad credentials from
// transport trouble.
func (r *Reconciler) Login(ctx context.Context, email, password string) error {
	err := r.provider.SignIn(ctx, SignInParams{
		Email:    email,
		Password: password,
		Redirect: false,
	})
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	// Detach any poller from an earlier login before touching the hint or
	// the store, so a dying generation cannot clobber this login's state.
	r.cancelActivePoller()

	r.setHint(ctx)
	r.store.Transition(sessionstate.Pending(email))

	target := r.matcher.NextTarget(r.nav.CurrentPath(), r.cfg.DefaultProtectedPath)
	navErr := r.nav.Navigate(ctx, target)

	// The poller starts only after the navigation attempt returned, so it
	// never races the route change it would otherwise try to correct. It
	// runs regardless of the navigation outcome: confirmation does not
	// depend on where the user landed.
	r.startPoller(target)

	if navErr != nil {
		return fmt.Errorf("navigate after sign in: %w", navErr)
	}
	return nil
}

// Signup registers a new account through the identity provider. No hint
// is written and no poller starts: the out-of-band email-verification
// flow owns post-signup confirmation, so the store is left untouched.
func (r *Reconciler) Signup(ctx context.Context, email, password, name string) error {
	err := r.provider.SignUp(ctx, SignUpParams{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	return nil
}
