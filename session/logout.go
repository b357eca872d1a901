package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// Logout deterministically terminates the session from the client's point
// of view. The active poller is cancelled first so logout wins any race
// against an in-flight confirmation, then the store passes through
// logging-out, the hint is cleared, and the provider's sign-out runs
// best-effort: a failed server-side logout must not leave the client
// believing it is still authenticated, so its error is logged and the
// local transition to unauthenticated happens regardless.
//
// Only the final navigation home can surface as the returned error; by
// then logout has already succeeded locally.
func (r *Reconciler) Logout(ctx context.Context) error {
	r.cancelActivePoller()

	r.store.Transition(sessionstate.LoggingOut())
	r.clearHint(ctx)

	if err := r.provider.SignOut(ctx); err != nil {
		r.logger.Warn("server-side sign out failed", slog.Any("error", err))
	}

	r.store.Transition(sessionstate.Unauthenticated())

	if err := r.nav.Navigate(ctx, r.cfg.HomePath); err != nil {
		return fmt.Errorf("navigate home: %w", err)
	}
	return nil
}
